package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	belboard "github.com/iotmart/belportal/components/belboard"
)

// SaveAssetInput captures an asset create or edit. A negative Index
// appends a new asset; a non-negative Index edits in place.
type SaveAssetInput struct {
	Index      int    `json:"index"`
	UploadDate string `json:"upload_date"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	Category   string `json:"category"`
	PageLink   string `json:"page_link"`
	ActorID    string `json:"actor_id"`
}

// DeleteAssetInput captures an asset removal by position.
type DeleteAssetInput struct {
	Index   int    `json:"index"`
	ActorID string `json:"actor_id"`
}

type assetService interface {
	AddAsset(ctx context.Context, asset belboard.Asset) error
	UpdateAsset(ctx context.Context, index int, asset belboard.Asset) error
	DeleteAsset(ctx context.Context, index int) error
}

// SaveAssetCommand wraps Service.AddAsset / Service.UpdateAsset.
type SaveAssetCommand struct {
	service   assetService
	telemetry Telemetry
}

// NewSaveAssetCommand creates the command.
func NewSaveAssetCommand(service assetService, telemetry Telemetry) *SaveAssetCommand {
	return &SaveAssetCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SaveAssetInput] = (*SaveAssetCommand)(nil)

// Execute creates or edits the asset.
func (c *SaveAssetCommand) Execute(ctx context.Context, msg SaveAssetInput) error {
	if c.service == nil {
		return errors.New("asset command requires service")
	}
	asset := belboard.Asset{
		UploadDate: msg.UploadDate,
		Title:      msg.Title,
		Subtitle:   msg.Subtitle,
		Category:   msg.Category,
		PageLink:   msg.PageLink,
	}
	var err error
	if msg.Index < 0 {
		err = c.service.AddAsset(ctx, asset)
	} else {
		err = c.service.UpdateAsset(ctx, msg.Index, asset)
	}
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "belboard.command.asset.save", map[string]any{
		"index": msg.Index,
		"title": msg.Title,
	})
	return nil
}

// DeleteAssetCommand wraps Service.DeleteAsset.
type DeleteAssetCommand struct {
	service   assetService
	telemetry Telemetry
}

// NewDeleteAssetCommand creates the command.
func NewDeleteAssetCommand(service assetService, telemetry Telemetry) *DeleteAssetCommand {
	return &DeleteAssetCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[DeleteAssetInput] = (*DeleteAssetCommand)(nil)

// Execute removes the asset.
func (c *DeleteAssetCommand) Execute(ctx context.Context, msg DeleteAssetInput) error {
	if c.service == nil {
		return errors.New("asset command requires service")
	}
	if err := c.service.DeleteAsset(ctx, msg.Index); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "belboard.command.asset.delete", map[string]any{
		"index": msg.Index,
	})
	return nil
}
