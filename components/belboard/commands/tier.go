package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	belboard "github.com/iotmart/belportal/components/belboard"
)

// UpdateTierInput captures a tier change request.
type UpdateTierInput struct {
	AccountID string `json:"account_id"`
	Tier      string `json:"tier"`
	ActorID   string `json:"actor_id"`
}

type tierService interface {
	UpdateAccountTier(ctx context.Context, id string, tier belboard.Tier) error
}

// UpdateTierCommand wraps Service.UpdateAccountTier.
type UpdateTierCommand struct {
	service   tierService
	telemetry Telemetry
}

// NewUpdateTierCommand creates the command.
func NewUpdateTierCommand(service tierService, telemetry Telemetry) *UpdateTierCommand {
	return &UpdateTierCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[UpdateTierInput] = (*UpdateTierCommand)(nil)

// Execute applies the tier change.
func (c *UpdateTierCommand) Execute(ctx context.Context, msg UpdateTierInput) error {
	if c.service == nil {
		return errors.New("tier command requires service")
	}
	if msg.AccountID == "" {
		return errors.New("tier command requires account id")
	}
	if err := c.service.UpdateAccountTier(ctx, msg.AccountID, belboard.Tier(msg.Tier)); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "belboard.command.tier", map[string]any{
		"account_id": msg.AccountID,
		"tier":       msg.Tier,
	})
	return nil
}
