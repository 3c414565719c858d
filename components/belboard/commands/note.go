package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	belboard "github.com/iotmart/belportal/components/belboard"
)

// AddNoteInput captures a note submission.
type AddNoteInput struct {
	AccountID string `json:"account_id"`
	Text      string `json:"text"`
	ActorID   string `json:"actor_id"`
}

type noteService interface {
	AddNote(ctx context.Context, id, text string) (belboard.Note, error)
}

// AddNoteCommand wraps Service.AddNote.
type AddNoteCommand struct {
	service   noteService
	telemetry Telemetry
}

// NewAddNoteCommand creates the command.
func NewAddNoteCommand(service noteService, telemetry Telemetry) *AddNoteCommand {
	return &AddNoteCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[AddNoteInput] = (*AddNoteCommand)(nil)

// Execute appends the note.
func (c *AddNoteCommand) Execute(ctx context.Context, msg AddNoteInput) error {
	if c.service == nil {
		return errors.New("note command requires service")
	}
	if msg.AccountID == "" {
		return errors.New("note command requires account id")
	}
	if _, err := c.service.AddNote(ctx, msg.AccountID, msg.Text); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "belboard.command.note", map[string]any{
		"account_id": msg.AccountID,
	})
	return nil
}
