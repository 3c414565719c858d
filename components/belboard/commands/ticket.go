package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// ReplyTicketInput captures an admin ticket reply.
type ReplyTicketInput struct {
	TicketNumber string `json:"ticket_number"`
	Text         string `json:"text"`
	ActorID      string `json:"actor_id"`
}

// CloseTicketInput captures a ticket close request.
type CloseTicketInput struct {
	TicketNumber string `json:"ticket_number"`
	ActorID      string `json:"actor_id"`
}

type ticketService interface {
	ReplyTicket(ctx context.Context, number, text string) error
	CloseTicket(ctx context.Context, number string) error
}

// ReplyTicketCommand wraps Service.ReplyTicket.
type ReplyTicketCommand struct {
	service   ticketService
	telemetry Telemetry
}

// NewReplyTicketCommand creates the command.
func NewReplyTicketCommand(service ticketService, telemetry Telemetry) *ReplyTicketCommand {
	return &ReplyTicketCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ReplyTicketInput] = (*ReplyTicketCommand)(nil)

// Execute appends the reply.
func (c *ReplyTicketCommand) Execute(ctx context.Context, msg ReplyTicketInput) error {
	if c.service == nil {
		return errors.New("reply command requires service")
	}
	if msg.TicketNumber == "" {
		return errors.New("reply command requires ticket number")
	}
	if err := c.service.ReplyTicket(ctx, msg.TicketNumber, msg.Text); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "belboard.command.reply", map[string]any{
		"ticket_number": msg.TicketNumber,
	})
	return nil
}

// CloseTicketCommand wraps Service.CloseTicket.
type CloseTicketCommand struct {
	service   ticketService
	telemetry Telemetry
}

// NewCloseTicketCommand creates the command.
func NewCloseTicketCommand(service ticketService, telemetry Telemetry) *CloseTicketCommand {
	return &CloseTicketCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[CloseTicketInput] = (*CloseTicketCommand)(nil)

// Execute closes the ticket.
func (c *CloseTicketCommand) Execute(ctx context.Context, msg CloseTicketInput) error {
	if c.service == nil {
		return errors.New("close command requires service")
	}
	if msg.TicketNumber == "" {
		return errors.New("close command requires ticket number")
	}
	if err := c.service.CloseTicket(ctx, msg.TicketNumber); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "belboard.command.close", map[string]any{
		"ticket_number": msg.TicketNumber,
	})
	return nil
}
