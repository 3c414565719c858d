package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	belboard "github.com/iotmart/belportal/components/belboard"
)

// UpdateBankingInput captures a banking profile change plus its audit
// reason.
type UpdateBankingInput struct {
	AccountID     string `json:"account_id"`
	BankName      string `json:"bank_name"`
	SwiftCode     string `json:"swift_code"`
	AccountHolder string `json:"account_holder"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Reason        string `json:"reason"`
	ActorID       string `json:"actor_id"`
}

type bankingService interface {
	UpdateBanking(ctx context.Context, id string, profile belboard.BankingProfile, reason, actor string) (belboard.BankingChange, error)
}

// UpdateBankingCommand wraps Service.UpdateBanking.
type UpdateBankingCommand struct {
	service   bankingService
	telemetry Telemetry
}

// NewUpdateBankingCommand creates the command.
func NewUpdateBankingCommand(service bankingService, telemetry Telemetry) *UpdateBankingCommand {
	return &UpdateBankingCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[UpdateBankingInput] = (*UpdateBankingCommand)(nil)

// Execute replaces the banking profile.
func (c *UpdateBankingCommand) Execute(ctx context.Context, msg UpdateBankingInput) error {
	if c.service == nil {
		return errors.New("banking command requires service")
	}
	if msg.AccountID == "" {
		return errors.New("banking command requires account id")
	}
	profile := belboard.BankingProfile{
		BankName:      msg.BankName,
		SwiftCode:     msg.SwiftCode,
		AccountHolder: msg.AccountHolder,
		Phone:         msg.Phone,
		Address:       msg.Address,
	}
	change, err := c.service.UpdateBanking(ctx, msg.AccountID, profile, msg.Reason, msg.ActorID)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "belboard.command.banking", map[string]any{
		"account_id": msg.AccountID,
		"change_id":  change.ChangeID,
	})
	return nil
}
