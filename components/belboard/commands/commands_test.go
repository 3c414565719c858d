package commands

import (
	"context"
	"errors"
	"testing"

	belboard "github.com/iotmart/belportal/components/belboard"
)

type fakeService struct {
	tierCalls    []belboard.Tier
	noteCalls    []string
	bankingCalls []belboard.BankingProfile
	replies      []string
	closed       []string
	added        []belboard.Asset
	updated      []int
	deleted      []int
	err          error
}

func (f *fakeService) UpdateAccountTier(_ context.Context, id string, tier belboard.Tier) error {
	f.tierCalls = append(f.tierCalls, tier)
	return f.err
}

func (f *fakeService) AddNote(_ context.Context, id, text string) (belboard.Note, error) {
	f.noteCalls = append(f.noteCalls, text)
	return belboard.Note{Text: text}, f.err
}

func (f *fakeService) UpdateBanking(_ context.Context, id string, profile belboard.BankingProfile, reason, actor string) (belboard.BankingChange, error) {
	f.bankingCalls = append(f.bankingCalls, profile)
	return belboard.BankingChange{ChangeID: "change-1", Reason: reason}, f.err
}

func (f *fakeService) ReplyTicket(_ context.Context, number, text string) error {
	f.replies = append(f.replies, number)
	return f.err
}

func (f *fakeService) CloseTicket(_ context.Context, number string) error {
	f.closed = append(f.closed, number)
	return f.err
}

func (f *fakeService) AddAsset(_ context.Context, asset belboard.Asset) error {
	f.added = append(f.added, asset)
	return f.err
}

func (f *fakeService) UpdateAsset(_ context.Context, index int, asset belboard.Asset) error {
	f.updated = append(f.updated, index)
	return f.err
}

func (f *fakeService) DeleteAsset(_ context.Context, index int) error {
	f.deleted = append(f.deleted, index)
	return f.err
}

type recordingTelemetry struct {
	events []string
}

func (r *recordingTelemetry) Record(_ context.Context, event string, _ map[string]any) {
	r.events = append(r.events, event)
}

func TestUpdateTierCommand(t *testing.T) {
	service := &fakeService{}
	telemetry := &recordingTelemetry{}
	cmd := NewUpdateTierCommand(service, telemetry)

	if err := cmd.Execute(context.Background(), UpdateTierInput{}); err == nil {
		t.Fatal("missing account id should fail")
	}
	err := cmd.Execute(context.Background(), UpdateTierInput{AccountID: "KTWADVANT", Tier: "Leader"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(service.tierCalls) != 1 || service.tierCalls[0] != belboard.TierLeader {
		t.Fatalf("service not invoked correctly: %v", service.tierCalls)
	}
	if len(telemetry.events) != 1 || telemetry.events[0] != "belboard.command.tier" {
		t.Fatalf("telemetry missing: %v", telemetry.events)
	}
}

func TestUpdateTierCommandRequiresService(t *testing.T) {
	cmd := NewUpdateTierCommand(nil, nil)
	if err := cmd.Execute(context.Background(), UpdateTierInput{AccountID: "x"}); err == nil {
		t.Fatal("nil service should fail")
	}
}

func TestAddNoteCommand(t *testing.T) {
	service := &fakeService{}
	cmd := NewAddNoteCommand(service, nil)
	if err := cmd.Execute(context.Background(), AddNoteInput{AccountID: "KTWADVANT", Text: "note"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(service.noteCalls) != 1 || service.noteCalls[0] != "note" {
		t.Fatalf("note not forwarded: %v", service.noteCalls)
	}
}

func TestUpdateBankingCommand(t *testing.T) {
	service := &fakeService{}
	cmd := NewUpdateBankingCommand(service, nil)
	input := UpdateBankingInput{
		AccountID:     "KTWADVANT",
		BankName:      "CTBC",
		SwiftCode:     "CTCBTWTP",
		AccountHolder: "Maxwell",
		Phone:         "123",
		Address:       "Taipei",
		Reason:        "kyc",
	}
	if err := cmd.Execute(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(service.bankingCalls) != 1 || service.bankingCalls[0].BankName != "CTBC" {
		t.Fatalf("profile not forwarded: %+v", service.bankingCalls)
	}
}

func TestTicketCommands(t *testing.T) {
	service := &fakeService{}
	reply := NewReplyTicketCommand(service, nil)
	closeCmd := NewCloseTicketCommand(service, nil)

	if err := reply.Execute(context.Background(), ReplyTicketInput{}); err == nil {
		t.Fatal("missing ticket number should fail")
	}
	if err := reply.Execute(context.Background(), ReplyTicketInput{TicketNumber: "TICK-2025-001", Text: "hi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := closeCmd.Execute(context.Background(), CloseTicketInput{TicketNumber: "TICK-2025-001"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(service.replies) != 1 || len(service.closed) != 1 {
		t.Fatalf("ticket calls: replies=%v closed=%v", service.replies, service.closed)
	}
}

func TestTicketCommandsPropagateErrors(t *testing.T) {
	boom := errors.New("store rejected")
	service := &fakeService{err: boom}
	cmd := NewCloseTicketCommand(service, nil)
	if err := cmd.Execute(context.Background(), CloseTicketInput{TicketNumber: "T"}); !errors.Is(err, boom) {
		t.Fatalf("expected propagated error, got %v", err)
	}
}

func TestSaveAssetCommandRoutesByIndex(t *testing.T) {
	service := &fakeService{}
	cmd := NewSaveAssetCommand(service, nil)
	input := SaveAssetInput{Index: -1, Title: "T", Subtitle: "S", Category: "C", PageLink: "L"}
	if err := cmd.Execute(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	input.Index = 2
	if err := cmd.Execute(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(service.added) != 1 || len(service.updated) != 1 || service.updated[0] != 2 {
		t.Fatalf("routing wrong: added=%d updated=%v", len(service.added), service.updated)
	}
}

func TestDeleteAssetCommand(t *testing.T) {
	service := &fakeService{}
	telemetry := &recordingTelemetry{}
	cmd := NewDeleteAssetCommand(service, telemetry)
	if err := cmd.Execute(context.Background(), DeleteAssetInput{Index: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(service.deleted) != 1 || service.deleted[0] != 1 {
		t.Fatalf("delete not forwarded: %v", service.deleted)
	}
	if len(telemetry.events) != 1 {
		t.Fatalf("telemetry missing: %v", telemetry.events)
	}
}
