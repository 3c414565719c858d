package belboard

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, 8, 30, 10, 30, 0, 0, time.UTC)
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(nil)
	store.now = fixedClock()
	return store
}

func TestNewStoreDerivesAccounts(t *testing.T) {
	store := newTestStore(t)
	accounts := store.Accounts()
	if len(accounts) == 0 {
		t.Fatal("default seed should produce accounts")
	}
	for _, a := range accounts {
		if a.Email == "" || a.Code == "" {
			t.Fatalf("account %s missing derived fields: %+v", a.ID, a)
		}
	}
}

func TestStoreAccessorsCopy(t *testing.T) {
	store := newTestStore(t)
	accounts := store.Accounts()
	accounts[0].Name = "mutated"
	if store.Accounts()[0].Name == "mutated" {
		t.Fatal("Accounts must return a copy")
	}
}

func TestUpdateAccountTier(t *testing.T) {
	store := newTestStore(t)
	id := store.Accounts()[0].ID
	if err := store.UpdateAccountTier(id, TierLeader); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := store.Account(id)
	if got.Tier != TierLeader {
		t.Fatalf("tier not persisted, got %s", got.Tier)
	}
	if err := store.UpdateAccountTier("KXXMISSING", TierLeader); !errors.Is(err, errAccountNotFound) {
		t.Fatalf("expected account-not-found, got %v", err)
	}
}

func TestTierChangeRegroupsPerformance(t *testing.T) {
	store := newTestStore(t)
	id := store.Accounts()[0].ID
	before := tierRow(store.TierPerformance(), TierLeader)

	if err := store.UpdateAccountTier(id, TierLeader); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := tierRow(store.TierPerformance(), TierLeader)
	if after.Count != before.Count+1 {
		t.Fatalf("leader count should grow by one: before=%d after=%d", before.Count, after.Count)
	}
}

func tierRow(rows []TierPerformance, tier Tier) TierPerformance {
	for _, row := range rows {
		if row.Tier == tier {
			return row
		}
	}
	return TierPerformance{}
}

func TestAppendNote(t *testing.T) {
	store := newTestStore(t)
	id := store.Accounts()[0].ID
	if _, err := store.AppendNote(id, "   "); !errors.Is(err, errEmptyNote) {
		t.Fatalf("blank note should fail, got %v", err)
	}
	if _, err := store.AppendNote(id, "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.AppendNote(id, "first"); err != nil {
		t.Fatalf("duplicate note text is allowed: %v", err)
	}
	notes := store.Notes(id)
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].Time != "2025-08-30 10:30" {
		t.Fatalf("unexpected timestamp %s", notes[0].Time)
	}
}

func TestUpdateBanking(t *testing.T) {
	store := newTestStore(t)
	id := store.Accounts()[0].ID
	profile := BankingProfile{
		BankName:      "CTBC Bank",
		SwiftCode:     "CTCBTWTP",
		AccountHolder: "Maxwell Walker",
		Phone:         "+886-2-1234-5678",
		Address:       "Taipei",
	}
	if _, err := store.UpdateBanking(id, profile, "", ""); err == nil {
		t.Fatal("missing reason must be rejected")
	}
	incomplete := profile
	incomplete.Phone = ""
	if _, err := store.UpdateBanking(id, incomplete, "kyc refresh", ""); err == nil {
		t.Fatal("incomplete profile must be rejected")
	}
	change, err := store.UpdateBanking(id, profile, "kyc refresh", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if change.ChangeID == "" {
		t.Fatal("audit entry needs an id")
	}
	if change.ChangedBy != store.Profile().Name {
		t.Fatalf("actor should default to the profile name, got %s", change.ChangedBy)
	}
	history := store.BankingHistory(id)
	if len(history) != 1 || history[0].Reason != "kyc refresh" {
		t.Fatalf("expected one audit entry, got %+v", history)
	}
}

func TestAssetLifecycle(t *testing.T) {
	store := newTestStore(t)
	base := len(store.Assets())

	asset := Asset{Title: "WISE-IoT Suite", Subtitle: "Edge to cloud", Category: "Brochure", PageLink: "https://example.com/wise"}
	if err := store.AddAsset(asset); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assets := store.Assets()
	if len(assets) != base+1 {
		t.Fatalf("asset not appended")
	}
	added := assets[base]
	if added.UploadDate != "2025-08-30" {
		t.Fatalf("upload date should be stamped, got %s", added.UploadDate)
	}

	edit := added
	edit.Title = "WISE-IoT Suite v2"
	edit.Picture = nil
	if err := store.UpdateAsset(base, edit); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Assets()[base].Title != "WISE-IoT Suite v2" {
		t.Fatal("edit not persisted")
	}

	if err := store.DeleteAsset(base); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.Assets()) != base {
		t.Fatal("delete did not compact the list")
	}
	if err := store.DeleteAsset(99); !errors.Is(err, errAssetNotFound) {
		t.Fatalf("expected index error, got %v", err)
	}
}

func TestUpdateAssetKeepsPicture(t *testing.T) {
	store := newTestStore(t)
	picture := &AssetPicture{Name: "banner.png", Size: 10}
	if err := store.AddAsset(Asset{Title: "T", Subtitle: "S", Category: "C", PageLink: "L", Picture: picture}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx := len(store.Assets()) - 1
	edit := Asset{Title: "T2", Subtitle: "S", Category: "C", PageLink: "L"}
	if err := store.UpdateAsset(idx, edit); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := store.Assets()[idx]
	if got.Picture == nil || got.Picture.Name != "banner.png" {
		t.Fatal("edit without a new picture must keep the existing one")
	}
}

func TestReplyTicket(t *testing.T) {
	store := newTestStore(t)
	open := store.OpenTickets()
	if len(open) == 0 {
		t.Fatal("default seed should have open tickets")
	}
	number := open[0].TicketNumber

	if err := store.ReplyTicket(number, " "); !errors.Is(err, errEmptyReply) {
		t.Fatalf("blank reply should fail, got %v", err)
	}
	if err := store.ReplyTicket(number, "Looking into it."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ticket, _ := store.Ticket(number)
	if ticket.Status != StatusReplied {
		t.Fatalf("reply should move ticket to Replied, got %s", ticket.Status)
	}
	if last := ticket.Replies[len(ticket.Replies)-1]; last.Text != "Looking into it." {
		t.Fatalf("reply not appended: %+v", last)
	}
}

func TestCloseTicket(t *testing.T) {
	store := newTestStore(t)
	number := store.OpenTickets()[0].TicketNumber
	if err := store.CloseTicket(number); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ticket, _ := store.Ticket(number)
	if ticket.Status != StatusClosed {
		t.Fatalf("expected Closed, got %s", ticket.Status)
	}
	last := ticket.Replies[len(ticket.Replies)-1]
	if !strings.Contains(last.Text, "Case closed by admin.") {
		t.Fatalf("terminal reply missing: %+v", last)
	}
	if err := store.ReplyTicket(number, "too late"); err == nil {
		t.Fatal("closed ticket must reject replies")
	}
	if err := store.CloseTicket(number); err == nil {
		t.Fatal("closing twice must fail")
	}
}

func TestOpenClosedPartition(t *testing.T) {
	store := newTestStore(t)
	total := len(store.Tickets())
	open := len(store.OpenTickets())
	closed := len(store.ClosedTickets())
	if open+closed != total {
		t.Fatalf("partition broken: %d + %d != %d", open, closed, total)
	}
	number := store.OpenTickets()[0].TicketNumber
	if err := store.CloseTicket(number); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.OpenTickets()) != open-1 || len(store.ClosedTickets()) != closed+1 {
		t.Fatal("close should move the ticket between views")
	}
}
