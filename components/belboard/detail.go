package belboard

import (
	"context"
	"errors"
	"strings"
)

// DetailTab identifies one sub-view of the account detail modal.
type DetailTab string

// Tabs of the account detail modal, first tab active on open.
const (
	TabPerformance DetailTab = "performance"
	TabNotes       DetailTab = "notes"
	TabBanking     DetailTab = "banking"
)

var (
	errDetailClosed  = errors.New("belboard: no account detail is open")
	errBankingGate   = errors.New("belboard: banking save requires a reason and confirmation")
	errNoBankingEdit = errors.New("belboard: no banking edit in progress")
)

// RowSnapshot carries the display text of an already-rendered row so a
// detail view can open for a record the authoritative collection does not
// hold (e.g. a raw order row). Numeric cells may be currency formatted.
type RowSnapshot struct {
	Name    string
	Tier    string
	Clicks  string
	Orders  string
	Revenue string
}

// BankingEdit is the in-progress banking form. The save control stays
// disabled until the reason is non-empty and the confirmation flag is set.
type BankingEdit struct {
	Profile   BankingProfile
	Reason    string
	Confirmed bool
}

// SaveEnabled reports whether the gated save control is active.
func (e *BankingEdit) SaveEnabled() bool {
	return e != nil && strings.TrimSpace(e.Reason) != "" && e.Confirmed
}

// DetailSession is the account detail modal: it binds one record, hosts
// tabbed sub-views, and funnels edits back through the store. Only one
// session is live at a time; opening while open rebinds to the new record.
type DetailSession struct {
	store *Store
	hook  RefreshHook

	open      bool
	record    Account
	ephemeral bool
	tab       DetailTab

	pendingTier Tier
	pendingNote string
	bankingEdit *BankingEdit
}

// NewDetailSession builds a closed session over the store.
func NewDetailSession(store *Store, hook RefreshHook) *DetailSession {
	if hook == nil {
		hook = noopRefreshHook{}
	}
	return &DetailSession{store: store, hook: hook}
}

// Open binds the session to the account with the given id, resetting to
// the first tab and discarding any previous in-progress edits. A lookup
// miss leaves the session untouched and reports false; callers holding a
// rendered row can fall back to OpenFromRow.
func (s *DetailSession) Open(id string) bool {
	record, ok := s.store.Account(id)
	if !ok {
		return false
	}
	s.bind(record, false)
	return true
}

// OpenFromRow reconstructs a minimal ephemeral record from rendered row
// text and binds the session to it. The reconstruction is never persisted
// back to the store.
func (s *DetailSession) OpenFromRow(id string, row RowSnapshot) {
	tier := Tier(strings.TrimSpace(row.Tier))
	if tier == "" {
		tier = TierExplorer
	}
	record := Account{
		ID:        id,
		Name:      strings.TrimSpace(row.Name),
		Code:      "—",
		Tier:      tier,
		Clicks30:  int(extractNumber(row.Clicks)),
		Orders30:  int(extractNumber(row.Orders)),
		Revenue30: extractNumber(row.Revenue),
	}
	if record.Name == "" {
		record.Name = "—"
	}
	s.bind(record, true)
}

func (s *DetailSession) bind(record Account, ephemeral bool) {
	s.open = true
	s.record = record
	s.ephemeral = ephemeral
	s.tab = TabPerformance
	s.pendingTier = record.Tier
	s.pendingNote = ""
	s.bankingEdit = nil
}

// IsOpen reports whether a record is bound.
func (s *DetailSession) IsOpen() bool { return s.open }

// Record returns the bound account.
func (s *DetailSession) Record() Account { return s.record }

// Ephemeral reports whether the bound record was reconstructed from row
// text rather than resolved from the store.
func (s *DetailSession) Ephemeral() bool { return s.ephemeral }

// Tab returns the active sub-view.
func (s *DetailSession) Tab() DetailTab { return s.tab }

// SwitchTab activates a sub-view. In-progress edits on other tabs (a
// drafted note, a banking form) are kept.
func (s *DetailSession) SwitchTab(tab DetailTab) {
	if !s.open {
		return
	}
	s.tab = tab
}

// SetPendingTier stages a tier change; nothing is written until Save.
func (s *DetailSession) SetPendingTier(tier Tier) {
	s.pendingTier = tier
}

// Save validates and writes the staged account edits to the authoritative
// record, then notifies every view that displays the changed fields. An
// ephemeral record is display-only, so Save is a no-op for it.
func (s *DetailSession) Save() error {
	if !s.open {
		return errDetailClosed
	}
	if s.ephemeral {
		return nil
	}
	if s.pendingTier == "" {
		return errors.New("belboard: tier is required")
	}
	if err := s.store.UpdateAccountTier(s.record.ID, s.pendingTier); err != nil {
		return err
	}
	s.record.Tier = s.pendingTier
	s.notify(ViewAccounts, "account-updated")
	s.notify(ViewAccountCards, "account-updated")
	return nil
}

// SetPendingNote stages note text typed into the notes tab.
func (s *DetailSession) SetPendingNote(text string) {
	s.pendingNote = text
}

// PendingNote returns the drafted note text.
func (s *DetailSession) PendingNote() string { return s.pendingNote }

// AddNote appends the drafted note to the bound account and clears the
// draft. Duplicate submissions create duplicate entries by design.
func (s *DetailSession) AddNote() (Note, error) {
	if !s.open {
		return Note{}, errDetailClosed
	}
	note, err := s.store.AppendNote(s.record.ID, s.pendingNote)
	if err != nil {
		return Note{}, err
	}
	s.pendingNote = ""
	return note, nil
}

// Notes returns the bound account's note history, newest first.
func (s *DetailSession) Notes() []Note {
	if !s.open {
		return nil
	}
	return s.store.Notes(s.record.ID)
}

// BeginBankingEdit starts a banking form prefilled from the stored
// profile. Re-entering while editing keeps the current draft.
func (s *DetailSession) BeginBankingEdit() *BankingEdit {
	if !s.open {
		return nil
	}
	if s.bankingEdit == nil {
		profile, _ := s.store.Banking(s.record.ID)
		s.bankingEdit = &BankingEdit{Profile: profile}
	}
	return s.bankingEdit
}

// BankingEdit returns the in-progress banking form, nil when not editing.
func (s *DetailSession) BankingEdit() *BankingEdit { return s.bankingEdit }

// CancelBankingEdit discards the banking draft without mutating anything.
func (s *DetailSession) CancelBankingEdit() {
	s.bankingEdit = nil
}

// SaveBanking commits the banking draft. The gate mirrors the save
// control: with no reason or no confirmation the call fails and nothing
// is mutated. Success appends exactly one audit entry and ends the edit.
func (s *DetailSession) SaveBanking() (BankingChange, error) {
	if !s.open {
		return BankingChange{}, errDetailClosed
	}
	if s.bankingEdit == nil {
		return BankingChange{}, errNoBankingEdit
	}
	if !s.bankingEdit.SaveEnabled() {
		return BankingChange{}, errBankingGate
	}
	change, err := s.store.UpdateBanking(s.record.ID, s.bankingEdit.Profile, s.bankingEdit.Reason, "")
	if err != nil {
		return BankingChange{}, err
	}
	s.bankingEdit = nil
	s.notify(ViewAccounts, "banking-updated")
	return change, nil
}

// Close unbinds the session and drops in-progress edits.
func (s *DetailSession) Close() {
	s.open = false
	s.record = Account{}
	s.ephemeral = false
	s.pendingNote = ""
	s.bankingEdit = nil
}

func (s *DetailSession) notify(view ViewID, reason string) {
	_ = s.hook.ViewUpdated(context.Background(), ViewEvent{
		View:     view,
		RecordID: s.record.ID,
		Reason:   reason,
	})
}
