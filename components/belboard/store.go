package belboard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	errAccountNotFound = errors.New("belboard: account not found")
	errTicketNotFound  = errors.New("belboard: ticket not found")
	errAssetNotFound   = errors.New("belboard: asset index out of range")
	errEmptyNote       = errors.New("belboard: note text is required")
	errEmptyReply      = errors.New("belboard: reply text is required")
)

// Store owns every collection for one portal session. All mutation goes
// through its methods so dependent views can be re-rendered
// deterministically. The store is bound to the UI event loop: it is
// initialized once at startup and mutated from a single goroutine.
type Store struct {
	profile        UserProfile
	notifications  []Notification
	summaryStats   []SummaryStat
	accounts       []Account
	notes          map[string][]Note
	banking        map[string]BankingProfile
	bankingHistory map[string][]BankingChange
	payoutMessage  string
	payouts        []PayoutBatch
	orders         []Order
	assets         []Asset
	tickets        []Ticket
	announcements  []Announcement

	now func() time.Time
}

// NewStore derives the session collections from the injected seed.
func NewStore(seed *Seed) *Store {
	if seed == nil {
		seed = DefaultSeed()
	}
	return &Store{
		profile:        seed.UserProfile,
		notifications:  append([]Notification(nil), seed.Notifications...),
		summaryStats:   append([]SummaryStat(nil), seed.SummaryStats...),
		accounts:       BuildAccounts(seed.Leaderboard),
		notes:          make(map[string][]Note),
		banking:        make(map[string]BankingProfile),
		bankingHistory: make(map[string][]BankingChange),
		payoutMessage:  seed.Payouts.PayoutDayMessage,
		payouts:        append([]PayoutBatch(nil), seed.Payouts.History...),
		orders:         append([]Order(nil), seed.Orders...),
		assets:         append([]Asset(nil), seed.Assets...),
		tickets:        append([]Ticket(nil), seed.Tickets...),
		announcements:  append([]Announcement(nil), seed.Announcements...),
		now:            time.Now,
	}
}

// Profile returns the signed-in admin profile.
func (s *Store) Profile() UserProfile { return s.profile }

// Notifications returns the header notification feed.
func (s *Store) Notifications() []Notification {
	return append([]Notification(nil), s.notifications...)
}

// SummaryStats returns the dashboard KPI cards.
func (s *Store) SummaryStats() []SummaryStat {
	return append([]SummaryStat(nil), s.summaryStats...)
}

// Accounts returns a copy of the authoritative account set in insertion
// order.
func (s *Store) Accounts() []Account {
	return append([]Account(nil), s.accounts...)
}

// Account resolves one account by referral id.
func (s *Store) Account(id string) (Account, bool) {
	for _, a := range s.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// UpdateAccountTier mutates the authoritative record in place. Dependent
// views (the accounts table and the performance-by-tier grouping) pick up
// the change on their next render.
func (s *Store) UpdateAccountTier(id string, tier Tier) error {
	if tier == "" {
		return errors.New("belboard: tier is required")
	}
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			s.accounts[i].Tier = tier
			return nil
		}
	}
	return fmt.Errorf("%w: %s", errAccountNotFound, id)
}

// Notes returns the newest-first note list for an account.
func (s *Store) Notes(id string) []Note {
	return append([]Note(nil), s.notes[id]...)
}

// AppendNote prepends a note for the account. Appends are deliberately
// not deduplicated: submitting the same text twice records two entries.
func (s *Store) AppendNote(id, text string) (Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Note{}, errEmptyNote
	}
	note := Note{Text: text, Time: s.now().Format("2006-01-02 15:04")}
	s.notes[id] = append([]Note{note}, s.notes[id]...)
	return note, nil
}

// Banking returns the stored banking profile for an account.
func (s *Store) Banking(id string) (BankingProfile, bool) {
	profile, ok := s.banking[id]
	return profile, ok
}

// BankingHistory returns the newest-first audit trail for an account.
func (s *Store) BankingHistory(id string) []BankingChange {
	return append([]BankingChange(nil), s.bankingHistory[id]...)
}

// UpdateBanking replaces the banking profile and records exactly one audit
// entry carrying the change reason. Every field of the profile and the
// reason are required; nothing is mutated on failure.
func (s *Store) UpdateBanking(id string, profile BankingProfile, reason, actor string) (BankingChange, error) {
	if profile.BankName == "" || profile.SwiftCode == "" || profile.AccountHolder == "" ||
		profile.Phone == "" || profile.Address == "" {
		return BankingChange{}, errors.New("belboard: all banking fields are required")
	}
	if strings.TrimSpace(reason) == "" {
		return BankingChange{}, errors.New("belboard: a change reason is required")
	}
	if actor == "" {
		actor = s.profile.Name
	}
	change := BankingChange{
		ChangeID:  uuid.NewString(),
		Profile:   profile,
		Reason:    strings.TrimSpace(reason),
		ChangedBy: actor,
		Timestamp: s.now().Format(time.RFC3339),
	}
	s.banking[id] = profile
	s.bankingHistory[id] = append([]BankingChange{change}, s.bankingHistory[id]...)
	return change, nil
}

// PayoutDayMessage returns the payout schedule banner text.
func (s *Store) PayoutDayMessage() string { return s.payoutMessage }

// Payouts returns the payout batch history.
func (s *Store) Payouts() []PayoutBatch {
	return append([]PayoutBatch(nil), s.payouts...)
}

// Orders returns the order history.
func (s *Store) Orders() []Order {
	return append([]Order(nil), s.orders...)
}

// Assets returns the content asset list.
func (s *Store) Assets() []Asset {
	return append([]Asset(nil), s.assets...)
}

// AddAsset appends a validated asset, stamping today's upload date when
// the form left it empty.
func (s *Store) AddAsset(asset Asset) error {
	if err := ValidateAsset(asset); err != nil {
		return err
	}
	if asset.UploadDate == "" {
		asset.UploadDate = s.now().Format("2006-01-02")
	}
	s.assets = append(s.assets, asset)
	return nil
}

// UpdateAsset mutates an asset by positional index. An edit without a new
// picture keeps the existing one.
func (s *Store) UpdateAsset(index int, asset Asset) error {
	if index < 0 || index >= len(s.assets) {
		return fmt.Errorf("%w: %d", errAssetNotFound, index)
	}
	if err := ValidateAsset(asset); err != nil {
		return err
	}
	if asset.Picture == nil {
		asset.Picture = s.assets[index].Picture
	}
	if asset.UploadDate == "" {
		asset.UploadDate = s.now().Format("2006-01-02")
	}
	s.assets[index] = asset
	return nil
}

// DeleteAsset removes an asset by positional index, compacting the list.
func (s *Store) DeleteAsset(index int) error {
	if index < 0 || index >= len(s.assets) {
		return fmt.Errorf("%w: %d", errAssetNotFound, index)
	}
	s.assets = append(s.assets[:index], s.assets[index+1:]...)
	return nil
}

// Tickets returns the full ticket list.
func (s *Store) Tickets() []Ticket {
	return append([]Ticket(nil), s.tickets...)
}

// OpenTickets returns every ticket still awaiting work (anything not
// Closed).
func (s *Store) OpenTickets() []Ticket {
	open := make([]Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		if t.Status != StatusClosed {
			open = append(open, t)
		}
	}
	return open
}

// ClosedTickets returns the closed-ticket history view.
func (s *Store) ClosedTickets() []Ticket {
	closed := make([]Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		if t.Status == StatusClosed {
			closed = append(closed, t)
		}
	}
	return closed
}

// Ticket resolves one ticket by number.
func (s *Store) Ticket(number string) (Ticket, bool) {
	for _, t := range s.tickets {
		if t.TicketNumber == number {
			return t, true
		}
	}
	return Ticket{}, false
}

// ReplyTicket appends a reply and moves the ticket to Replied. Closed
// tickets reject replies; the transition validator enforces that.
func (s *Store) ReplyTicket(number, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errEmptyReply
	}
	ticket := s.ticketRef(number)
	if ticket == nil {
		return fmt.Errorf("%w: %s", errTicketNotFound, number)
	}
	if err := ticket.Transition(StatusReplied); err != nil {
		return err
	}
	ticket.Replies = append(ticket.Replies, Reply{
		Time: s.now().Format("2006-01-02 15:04"),
		Text: text,
	})
	return nil
}

// CloseTicket ends the conversation: a terminal reply is recorded and the
// status becomes Closed.
func (s *Store) CloseTicket(number string) error {
	ticket := s.ticketRef(number)
	if ticket == nil {
		return fmt.Errorf("%w: %s", errTicketNotFound, number)
	}
	if err := ticket.Transition(StatusClosed); err != nil {
		return err
	}
	ticket.Replies = append(ticket.Replies, Reply{
		Time: s.now().Format("2006-01-02 15:04"),
		Text: "Case closed by admin.",
	})
	return nil
}

func (s *Store) ticketRef(number string) *Ticket {
	for i := range s.tickets {
		if s.tickets[i].TicketNumber == number {
			return &s.tickets[i]
		}
	}
	return nil
}

// Announcements returns the announcement list.
func (s *Store) Announcements() []Announcement {
	return append([]Announcement(nil), s.announcements...)
}

// TierPerformance aggregates accounts into the performance-by-tier table.
// It reads the live account set, so a tier change through
// UpdateAccountTier regroups the row totals on the next render.
func (s *Store) TierPerformance() []TierPerformance {
	rows := make([]TierPerformance, 0, len(Tiers()))
	for _, tier := range Tiers() {
		row := TierPerformance{Tier: tier}
		for _, a := range s.accounts {
			if a.Tier != tier {
				continue
			}
			row.Count++
			row.Clicks += a.Clicks30
			row.Orders += a.Orders30
			row.Revenue += a.Revenue30
		}
		if row.Clicks > 0 {
			row.ConvRate = float64(row.Orders) / float64(row.Clicks)
		}
		if row.Orders > 0 {
			row.AOV = row.Revenue / float64(row.Orders)
		}
		rows = append(rows, row)
	}
	return rows
}
