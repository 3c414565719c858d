package belboard

import (
	"context"
	"sort"
)

// Options configures the portal Service. Collaborators are provided via
// interface so renderers can swap implementations without importing
// internal packages.
type Options struct {
	Store       *Store
	RefreshHook RefreshHook
	Telemetry   Telemetry
}

// Service orchestrates the portal's views over the session store: it owns
// the filter/sort/selection state of the accounts table, a pagination
// context per view, and the account detail session. Every mutation runs
// through here so the refresh hook fires for each dependent view.
type Service struct {
	store     *Store
	hook      RefreshHook
	telemetry Telemetry

	filters   FilterState
	sortState SortState
	selection *Selection
	views     map[ViewID]*ViewState
	detail    *DetailSession
}

// NewService builds a Service with safe defaults.
func NewService(opts Options) *Service {
	if opts.Store == nil {
		opts.Store = NewStore(nil)
	}
	if opts.RefreshHook == nil {
		opts.RefreshHook = noopRefreshHook{}
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	views := make(map[ViewID]*ViewState, len(AllViews()))
	for _, view := range AllViews() {
		views[view] = newViewState(view)
	}
	return &Service{
		store:     opts.Store,
		hook:      opts.RefreshHook,
		telemetry: opts.Telemetry,
		selection: NewSelection(),
		views:     views,
		detail:    NewDetailSession(opts.Store, opts.RefreshHook),
	}
}

// Store exposes the session store for commands and renderers.
func (s *Service) Store() *Store { return s.store }

// Detail returns the account detail session.
func (s *Service) Detail() *DetailSession { return s.detail }

// Selection returns the account table selection tracker.
func (s *Service) Selection() *Selection { return s.selection }

// Filters returns the active account filter state.
func (s *Service) Filters() FilterState { return s.filters }

// Sort returns the active account sort state.
func (s *Service) Sort() SortState { return s.sortState }

// View returns the pagination context for a view.
func (s *Service) View(view ViewID) *ViewState {
	state, ok := s.views[view]
	if !ok {
		state = newViewState(view)
		s.views[view] = state
	}
	return state
}

// ApplyFilters replaces the account filter state, returns to page one,
// and clears the selection: filtering shifts record identity across
// pages, so a stale selection would be meaningless.
func (s *Service) ApplyFilters(ctx context.Context, filters FilterState) {
	s.filters = filters
	s.View(ViewAccounts).Reset()
	s.View(ViewAccountCards).Reset()
	s.selection.Clear()
	s.record(ctx, "belboard.accounts.filter", map[string]any{
		"active": !filters.IsZero(),
	})
	s.notify(ctx, ViewAccounts, "filter")
}

// ResetFilters clears every predicate.
func (s *Service) ResetFilters(ctx context.Context) {
	s.ApplyFilters(ctx, FilterState{})
}

// ToggleSort flips or sets the account sort key and re-renders.
func (s *Service) ToggleSort(ctx context.Context, key string) {
	s.sortState.Toggle(key)
	s.notify(ctx, ViewAccounts, "sort")
}

// processedAccounts runs the engine over the live account set.
func (s *Service) processedAccounts() []Account {
	return Process(s.store.Accounts(), s.filters, s.sortState)
}

// AccountsPage returns the current window of the accounts table.
func (s *Service) AccountsPage() Page[Account] {
	state := s.View(ViewAccounts)
	return Paginate(s.processedAccounts(), state.Page, state.PageSize)
}

// AccountCardsPage returns the current window of the card layout, which
// shares filters with the table but paginates independently.
func (s *Service) AccountCardsPage() Page[Account] {
	state := s.View(ViewAccountCards)
	return Paginate(s.processedAccounts(), state.Page, state.PageSize)
}

// NextPage advances a view; the accounts views clamp against the
// filtered total.
func (s *Service) NextPage(ctx context.Context, view ViewID) {
	s.View(view).Next(s.viewTotal(view))
	s.notify(ctx, view, "page")
}

// PrevPage steps a view back one page.
func (s *Service) PrevPage(ctx context.Context, view ViewID) {
	s.View(view).Prev()
	s.notify(ctx, view, "page")
}

// SetRowsPerPage reconfigures a view's page size and returns it to the
// first page.
func (s *Service) SetRowsPerPage(ctx context.Context, view ViewID, size int) {
	s.View(view).SetPageSize(size)
	s.notify(ctx, view, "page-size")
}

func (s *Service) viewTotal(view ViewID) int {
	switch view {
	case ViewAccounts, ViewAccountCards:
		return len(s.processedAccounts())
	case ViewPayouts:
		return len(s.store.Payouts())
	case ViewOrders:
		return len(s.store.Orders())
	case ViewAssets:
		return len(s.store.Assets())
	case ViewTickets:
		return len(s.store.OpenTickets())
	case ViewTicketHistory:
		return len(s.store.ClosedTickets())
	case ViewAnnouncements:
		return len(s.store.Announcements())
	default:
		return 0
	}
}

// ToggleSelect flips one row's selection.
func (s *Service) ToggleSelect(id string) {
	s.selection.Toggle(id)
}

// ToggleSelectAllOnPage selects or deselects exactly the rows on the
// current accounts page, leaving other pages' selections untouched.
func (s *Service) ToggleSelectAllOnPage(checked bool) {
	page := s.AccountsPage()
	ids := make([]string, len(page.Items))
	for i, a := range page.Items {
		ids[i] = a.ID
	}
	s.selection.SelectAllOnPage(ids, checked)
}

// PageFullySelected reports the derived state of the select-all checkbox
// for the current accounts page.
func (s *Service) PageFullySelected() bool {
	page := s.AccountsPage()
	ids := make([]string, len(page.Items))
	for i, a := range page.Items {
		ids[i] = a.ID
	}
	return s.selection.AllSelected(ids)
}

// FilterCountries returns the distinct countries of the account set,
// sorted, for populating the country filter control.
func (s *Service) FilterCountries() []string {
	seen := make(map[string]struct{})
	var countries []string
	for _, a := range s.store.Accounts() {
		country := a.Country()
		if _, ok := seen[country]; ok {
			continue
		}
		seen[country] = struct{}{}
		countries = append(countries, country)
	}
	sort.Strings(countries)
	return countries
}

// FilterRegions returns the distinct regions of the account set, sorted.
func (s *Service) FilterRegions() []string {
	seen := make(map[string]struct{})
	var regions []string
	for _, a := range s.store.Accounts() {
		region := a.Region()
		if _, ok := seen[region]; ok {
			continue
		}
		seen[region] = struct{}{}
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}

// PayoutsPage returns the current window of the payout history.
func (s *Service) PayoutsPage() Page[PayoutBatch] {
	state := s.View(ViewPayouts)
	return Paginate(s.store.Payouts(), state.Page, state.PageSize)
}

// OrdersPage returns the current window of the order history.
func (s *Service) OrdersPage() Page[Order] {
	state := s.View(ViewOrders)
	return Paginate(s.store.Orders(), state.Page, state.PageSize)
}

// AssetsPage returns the current window of the content asset list.
func (s *Service) AssetsPage() Page[Asset] {
	state := s.View(ViewAssets)
	return Paginate(s.store.Assets(), state.Page, state.PageSize)
}

// TicketsPage returns the current window of open support tickets.
func (s *Service) TicketsPage() Page[Ticket] {
	state := s.View(ViewTickets)
	return Paginate(s.store.OpenTickets(), state.Page, state.PageSize)
}

// TicketHistoryPage returns the current window of closed tickets.
func (s *Service) TicketHistoryPage() Page[Ticket] {
	state := s.View(ViewTicketHistory)
	return Paginate(s.store.ClosedTickets(), state.Page, state.PageSize)
}

// AnnouncementsPage returns the current window of announcements.
func (s *Service) AnnouncementsPage() Page[Announcement] {
	state := s.View(ViewAnnouncements)
	return Paginate(s.store.Announcements(), state.Page, state.PageSize)
}

// UpdateAccountTier writes a tier change to the authoritative record and
// re-renders every view that groups or displays tiers.
func (s *Service) UpdateAccountTier(ctx context.Context, id string, tier Tier) error {
	if err := s.store.UpdateAccountTier(id, tier); err != nil {
		return err
	}
	s.record(ctx, "belboard.account.tier", map[string]any{
		"account": id,
		"tier":    string(tier),
	})
	s.notify(ctx, ViewAccounts, "account-updated")
	s.notify(ctx, ViewAccountCards, "account-updated")
	return nil
}

// AddNote appends a note to an account's history.
func (s *Service) AddNote(ctx context.Context, id, text string) (Note, error) {
	note, err := s.store.AppendNote(id, text)
	if err != nil {
		return Note{}, err
	}
	s.record(ctx, "belboard.account.note", map[string]any{"account": id})
	return note, nil
}

// UpdateBanking replaces an account's banking profile, recording one
// audit entry.
func (s *Service) UpdateBanking(ctx context.Context, id string, profile BankingProfile, reason, actor string) (BankingChange, error) {
	change, err := s.store.UpdateBanking(id, profile, reason, actor)
	if err != nil {
		return BankingChange{}, err
	}
	s.record(ctx, "belboard.account.banking", map[string]any{"account": id})
	s.notify(ctx, ViewAccounts, "banking-updated")
	return change, nil
}

// ReplyTicket appends an admin reply and re-renders the ticket views.
func (s *Service) ReplyTicket(ctx context.Context, number, text string) error {
	if err := s.store.ReplyTicket(number, text); err != nil {
		return err
	}
	s.record(ctx, "belboard.ticket.reply", map[string]any{"ticket": number})
	s.notify(ctx, ViewTickets, "ticket-replied")
	return nil
}

// CloseTicket closes a ticket and re-renders both ticket views: the
// record leaves the open list and joins the history.
func (s *Service) CloseTicket(ctx context.Context, number string) error {
	if err := s.store.CloseTicket(number); err != nil {
		return err
	}
	s.record(ctx, "belboard.ticket.close", map[string]any{"ticket": number})
	s.notify(ctx, ViewTickets, "ticket-closed")
	s.notify(ctx, ViewTicketHistory, "ticket-closed")
	return nil
}

// AddAsset appends a content asset and re-renders the asset list.
func (s *Service) AddAsset(ctx context.Context, asset Asset) error {
	if err := s.store.AddAsset(asset); err != nil {
		return err
	}
	s.record(ctx, "belboard.asset.add", map[string]any{"title": asset.Title})
	s.notify(ctx, ViewAssets, "asset-added")
	return nil
}

// UpdateAsset edits an asset by positional index.
func (s *Service) UpdateAsset(ctx context.Context, index int, asset Asset) error {
	if err := s.store.UpdateAsset(index, asset); err != nil {
		return err
	}
	s.record(ctx, "belboard.asset.update", map[string]any{"index": index})
	s.notify(ctx, ViewAssets, "asset-updated")
	return nil
}

// DeleteAsset removes an asset by positional index and immediately
// re-renders the list.
func (s *Service) DeleteAsset(ctx context.Context, index int) error {
	if err := s.store.DeleteAsset(index); err != nil {
		return err
	}
	s.record(ctx, "belboard.asset.delete", map[string]any{"index": index})
	s.notify(ctx, ViewAssets, "asset-deleted")
	return nil
}

func (s *Service) notify(ctx context.Context, view ViewID, reason string) {
	_ = s.hook.ViewUpdated(ctx, ViewEvent{View: view, Reason: reason})
}

func (s *Service) record(ctx context.Context, event string, payload map[string]any) {
	s.telemetry.Record(ctx, event, payload)
}
