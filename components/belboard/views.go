package belboard

// ViewID identifies one of the portal's paginated views. Each view keeps
// its own pagination context; they are never shared.
type ViewID string

// Paginated views rendered by the portal.
const (
	ViewAccounts      ViewID = "accounts"
	ViewAccountCards  ViewID = "account-cards"
	ViewPayouts       ViewID = "payouts"
	ViewOrders        ViewID = "orders"
	ViewAssets        ViewID = "assets"
	ViewTickets       ViewID = "tickets"
	ViewTicketHistory ViewID = "ticket-history"
	ViewAnnouncements ViewID = "announcements"
)

const defaultRowsPerPage = 10

// rows-per-page defaults per view, matching the rendered layouts.
var defaultPageSizes = map[ViewID]int{
	ViewAccounts:      20,
	ViewAccountCards:  8,
	ViewPayouts:       10,
	ViewOrders:        10,
	ViewAssets:        10,
	ViewTickets:       10,
	ViewTicketHistory: 10,
	ViewAnnouncements: 10,
}

// AllViews lists every paginated view in render order.
func AllViews() []ViewID {
	return []ViewID{
		ViewAccounts,
		ViewAccountCards,
		ViewPayouts,
		ViewOrders,
		ViewAssets,
		ViewTickets,
		ViewTicketHistory,
		ViewAnnouncements,
	}
}

// ViewState is the pagination context of a single view.
type ViewState struct {
	Page     int
	PageSize int
}

func newViewState(view ViewID) *ViewState {
	size, ok := defaultPageSizes[view]
	if !ok {
		size = defaultRowsPerPage
	}
	return &ViewState{Page: 1, PageSize: size}
}

// Reset returns the view to its first page.
func (v *ViewState) Reset() {
	v.Page = 1
}

// SetPageSize reconfigures rows-per-page and returns to the first page.
func (v *ViewState) SetPageSize(size int) {
	if size <= 0 {
		size = defaultRowsPerPage
	}
	v.PageSize = size
	v.Page = 1
}

// Next advances a page when the current window has not reached total.
func (v *ViewState) Next(total int) {
	if v.Page*v.PageSize < total {
		v.Page++
	}
}

// Prev steps back a page, never below the first.
func (v *ViewState) Prev() {
	if v.Page > 1 {
		v.Page--
	}
}
