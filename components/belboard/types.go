package belboard

import (
	"context"
)

// Tier is the affiliate level assigned to a BEL account.
type Tier string

// Affiliate tiers in ascending order.
const (
	TierBuilder  Tier = "Builder"
	TierEnabler  Tier = "Enabler"
	TierExplorer Tier = "Explorer"
	TierLeader   Tier = "Leader"
)

// Tiers lists every tier in ranking order.
func Tiers() []Tier {
	return []Tier{TierBuilder, TierEnabler, TierExplorer, TierLeader}
}

// Rank returns the ordinal position of the tier; unknown tiers rank last.
func (t Tier) Rank() int {
	switch t {
	case TierBuilder:
		return 0
	case TierEnabler:
		return 1
	case TierExplorer:
		return 2
	case TierLeader:
		return 3
	default:
		return 4
	}
}

// Account is a BEL (affiliate partner) record derived from the leaderboard
// seed. Country and region are never stored: both are recomputed from the
// referral id so they can never drift apart.
type Account struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Email     string   `json:"email" yaml:"email"`
	Code      string   `json:"code" yaml:"code"`
	Tier      Tier     `json:"tier" yaml:"tier"`
	Clicks30  int      `json:"clicks_30" yaml:"clicks_30"`
	Orders30  int      `json:"orders_30" yaml:"orders_30"`
	Revenue30 float64  `json:"revenue_30" yaml:"revenue_30"`
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Country derives the account country from the referral id prefix.
func (a Account) Country() string {
	return CountryForID(a.ID)
}

// Region derives the coarse sales region from the account country.
func (a Account) Region() string {
	return RegionForCountry(a.Country())
}

// ConversionRate returns orders/clicks, zero when there are no clicks.
func (a Account) ConversionRate() float64 {
	if a.Clicks30 == 0 {
		return 0
	}
	return float64(a.Orders30) / float64(a.Clicks30)
}

// AverageOrderValue returns revenue/orders, zero when there are no orders.
func (a Account) AverageOrderValue() float64 {
	if a.Orders30 == 0 {
		return 0
	}
	return a.Revenue30 / float64(a.Orders30)
}

// Note is a free-form annotation attached to an account, newest first.
type Note struct {
	Text string `json:"text" yaml:"text"`
	Time string `json:"time" yaml:"time"`
}

// BankingProfile holds the payout banking details for one account.
type BankingProfile struct {
	BankName      string `json:"bank_name" yaml:"bank_name"`
	SwiftCode     string `json:"swift_code" yaml:"swift_code"`
	AccountHolder string `json:"account_holder" yaml:"account_holder"`
	Phone         string `json:"phone" yaml:"phone"`
	Address       string `json:"address" yaml:"address"`
}

// BankingChange is one audit-history entry recorded whenever banking
// details are modified.
type BankingChange struct {
	ChangeID  string         `json:"change_id" yaml:"change_id"`
	Profile   BankingProfile `json:"profile" yaml:"profile"`
	Reason    string         `json:"reason" yaml:"reason"`
	ChangedBy string         `json:"changed_by" yaml:"changed_by"`
	Timestamp string         `json:"timestamp" yaml:"timestamp"`
}

// PayoutDetail is the per-BEL breakdown inside a payout batch.
type PayoutDetail struct {
	PayoutID   string  `json:"payout_id" yaml:"payout_id"`
	ReferralID string  `json:"referral_id" yaml:"referral_id"`
	BELName    string  `json:"bel_name" yaml:"bel_name"`
	Gross      float64 `json:"gross" yaml:"gross"`
	Fees       float64 `json:"fees" yaml:"fees"`
	Tax        float64 `json:"tax" yaml:"tax"`
	Net        float64 `json:"net" yaml:"net"`
	Paid       bool    `json:"paid" yaml:"paid"`
	Status     string  `json:"status" yaml:"status"`
}

// PayoutBatch is one disbursement run covering many BELs.
type PayoutBatch struct {
	Date     string         `json:"date" yaml:"date"`
	Total    float64        `json:"total" yaml:"total"`
	BELCount int            `json:"bel_count" yaml:"bel_count"`
	Details  []PayoutDetail `json:"details" yaml:"details"`
}

// Order is a single order attributed to a BEL referral.
type Order struct {
	OrderDate   string  `json:"order_date" yaml:"order_date"`
	OrderNumber string  `json:"order_number" yaml:"order_number"`
	ReferralID  string  `json:"referral_id" yaml:"referral_id"`
	BELName     string  `json:"bel_name" yaml:"bel_name"`
	Amount      float64 `json:"amount" yaml:"amount"`
	Currency    string  `json:"currency,omitempty" yaml:"currency,omitempty"`
	Status      string  `json:"status" yaml:"status"`
}

// AssetPicture is an inline image payload stored with a content asset.
type AssetPicture struct {
	Data   []byte `json:"data" yaml:"data"`
	Name   string `json:"name" yaml:"name"`
	Size   int    `json:"size" yaml:"size"`
	MIME   string `json:"mime" yaml:"mime"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

// Asset is a promotional content entry managed through the content view.
type Asset struct {
	UploadDate string        `json:"upload_date" yaml:"upload_date"`
	Title      string        `json:"title" yaml:"title"`
	Subtitle   string        `json:"subtitle" yaml:"subtitle"`
	Category   string        `json:"category" yaml:"category"`
	PageLink   string        `json:"page_link" yaml:"page_link"`
	Picture    *AssetPicture `json:"picture,omitempty" yaml:"picture,omitempty"`
}

// Reply is one entry in a support ticket conversation.
type Reply struct {
	Time string `json:"time" yaml:"time"`
	Text string `json:"text" yaml:"text"`
}

// Ticket is a support request raised by a BEL.
type Ticket struct {
	TicketNumber string       `json:"ticket_number" yaml:"ticket_number"`
	ReferralID   string       `json:"referral_id" yaml:"referral_id"`
	BELName      string       `json:"bel_name" yaml:"bel_name"`
	Subject      string       `json:"subject" yaml:"subject"`
	Status       TicketStatus `json:"status" yaml:"status"`
	Created      string       `json:"created" yaml:"created"`
	Message      string       `json:"message" yaml:"message"`
	Replies      []Reply      `json:"replies,omitempty" yaml:"replies,omitempty"`
}

// Announcement is a portal-wide broadcast entry.
type Announcement struct {
	Created  string `json:"created" yaml:"created"`
	Category string `json:"category" yaml:"category"`
	Title    string `json:"title" yaml:"title"`
	Body     string `json:"body" yaml:"body"`
	Link     string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Notification is a header-feed entry shown to the admin.
type Notification struct {
	Type    string `json:"type" yaml:"type"`
	TagText string `json:"tag_text" yaml:"tag_text"`
	Title   string `json:"title" yaml:"title"`
	Date    string `json:"date" yaml:"date"`
	Details string `json:"details,omitempty" yaml:"details,omitempty"`
}

// SummaryStat is one dashboard KPI card.
type SummaryStat struct {
	Title     string `json:"title" yaml:"title"`
	Value     string `json:"value" yaml:"value"`
	Trend     string `json:"trend" yaml:"trend"`
	TrendText string `json:"trend_text" yaml:"trend_text"`
	Status    string `json:"status" yaml:"status"`
}

// TierPerformance is one row of the performance-by-tier table.
type TierPerformance struct {
	Tier     Tier    `json:"tier" yaml:"tier"`
	Count    int     `json:"count" yaml:"count"`
	Clicks   int     `json:"clicks" yaml:"clicks"`
	Orders   int     `json:"orders" yaml:"orders"`
	Revenue  float64 `json:"revenue" yaml:"revenue"`
	ConvRate float64 `json:"conv_rate" yaml:"conv_rate"`
	AOV      float64 `json:"aov" yaml:"aov"`
}

// ViewEvent describes a store mutation that renderers might care about.
type ViewEvent struct {
	View     ViewID
	RecordID string
	Reason   string
}

// RefreshHook notifies the renderer that a view's backing data changed.
type RefreshHook interface {
	ViewUpdated(ctx context.Context, event ViewEvent) error
}
