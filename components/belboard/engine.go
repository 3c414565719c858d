package belboard

import (
	"sort"
	"strings"
)

// ActivityBucket is an engagement filter category. The buckets deliberately
// overlap: an account with both clicks and orders matches only "orders",
// because "clicks" means engaged without converting.
type ActivityBucket string

// Activity buckets accepted by the filter.
const (
	ActivityAny    ActivityBucket = ""
	ActivityClicks ActivityBucket = "clicks"
	ActivityOrders ActivityBucket = "orders"
	ActivityNone   ActivityBucket = "none"
)

// FilterState holds the independent optional predicates applied to the
// account table. Empty fields pass every record; active predicates are
// AND-combined.
type FilterState struct {
	Name       string
	ReferralID string
	Tier       Tier
	Region     string
	Country    string
	Activity   ActivityBucket
}

// IsZero reports whether no predicate is active.
func (f FilterState) IsZero() bool {
	return f == FilterState{}
}

// Match reports whether the account satisfies every active predicate.
func (f FilterState) Match(a Account) bool {
	if kw := strings.ToLower(strings.TrimSpace(f.Name)); kw != "" {
		if !strings.Contains(strings.ToLower(a.Name), kw) {
			return false
		}
	}
	if rid := strings.ToLower(strings.TrimSpace(f.ReferralID)); rid != "" {
		if !strings.Contains(strings.ToLower(a.ID), rid) {
			return false
		}
	}
	if f.Tier != "" && a.Tier != f.Tier {
		return false
	}
	if f.Region != "" && a.Region() != f.Region {
		return false
	}
	if f.Country != "" && a.Country() != f.Country {
		return false
	}
	switch f.Activity {
	case ActivityClicks:
		if !(a.Clicks30 > 0 && a.Orders30 == 0) {
			return false
		}
	case ActivityOrders:
		if !(a.Orders30 > 0) {
			return false
		}
	case ActivityNone:
		if a.Clicks30+a.Orders30 != 0 {
			return false
		}
	}
	return true
}

// Sort keys accepted by the account engine.
const (
	SortByID      = "id"
	SortByName    = "name"
	SortByTier    = "tier"
	SortByClicks  = "clicks"
	SortByOrders  = "orders"
	SortByRevenue = "revenue"
	SortByRegion  = "region"
	SortByCountry = "country"
)

// SortState is a sort key plus direction. An empty key keeps insertion
// order.
type SortState struct {
	Key  string
	Desc bool
}

// Toggle flips the direction when the same key is clicked again and resets
// to ascending when a new key is chosen.
func (s *SortState) Toggle(key string) {
	if s.Key == key {
		s.Desc = !s.Desc
		return
	}
	s.Key = key
	s.Desc = false
}

// Process filters and sorts the account collection. The input slice is
// never modified; sorting is stable so equal keys keep source order.
func Process(records []Account, filters FilterState, sortState SortState) []Account {
	filtered := make([]Account, 0, len(records))
	for _, record := range records {
		if filters.Match(record) {
			filtered = append(filtered, record)
		}
	}
	if sortState.Key == "" {
		return filtered
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		cmp := compareAccounts(filtered[i], filtered[j], sortState.Key)
		if sortState.Desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return filtered
}

func compareAccounts(a, b Account, key string) int {
	switch key {
	case SortByClicks:
		return compareInts(a.Clicks30, b.Clicks30)
	case SortByOrders:
		return compareInts(a.Orders30, b.Orders30)
	case SortByRevenue:
		return compareFloats(a.Revenue30, b.Revenue30)
	case SortByName:
		return strings.Compare(a.Name, b.Name)
	case SortByTier:
		return strings.Compare(string(a.Tier), string(b.Tier))
	case SortByRegion:
		return strings.Compare(a.Region(), b.Region())
	case SortByCountry:
		return strings.Compare(a.Country(), b.Country())
	default:
		return strings.Compare(a.ID, b.ID)
	}
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Page is the window of an ordered collection handed to the renderer.
// Total is the pre-pagination count; From/To are 1-based display bounds,
// both zero for an empty page.
type Page[T any] struct {
	Items    []T
	Total    int
	From     int
	To       int
	Page     int
	PageSize int
}

// Paginate slices the ordered collection into the requested 1-based page.
// Out-of-range pages yield an empty page rather than an error so a filter
// that narrows the set can never strand the caller past the end.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = defaultRowsPerPage
	}
	if page < 1 {
		page = 1
	}
	total := len(items)
	start := (page - 1) * pageSize
	if start >= total {
		return Page[T]{Items: []T{}, Total: total, Page: page, PageSize: pageSize}
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	pageItems := make([]T, end-start)
	copy(pageItems, items[start:end])
	return Page[T]{
		Items:    pageItems,
		Total:    total,
		From:     start + 1,
		To:       end,
		Page:     page,
		PageSize: pageSize,
	}
}
