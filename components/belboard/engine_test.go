package belboard

import (
	"reflect"
	"testing"
)

func testAccounts() []Account {
	return []Account{
		{ID: "KTWALPHA1", Name: "Maxwell Walker", Tier: TierExplorer, Clicks30: 1280, Orders30: 35, Revenue30: 8500},
		{ID: "KUSBRAVO2", Name: "Olivia Chen", Tier: TierBuilder, Clicks30: 1150, Orders30: 32, Revenue30: 7800},
		{ID: "KDECHARL3", Name: "Liam Müller", Tier: TierEnabler, Clicks30: 980, Orders30: 0, Revenue30: 0},
		{ID: "KJPDELTA4", Name: "Kenji Tanaka", Tier: TierLeader, Clicks30: 0, Orders30: 0, Revenue30: 0},
		{ID: "KUSECHO05", Name: "Ava Walker", Tier: TierBuilder, Clicks30: 750, Orders30: 18, Revenue30: 5100},
	}
}

func TestFilterStateMatchName(t *testing.T) {
	filters := FilterState{Name: "  WALK  "}
	got := Process(testAccounts(), filters, SortState{})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].ID != "KTWALPHA1" || got[1].ID != "KUSECHO05" {
		t.Fatalf("unexpected match order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestFilterStateMatchCombined(t *testing.T) {
	filters := FilterState{Name: "walker", Tier: TierBuilder}
	got := Process(testAccounts(), filters, SortState{})
	if len(got) != 1 || got[0].ID != "KUSECHO05" {
		t.Fatalf("AND-combined predicates failed: %+v", got)
	}
}

func TestFilterStateMatchReferralID(t *testing.T) {
	filters := FilterState{ReferralID: "us"}
	got := Process(testAccounts(), filters, SortState{})
	if len(got) != 2 {
		t.Fatalf("expected 2 id matches, got %d", len(got))
	}
}

func TestFilterStateMatchRegion(t *testing.T) {
	filters := FilterState{Region: "Japan"}
	got := Process(testAccounts(), filters, SortState{})
	if len(got) != 1 || got[0].ID != "KJPDELTA4" {
		t.Fatalf("region filter failed: %+v", got)
	}
}

func TestActivityBuckets(t *testing.T) {
	accounts := testAccounts()
	cases := []struct {
		bucket ActivityBucket
		want   []string
	}{
		// clicks means engaged without converting, so converting
		// accounts are excluded.
		{ActivityClicks, []string{"KDECHARL3"}},
		{ActivityOrders, []string{"KTWALPHA1", "KUSBRAVO2", "KUSECHO05"}},
		{ActivityNone, []string{"KJPDELTA4"}},
		{ActivityAny, []string{"KTWALPHA1", "KUSBRAVO2", "KDECHARL3", "KJPDELTA4", "KUSECHO05"}},
	}
	for _, tc := range cases {
		got := Process(accounts, FilterState{Activity: tc.bucket}, SortState{})
		ids := make([]string, len(got))
		for i, a := range got {
			ids[i] = a.ID
		}
		if !reflect.DeepEqual(ids, tc.want) {
			t.Errorf("bucket %q: got %v want %v", tc.bucket, ids, tc.want)
		}
	}
}

func TestProcessSortNumeric(t *testing.T) {
	sorted := Process(testAccounts(), FilterState{}, SortState{Key: SortByClicks})
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Clicks30 > sorted[i].Clicks30 {
			t.Fatalf("ascending click sort violated at %d", i)
		}
	}
	desc := Process(testAccounts(), FilterState{}, SortState{Key: SortByClicks, Desc: true})
	for i := 1; i < len(desc); i++ {
		if desc[i-1].Clicks30 < desc[i].Clicks30 {
			t.Fatalf("descending click sort violated at %d", i)
		}
	}
}

func TestProcessSortStable(t *testing.T) {
	accounts := []Account{
		{ID: "KUSAAA001", Name: "First", Clicks30: 10},
		{ID: "KUSBBB002", Name: "Second", Clicks30: 10},
		{ID: "KUSCCC003", Name: "Third", Clicks30: 10},
	}
	sorted := Process(accounts, FilterState{}, SortState{Key: SortByClicks})
	for i, a := range sorted {
		if a.ID != accounts[i].ID {
			t.Fatalf("equal keys must keep source order, got %s at %d", a.ID, i)
		}
	}
}

func TestProcessDoesNotMutateInput(t *testing.T) {
	accounts := testAccounts()
	original := append([]Account(nil), accounts...)
	Process(accounts, FilterState{Tier: TierBuilder}, SortState{Key: SortByRevenue, Desc: true})
	if !reflect.DeepEqual(accounts, original) {
		t.Fatal("Process mutated its input slice")
	}
}

func TestSortStateToggle(t *testing.T) {
	var s SortState
	s.Toggle(SortByClicks)
	if s.Key != SortByClicks || s.Desc {
		t.Fatalf("first toggle should sort ascending, got %+v", s)
	}
	s.Toggle(SortByClicks)
	if !s.Desc {
		t.Fatal("same-key toggle should flip to descending")
	}
	s.Toggle(SortByName)
	if s.Key != SortByName || s.Desc {
		t.Fatalf("new key should reset to ascending, got %+v", s)
	}
}

func TestPaginateWindows(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}
	page := Paginate(items, 2, 10)
	if page.From != 11 || page.To != 20 || page.Total != 25 {
		t.Fatalf("unexpected window: from=%d to=%d total=%d", page.From, page.To, page.Total)
	}
	last := Paginate(items, 3, 10)
	if len(last.Items) != 5 || last.To != 25 {
		t.Fatalf("partial last page wrong: len=%d to=%d", len(last.Items), last.To)
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	items := []int{1, 2, 3}
	page := Paginate(items, 9, 10)
	if len(page.Items) != 0 || page.Total != 3 {
		t.Fatalf("out-of-range page should be empty, got %+v", page)
	}
	if page.From != 0 || page.To != 0 {
		t.Fatalf("empty page bounds should be zero, got from=%d to=%d", page.From, page.To)
	}
}

func TestPaginateClampsPageAndSize(t *testing.T) {
	items := []int{1, 2, 3}
	page := Paginate(items, 0, 0)
	if page.Page != 1 || page.PageSize != defaultRowsPerPage {
		t.Fatalf("expected clamped defaults, got page=%d size=%d", page.Page, page.PageSize)
	}
	if len(page.Items) != 3 {
		t.Fatalf("expected full window, got %d items", len(page.Items))
	}
}

// Rebuilding every page must reproduce the processed collection exactly.
func TestPaginateReconstruction(t *testing.T) {
	accounts := Process(testAccounts(), FilterState{}, SortState{Key: SortByRevenue, Desc: true})
	var rebuilt []Account
	for pageNo := 1; ; pageNo++ {
		page := Paginate(accounts, pageNo, 2)
		if len(page.Items) == 0 {
			break
		}
		rebuilt = append(rebuilt, page.Items...)
	}
	if !reflect.DeepEqual(rebuilt, accounts) {
		t.Fatal("concatenated pages do not reconstruct the collection")
	}
}
