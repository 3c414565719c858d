package belboard

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestSuggestNames(t *testing.T) {
	accounts := testAccounts()
	got := Suggest(accounts, SuggestNames, "  WALK ")
	if len(got) != 2 || got[0] != "Maxwell Walker" || got[1] != "Ava Walker" {
		t.Fatalf("unexpected suggestions: %v", got)
	}
}

func TestSuggestIDs(t *testing.T) {
	got := Suggest(testAccounts(), SuggestIDs, "us")
	if len(got) != 2 {
		t.Fatalf("expected 2 id suggestions, got %v", got)
	}
}

func TestSuggestBlankFragment(t *testing.T) {
	if got := Suggest(testAccounts(), SuggestNames, "   "); got != nil {
		t.Fatalf("blank fragment should return nothing, got %v", got)
	}
}

func TestSuggestCap(t *testing.T) {
	accounts := make([]Account, 20)
	for i := range accounts {
		accounts[i] = Account{ID: fmt.Sprintf("KUSAAA%03d", i), Name: fmt.Sprintf("Match Person %d", i)}
	}
	got := Suggest(accounts, SuggestNames, "match")
	if len(got) != maxSuggestions {
		t.Fatalf("expected cap of %d, got %d", maxSuggestions, len(got))
	}
}

func TestSuggesterDebounces(t *testing.T) {
	service := NewService(Options{Store: newTestStore(t)})
	suggester := NewSuggester(service)
	suggester.debounce = NewDebouncer(20 * time.Millisecond)

	var mu sync.Mutex
	var results [][]string
	deliver := func(s []string) {
		mu.Lock()
		results = append(results, s)
		mu.Unlock()
	}

	suggester.Type(SuggestNames, "m", deliver)
	suggester.Type(SuggestNames, "ma", deliver)
	suggester.Type(SuggestNames, "max", deliver)
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(results) != 1 {
		t.Fatalf("rapid keystrokes should coalesce into one lookup, got %d", len(results))
	}
	if len(results[0]) == 0 || results[0][0] != "Maxwell Walker" {
		t.Fatalf("final fragment should drive the results: %v", results[0])
	}
}
