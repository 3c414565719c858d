package belboard

import "strings"

const maxSuggestions = 8

// SuggestionField selects which account attribute a suggestion box
// completes.
type SuggestionField string

const (
	SuggestNames SuggestionField = "names"
	SuggestIDs   SuggestionField = "ids"
)

// Suggest returns up to eight case-insensitive substring completions for
// the typed fragment, in account order. A blank fragment returns nothing:
// the dropdown only appears once the admin starts typing.
func Suggest(accounts []Account, field SuggestionField, fragment string) []string {
	kw := strings.ToLower(strings.TrimSpace(fragment))
	if kw == "" {
		return nil
	}
	var out []string
	for _, a := range accounts {
		value := a.Name
		if field == SuggestIDs {
			value = a.ID
		}
		if !strings.Contains(strings.ToLower(value), kw) {
			continue
		}
		out = append(out, value)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// Suggester pairs the suggestion source with a debouncer so keystrokes
// coalesce into one lookup after the typing pause.
type Suggester struct {
	service  *Service
	debounce *Debouncer
}

// NewSuggester builds a Suggester over the service's account set using
// the default typing pause.
func NewSuggester(service *Service) *Suggester {
	return &Suggester{
		service:  service,
		debounce: NewDebouncer(DefaultDebounce),
	}
}

// Type schedules a suggestion lookup for the fragment; fn receives the
// completions once the pause elapses. Rapid successive calls cancel the
// older lookups so only the final fragment's results are delivered.
func (s *Suggester) Type(field SuggestionField, fragment string, fn func([]string)) {
	s.debounce.Schedule(func() {
		fn(Suggest(s.service.Store().Accounts(), field, fragment))
	})
}

// Cancel drops any pending lookup, e.g. when the input loses focus.
func (s *Suggester) Cancel() {
	s.debounce.Cancel()
}
