package belboard

// Selection tracks record ids selected across all pages of the filtered
// account view. Pagination never touches the set; applying filters clears
// it (Service.ApplyFilters owns that policy).
type Selection struct {
	ids map[string]struct{}
}

// NewSelection returns an empty selection set.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle adds the id when absent and removes it when present.
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// Set forces the membership of a single id.
func (s *Selection) Set(id string, selected bool) {
	if selected {
		s.ids[id] = struct{}{}
		return
	}
	delete(s.ids, id)
}

// SelectAllOnPage selects or deselects exactly the given page's ids,
// leaving selections made on other pages untouched.
func (s *Selection) SelectAllOnPage(pageIDs []string, checked bool) {
	for _, id := range pageIDs {
		s.Set(id, checked)
	}
}

// Clear empties the selection set.
func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

// Count returns the number of selected ids.
func (s *Selection) Count() int {
	return len(s.ids)
}

// IsSelected reports membership of a single id.
func (s *Selection) IsSelected(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// AllSelected reports whether every id on the rendered page is selected.
// This drives the select-all checkbox, which is derived state, never
// stored. An empty page is never "all selected".
func (s *Selection) AllSelected(pageIDs []string) bool {
	if len(pageIDs) == 0 {
		return false
	}
	for _, id := range pageIDs {
		if !s.IsSelected(id) {
			return false
		}
	}
	return true
}
