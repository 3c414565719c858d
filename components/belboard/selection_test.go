package belboard

import "testing"

func TestSelectionToggle(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("KUSAAA001")
	if !sel.IsSelected("KUSAAA001") {
		t.Fatal("toggle should select an absent id")
	}
	sel.Toggle("KUSAAA001")
	if sel.IsSelected("KUSAAA001") {
		t.Fatal("toggle should deselect a present id")
	}
}

func TestSelectionSurvivesPagination(t *testing.T) {
	sel := NewSelection()
	sel.SelectAllOnPage([]string{"a", "b"}, true)
	// Selecting the next page must not disturb the first page's ids.
	sel.SelectAllOnPage([]string{"c", "d"}, true)
	if sel.Count() != 4 {
		t.Fatalf("expected 4 selected, got %d", sel.Count())
	}
	sel.SelectAllOnPage([]string{"c", "d"}, false)
	if sel.Count() != 2 || !sel.IsSelected("a") || !sel.IsSelected("b") {
		t.Fatal("deselecting one page must leave other pages selected")
	}
}

func TestSelectionAllSelected(t *testing.T) {
	sel := NewSelection()
	if sel.AllSelected(nil) {
		t.Fatal("empty page must never report all selected")
	}
	sel.Set("a", true)
	sel.Set("b", true)
	if !sel.AllSelected([]string{"a", "b"}) {
		t.Fatal("fully selected page should report true")
	}
	if sel.AllSelected([]string{"a", "b", "c"}) {
		t.Fatal("page with an unselected id should report false")
	}
}

func TestSelectionClear(t *testing.T) {
	sel := NewSelection()
	sel.Set("a", true)
	sel.Clear()
	if sel.Count() != 0 {
		t.Fatalf("clear left %d ids", sel.Count())
	}
}
