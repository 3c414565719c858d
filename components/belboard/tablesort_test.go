package belboard

import (
	"reflect"
	"testing"
)

func currencyTable() *RenderedTable {
	return &RenderedTable{
		Columns: []Column{
			{Title: "Name", Type: ColumnString, Sortable: true},
			{Title: "Revenue", Type: ColumnNumber, Sortable: true},
			{Title: "Date", Type: ColumnDate, Sortable: true},
			{Title: "Actions", Type: ColumnString, Sortable: false},
		},
		Rows: [][]string{
			{"Alpha", "$1,234", "2025-08-05", "-"},
			{"Bravo", "$89", "2025-06-01", "-"},
			{"Charlie", "$560", "2025-07-15", "-"},
		},
	}
}

func TestClickHeaderNumeric(t *testing.T) {
	table := currencyTable()
	MakeSortable(table)
	table.ClickHeader(1)
	got := []string{table.Rows[0][1], table.Rows[1][1], table.Rows[2][1]}
	// Display-text sorting would order these lexically; stripping the
	// currency formatting must order them numerically.
	want := []string{"$89", "$560", "$1,234"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("numeric sort got %v, want %v", got, want)
	}
}

func TestClickHeaderFlipsDirection(t *testing.T) {
	table := currencyTable()
	MakeSortable(table)
	table.ClickHeader(1)
	table.ClickHeader(1)
	if table.Rows[0][1] != "$1,234" {
		t.Fatalf("second click should sort descending, got %v", table.Rows[0])
	}
	col, dir := table.SortIndicator()
	if col != 1 || dir != "desc" {
		t.Fatalf("indicator = (%d, %s)", col, dir)
	}
	// Clicking another column resets to ascending.
	table.ClickHeader(0)
	if _, dir := table.SortIndicator(); dir != "asc" {
		t.Fatalf("new column should sort ascending, got %s", dir)
	}
}

func TestClickHeaderDate(t *testing.T) {
	table := currencyTable()
	MakeSortable(table)
	table.ClickHeader(2)
	if table.Rows[0][2] != "2025-06-01" || table.Rows[2][2] != "2025-08-05" {
		t.Fatalf("date sort failed: %v", table.Rows)
	}
}

func TestClickHeaderIgnoresNonSortable(t *testing.T) {
	table := currencyTable()
	MakeSortable(table)
	before := append([][]string(nil), table.Rows...)
	table.ClickHeader(3)
	if !reflect.DeepEqual(before, table.Rows) {
		t.Fatal("non-sortable column click must be ignored")
	}
	table.ClickHeader(99)
	if !reflect.DeepEqual(before, table.Rows) {
		t.Fatal("out-of-range click must be ignored")
	}
}

func TestMakeSortableIdempotent(t *testing.T) {
	table := currencyTable()
	MakeSortable(table)
	table.ClickHeader(1)
	col, dir := table.SortIndicator()
	MakeSortable(table)
	gotCol, gotDir := table.SortIndicator()
	if gotCol != col || gotDir != dir {
		t.Fatal("re-enabling sorting must not reset sort state")
	}
}

func TestClickHeaderBeforeMakeSortable(t *testing.T) {
	table := currencyTable()
	before := append([][]string(nil), table.Rows...)
	table.ClickHeader(1)
	if !reflect.DeepEqual(before, table.Rows) {
		t.Fatal("clicks before MakeSortable must be ignored")
	}
}

func TestExtractNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"$1,234.50", 1234.50},
		{"-$560", -560},
		{"12 items", 12},
		{"n/a", 0},
	}
	for _, tc := range cases {
		if got := extractNumber(tc.in); got != tc.want {
			t.Errorf("extractNumber(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
