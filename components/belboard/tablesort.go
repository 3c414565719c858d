package belboard

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// ColumnType declares how a rendered column's display text is compared.
type ColumnType string

// Supported column value types.
const (
	ColumnString ColumnType = "string"
	ColumnNumber ColumnType = "number"
	ColumnDate   ColumnType = "date"
)

// Column describes one header cell of a rendered table.
type Column struct {
	Title    string
	Type     ColumnType
	Sortable bool
}

// RenderedTable is a post-render table abstraction: rows of display text
// sortable by column, independent of whatever backing data produced them.
// It is the generic affordance for tables that are not driven by the
// filter engine.
type RenderedTable struct {
	Columns []Column
	Rows    [][]string

	sortable bool
	sortCol  int
	sortDir  string
}

// MakeSortable enables header sorting on the table. Calling it again on a
// table that is already sortable is a no-op, so handlers are never bound
// twice.
func MakeSortable(t *RenderedTable) {
	if t == nil || t.sortable {
		return
	}
	t.sortable = true
	t.sortCol = -1
}

// SortIndicator returns the active sort column index and direction
// ("asc"/"desc"); the index is -1 until a header has been clicked.
func (t *RenderedTable) SortIndicator() (int, string) {
	return t.sortCol, t.sortDir
}

// ClickHeader sorts the rows by the given column. Clicking the active
// column flips direction; any other click sorts ascending. Clicks on
// non-sortable columns or tables are ignored.
func (t *RenderedTable) ClickHeader(col int) {
	if t == nil || !t.sortable || col < 0 || col >= len(t.Columns) {
		return
	}
	if !t.Columns[col].Sortable {
		return
	}
	dir := "asc"
	if t.sortCol == col && t.sortDir == "asc" {
		dir = "desc"
	}
	t.sortCol = col
	t.sortDir = dir

	colType := t.Columns[col].Type
	sort.SliceStable(t.Rows, func(i, j int) bool {
		cmp := compareCells(cellText(t.Rows[i], col), cellText(t.Rows[j], col), colType)
		if dir == "desc" {
			return cmp > 0
		}
		return cmp < 0
	})
}

func cellText(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func compareCells(a, b string, colType ColumnType) int {
	switch colType {
	case ColumnNumber:
		return compareFloats(extractNumber(a), extractNumber(b))
	case ColumnDate:
		return compareTimes(extractDate(a), extractDate(b))
	default:
		return strings.Compare(a, b)
	}
}

// extractNumber strips everything except digits, sign, and decimal point
// so currency-formatted or comma-grouped text sorts numerically.
func extractNumber(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return value
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	time.RFC3339,
	"Jan 2, 2006",
	"01/02/2006",
}

func extractDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
