package models

// InputRow is one record from the source workbook: the address to fetch
// plus every other column carried through as opaque metadata.
type InputRow struct {
	URL  string
	Meta map[string]string
}

// InputSheet holds the parsed input workbook sheet. Columns preserves
// the header order as read, including the URL column.
type InputSheet struct {
	Columns   []string
	URLColumn string
	Rows      []InputRow
}

// MetaColumns returns the pass-through column names in sheet order,
// excluding the URL column.
func (s *InputSheet) MetaColumns() []string {
	cols := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		if c != s.URLColumn {
			cols = append(cols, c)
		}
	}
	return cols
}

// Table is the in-memory grid of one HTML table: a header row and zero
// or more data rows. Cell values keep their original casing.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ColumnIndex returns the position of the named header, or -1 when the
// table has no such column.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// ResultTable is the concatenated output across all processed input
// rows. Columns is the union of every appended row set in first-seen
// order. Cells are string for raw values and float64 for normalized
// numbers; absent cells are simply missing from the row map.
type ResultTable struct {
	Columns []string
	Rows    []map[string]any

	seen map[string]bool
}

// Append adds one page's extracted rows, extending the column union
// with any columns not seen before.
func (rt *ResultTable) Append(columns []string, rows []map[string]any) {
	if rt.seen == nil {
		rt.seen = make(map[string]bool)
	}
	for _, c := range columns {
		if !rt.seen[c] {
			rt.seen[c] = true
			rt.Columns = append(rt.Columns, c)
		}
	}
	rt.Rows = append(rt.Rows, rows...)
}

// Len returns the number of collected output rows.
func (rt *ResultTable) Len() int {
	return len(rt.Rows)
}
