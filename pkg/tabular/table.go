package tabular

import (
	"fmt"

	"github.com/iancoleman/orderedmap"
)

// Row holds the cells of one data row, aligned with Table.Columns.
type Row []string

// Table is an in-memory tabular data set.
type Table struct {
	// Columns holds the unique column names in display order.
	Columns []string

	// Rows holds the data rows. Every row has len(Columns) cells.
	Rows []Row

	// Source is the path the table was read from, if any.
	Source string
}

// NewTable creates an empty table with the given columns.
func NewTable(columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// ColumnIndex returns the position of a column, or -1 when it is absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the table has a column with this exact name.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// AppendRow adds a row, padding or truncating it to the column count.
func (t *Table) AppendRow(cells ...string) {
	t.Rows = append(t.Rows, fitRow(cells, len(t.Columns)))
}

// Value returns the cell of row i in the named column, or "" when the
// column does not exist.
func (t *Table) Value(i int, column string) string {
	idx := t.ColumnIndex(column)
	if idx < 0 || i < 0 || i >= len(t.Rows) {
		return ""
	}
	return t.Rows[i][idx]
}

// Record returns row i as an ordered column → value map.
//
// Parameters:
//   - i: Zero-based row index
//
// Returns:
//   - *orderedmap.OrderedMap: Keys in column order; nil when i is out of range
func (t *Table) Record(i int) *orderedmap.OrderedMap {
	if i < 0 || i >= len(t.Rows) {
		return nil
	}
	rec := orderedmap.New()
	rec.SetEscapeHTML(false)
	for j, c := range t.Columns {
		rec.Set(c, t.Rows[i][j])
	}
	return rec
}

// Column returns a copy of every value in the named column.
//
// Returns:
//   - []string: Values in row order
//   - bool: false when the column does not exist
func (t *Table) Column(name string) ([]string, bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	values := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		values[i] = r[idx]
	}
	return values, true
}

// AddColumn appends a column filled with values.
//
// If the column already exists its values are replaced in place.
// values must have exactly one entry per row.
func (t *Table) AddColumn(name string, values []string) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("column %q has %d values for %d rows", name, len(values), len(t.Rows))
	}
	if idx := t.ColumnIndex(name); idx >= 0 {
		for i := range t.Rows {
			t.Rows[i][idx] = values[i]
		}
		return nil
	}
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], values[i])
	}
	return nil
}

// Append concatenates other onto t.
//
// Columns of other that t lacks are appended to t.Columns; rows from either
// side that lack a column read "". Row order is t's rows followed by other's.
func (t *Table) Append(other *Table) {
	if other == nil {
		return
	}

	mapping := make([]int, len(other.Columns))
	for j, c := range other.Columns {
		idx := t.ColumnIndex(c)
		if idx < 0 {
			t.Columns = append(t.Columns, c)
			idx = len(t.Columns) - 1
		}
		mapping[j] = idx
	}

	width := len(t.Columns)
	for i := range t.Rows {
		t.Rows[i] = fitRow(t.Rows[i], width)
	}
	for _, src := range other.Rows {
		row := make(Row, width)
		for j, idx := range mapping {
			if j < len(src) {
				row[idx] = src[j]
			}
		}
		t.Rows = append(t.Rows, row)
	}
}

// Slice returns a table sharing t's columns with rows [start, end).
// Bounds are clamped to the valid range.
func (t *Table) Slice(start, end int) *Table {
	if start < 0 {
		start = 0
	}
	if end > len(t.Rows) {
		end = len(t.Rows)
	}
	if start > end {
		start = end
	}
	return &Table{
		Columns: t.Columns,
		Rows:    t.Rows[start:end],
		Source:  t.Source,
	}
}

// Filter returns a new table holding the rows for which keep returns true.
func (t *Table) Filter(keep func(row Row) bool) *Table {
	out := &Table{Columns: t.Columns, Source: t.Source}
	for _, r := range t.Rows {
		if keep(r) {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	out := NewTable(t.Columns...)
	out.Source = t.Source
	out.Rows = make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		out.Rows[i] = append(Row(nil), r...)
	}
	return out
}

func fitRow(cells []string, width int) Row {
	if len(cells) == width {
		return Row(cells)
	}
	row := make(Row, width)
	copy(row, cells)
	return row
}
