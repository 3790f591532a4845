package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ajxudir/tabsplit/pkg/utils"
)

// DefaultMaxCellWidth caps the display width of a cell; longer values are
// shortened with "...".
const DefaultMaxCellWidth = 60

// Column is one table column with its header and current width.
type Column struct {
	Header string
	Width  int
	hidden bool
}

// Table collects rows and prints them with aligned columns.
//
// Widths are measured in terminal cells, so CJK text aligns with ASCII.
type Table struct {
	columns   []Column
	rows      [][]string
	separator string
	maxWidth  int
}

// NewTable creates an empty table with a two-space separator.
func NewTable() *Table {
	return &Table{separator: "  ", maxWidth: DefaultMaxCellWidth}
}

// WithSeparator sets the column separator.
func (t *Table) WithSeparator(sep string) *Table {
	t.separator = sep
	return t
}

// WithMaxCellWidth sets the maximum cell width; values <= 3 disable truncation.
func (t *Table) WithMaxCellWidth(width int) *Table {
	t.maxWidth = width
	return t
}

// AddColumn adds a visible column.
func (t *Table) AddColumn(header string) *Table {
	t.columns = append(t.columns, Column{Header: header, Width: utils.DisplayWidth(header)})
	return t
}

// AddColumnWithMinWidth adds a column that is at least minWidth cells wide.
func (t *Table) AddColumnWithMinWidth(header string, minWidth int) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.Max(utils.DisplayWidth(header), minWidth),
	})
	return t
}

// AddConditionalColumn adds a column that is only printed when visible is true.
//
// Rows still carry a value for hidden columns so callers can build rows
// without branching.
func (t *Table) AddConditionalColumn(header string, visible bool) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.DisplayWidth(header),
		hidden: !visible,
	})
	return t
}

// AddRow appends a row and widens columns to fit it.
//
// Missing values print as empty cells; extra values are ignored.
func (t *Table) AddRow(values ...string) *Table {
	row := make([]string, len(t.columns))
	for i := range t.columns {
		if i < len(values) {
			row[i] = utils.TruncateWidth(values[i], t.maxWidth)
		}
		if w := utils.DisplayWidth(row[i]); w > t.columns[i].Width {
			t.columns[i].Width = w
		}
	}
	t.rows = append(t.rows, row)
	return t
}

// RowCount returns the number of rows added.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColumnCount returns the number of columns including hidden ones.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// GetColumnWidth returns the width of column index, or 0 when out of range.
func (t *Table) GetColumnWidth(index int) int {
	if index < 0 || index >= len(t.columns) {
		return 0
	}
	return t.columns[index].Width
}

// HeaderRow returns the formatted header line.
func (t *Table) HeaderRow() string {
	headers := make([]string, len(t.columns))
	for i, c := range t.columns {
		headers[i] = c.Header
	}
	return t.FormatRow(headers...)
}

// SeparatorRow returns a line of dashes under each visible column.
func (t *Table) SeparatorRow() string {
	parts := make([]string, 0, len(t.columns))
	for _, c := range t.columns {
		if c.hidden {
			continue
		}
		parts = append(parts, strings.Repeat("-", c.Width))
	}
	return strings.Join(parts, t.separator)
}

// FormatRow pads values to the column widths and joins the visible ones.
// Trailing spaces are trimmed.
func (t *Table) FormatRow(values ...string) string {
	parts := make([]string, 0, len(t.columns))
	for i, c := range t.columns {
		if c.hidden {
			continue
		}
		v := ""
		if i < len(values) {
			v = values[i]
		}
		parts = append(parts, utils.ToWidth(v, c.Width))
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}

// Fprint writes the header, separator and rows to w.
func (t *Table) Fprint(w io.Writer) {
	_, _ = fmt.Fprintln(w, t.HeaderRow())
	_, _ = fmt.Fprintln(w, t.SeparatorRow())
	for _, r := range t.rows {
		_, _ = fmt.Fprintln(w, t.FormatRow(r...))
	}
}

// Print writes the table to stdout.
func (t *Table) Print() {
	t.Fprint(os.Stdout)
}

// String returns the table as text.
func (t *Table) String() string {
	var sb strings.Builder
	t.Fprint(&sb)
	return sb.String()
}
