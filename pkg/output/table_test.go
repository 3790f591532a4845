package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTableAlignsCJK tests that widths are measured in terminal cells.
func TestTableAlignsCJK(t *testing.T) {
	tbl := NewTable().AddColumn("GROUP").AddColumn("ROWS")
	tbl.AddRow("中国移动", "10")
	tbl.AddRow("CU", "2")

	lines := strings.Split(strings.TrimRight(tbl.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"GROUP     ROWS",
		"--------  ----",
		"中国移动  10",
		"CU        2",
	}, lines)
	assert.Equal(t, 8, tbl.GetColumnWidth(0))
	assert.Equal(t, 0, tbl.GetColumnWidth(5))
	assert.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, 2, tbl.ColumnCount())
}

// TestTableConditionalColumn tests hidden columns.
func TestTableConditionalColumn(t *testing.T) {
	tbl := NewTable().AddColumn("A").AddConditionalColumn("HIDDEN", false).AddColumn("C")
	tbl.AddRow("1", "secret", "3")

	out := tbl.String()
	assert.NotContains(t, out, "HIDDEN")
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "1  3")
}

// TestTableMinWidthAndTruncation tests width bounds.
func TestTableMinWidthAndTruncation(t *testing.T) {
	tbl := NewTable().AddColumnWithMinWidth("N", 5).AddColumn("V").WithMaxCellWidth(8).WithSeparator(" | ")
	tbl.AddRow("1", "abcdefghijkl", "ignored")
	tbl.AddRow()

	assert.Equal(t, 5, tbl.GetColumnWidth(0))
	assert.Equal(t, "N     | V", tbl.HeaderRow())
	assert.Contains(t, tbl.String(), "abcde...")
}
