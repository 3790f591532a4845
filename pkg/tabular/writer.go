package tabular

import (
	"bufio"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iancoleman/orderedmap"
	"github.com/xuri/excelize/v2"
	_ "modernc.org/sqlite"
)

// Format is an output file format.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatXLSX   Format = "xlsx"
	FormatJSON   Format = "json"
	FormatSQLite Format = "sqlite"
)

// XLSXMaxRows is the worksheet row limit, header row included.
const XLSXMaxRows = 1048576

// SQLiteTable is the table name used in sqlite outputs.
const SQLiteTable = "data"

// ParseFormat converts a configured output format into a Format.
//
// The names are case-insensitive; "excel" is accepted for xlsx and "db" for sqlite.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(s, "."))) {
	case "csv":
		return FormatCSV, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	case "json":
		return FormatJSON, nil
	case "sqlite", "db":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("output format %q: %w", s, ErrUnsupportedFormat)
	}
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatXLSX:
		return ".xlsx"
	case FormatJSON:
		return ".json"
	case FormatSQLite:
		return ".db"
	default:
		return ".csv"
	}
}

// RowLimit returns the maximum number of data rows a file of this format can
// hold, or 0 when there is no practical limit.
func (f Format) RowLimit() int {
	if f == FormatXLSX {
		return XLSXMaxRows - 1
	}
	return 0
}

// WriteOptions controls WriteFile.
type WriteOptions struct {
	Format Format

	// CSVBOM prefixes csv output with a UTF-8 byte order mark so that
	// spreadsheet programs detect the encoding.
	CSVBOM bool
}

// WriteFile writes t to path in the requested format, replacing any existing file.
//
// Parameters:
//   - path: Destination file; its directory must exist
//   - t: Table to write, header first
//   - opts: Output format and csv options
//
// Returns:
//   - error: ErrRowLimitExceeded when t does not fit the format, or the write error
func WriteFile(path string, t *Table, opts WriteOptions) error {
	if limit := opts.Format.RowLimit(); limit > 0 && t.Len() > limit {
		return fmt.Errorf("%d rows do not fit in %s (max %d data rows): %w", t.Len(), opts.Format, limit, ErrRowLimitExceeded)
	}

	var err error
	switch opts.Format {
	case FormatCSV, "":
		err = writeCSV(path, t, opts.CSVBOM)
	case FormatXLSX:
		err = writeXLSX(path, t)
	case FormatJSON:
		err = writeJSON(path, t)
	case FormatSQLite:
		err = writeSQLite(path, t)
	default:
		return fmt.Errorf("output format %q: %w", opts.Format, ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeCSV(path string, t *Table, bom bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if bom {
		if _, err := bw.Write(utf8BOM); err != nil {
			return err
		}
	}

	w := csv.NewWriter(bw)
	if err := w.Write(t.Columns); err != nil {
		return err
	}
	for _, r := range t.Rows {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return bw.Flush()
}

func writeXLSX(path string, t *Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Sheet1"
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	writeRow := func(rowNum int, cells []string) error {
		values := make([]interface{}, len(cells))
		for i, c := range cells {
			values[i] = c
		}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		return sw.SetRow(cell, values)
	}

	if err := writeRow(1, t.Columns); err != nil {
		return err
	}
	for i, r := range t.Rows {
		if err := writeRow(i+2, r); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func writeJSON(path string, t *Table) error {
	records := make([]*orderedmap.OrderedMap, 0, t.Len())
	for i := range t.Rows {
		records = append(records, t.Record(i))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeSQLite(path string, t *Table) error {
	_ = os.Remove(path)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	defs := make([]string, len(t.Columns))
	quoted := make([]string, len(t.Columns))
	for i, c := range sqliteColumns(t.Columns) {
		quoted[i] = quoteIdent(c)
		defs[i] = quoted[i] + " TEXT"
	}
	if len(defs) == 0 {
		return fmt.Errorf("table has no columns")
	}

	if _, err := db.Exec(`CREATE TABLE ` + quoteIdent(SQLiteTable) + ` (` + strings.Join(defs, ", ") + `)`); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	ph := strings.TrimRight(strings.Repeat("?,", len(t.Columns)), ",")
	stmt, err := tx.Prepare(`INSERT INTO ` + quoteIdent(SQLiteTable) + ` (` + strings.Join(quoted, ", ") + `) VALUES (` + ph + `)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer func() { _ = stmt.Close() }()

	args := make([]any, len(t.Columns))
	for _, r := range t.Rows {
		for i := range args {
			args[i] = r[i]
		}
		if _, err := stmt.Exec(args...); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// sqliteColumns renames columns that differ only in ASCII case, which SQLite
// treats as the same identifier, using the "name.1" suffix scheme.
func sqliteColumns(cols []string) []string {
	out := make([]string, len(cols))
	used := make(map[string]bool, len(cols))
	counts := make(map[string]int)
	for i, c := range cols {
		candidate := c
		for used[strings.ToLower(candidate)] {
			counts[c]++
			candidate = c + "." + strconv.Itoa(counts[c])
		}
		used[strings.ToLower(candidate)] = true
		out[i] = candidate
	}
	return out
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
