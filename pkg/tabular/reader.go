package tabular

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ajxudir/tabsplit/pkg/verbose"
)

// ReadOptions controls how a file is turned into a Table.
type ReadOptions struct {
	// HeaderRow is the 1-based row holding the column names. Rows above it
	// are skipped. 0 means the file has no header: columns are named
	// "0".."n-1" and every row is data.
	HeaderRow int

	// Encoding applies to delimited text files. Empty means auto.
	Encoding Encoding

	// MaxRows stops reading after this many data rows. 0 means no limit.
	MaxRows int

	// HeaderOnly reads the header and no data rows.
	HeaderOnly bool
}

// DefaultReadOptions reads a file whose first row is the header.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{HeaderRow: 1, Encoding: EncodingAuto}
}

// ReadFile loads a CSV or Excel file into a Table.
//
// Parameters:
//   - ctx: Cancelled contexts abort before the file is opened
//   - path: File to read; the reader is chosen by extension
//   - opts: Header, encoding and row-limit options
//
// Returns:
//   - *Table: Table with normalised unique column names
//   - error: ErrUnsupportedFormat for .xls and unknown extensions, or the read error
func ReadFile(ctx context.Context, path string, opts ReadOptions) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.HeaderRow < 0 {
		return nil, fmt.Errorf("header row must be >= 0, got %d", opts.HeaderRow)
	}

	var (
		records [][]string
		err     error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		records, err = readDelimited(path, ',', opts)
	case ".tsv":
		records, err = readDelimited(path, '\t', opts)
	case ".xlsx", ".xlsm":
		records, err = readWorkbook(path, opts)
	case ".xls":
		return nil, fmt.Errorf("cannot read .xls file %s: legacy workbooks must be saved as .xlsx: %w", path, ErrUnsupportedFormat)
	default:
		return nil, fmt.Errorf("cannot read %s: extension %q: %w", path, ext, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	t := buildTable(records, opts)
	t.Source = path
	return t, nil
}

// ReadColumns returns the column names of a file without loading its rows.
func ReadColumns(ctx context.Context, path string, opts ReadOptions) ([]string, error) {
	opts.HeaderOnly = true
	t, err := ReadFile(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	return t.Columns, nil
}

// recordLimit is the number of raw records needed to satisfy opts, or -1.
func recordLimit(opts ReadOptions) int {
	skip := opts.HeaderRow
	switch {
	case opts.HeaderOnly:
		if skip == 0 {
			return 1
		}
		return skip
	case opts.MaxRows > 0:
		return skip + opts.MaxRows
	default:
		return -1
	}
}

func readDelimited(path string, comma rune, opts ReadOptions) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	text, used, err := Decode(data, opts.Encoding)
	if err != nil {
		return nil, err
	}
	verbose.FileDecoded(path, string(used), opts.Encoding == EncodingAuto || opts.Encoding == "")

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	limit := recordLimit(opts)
	var records [][]string
	for limit < 0 || len(records) < limit {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func readWorkbook(path string, opts ReadOptions) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	limit := recordLimit(opts)
	var records [][]string
	for rows.Next() {
		if limit >= 0 && len(records) >= limit {
			break
		}
		cols, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		records = append(records, cols)
	}
	return records, rows.Error()
}

// buildTable turns raw records into a Table according to opts.
func buildTable(records [][]string, opts ReadOptions) *Table {
	var header []string
	data := records
	if opts.HeaderRow > 0 {
		if len(records) >= opts.HeaderRow {
			header = records[opts.HeaderRow-1]
			data = records[opts.HeaderRow:]
		} else {
			data = nil
		}
	}
	data = trimTrailingBlankRows(data)

	width := len(header)
	for _, rec := range data {
		if len(rec) > width {
			width = len(rec)
		}
	}
	if opts.HeaderOnly {
		data = nil
	}

	var cols []string
	if opts.HeaderRow > 0 {
		cols = normalizeHeader(header, width)
	} else {
		cols = positionalHeader(width)
	}

	t := &Table{Columns: cols, Rows: make([]Row, 0, len(data))}
	for _, rec := range data {
		t.Rows = append(t.Rows, fitRow(rec, width))
	}
	return t
}

// trimTrailingBlankRows drops all-empty records at the end, such as the
// padding rows a workbook keeps after its last formatted cell. Blank rows
// between data rows are kept.
func trimTrailingBlankRows(records [][]string) [][]string {
	end := len(records)
	for end > 0 && isBlankRecord(records[end-1]) {
		end--
	}
	return records[:end]
}

func isBlankRecord(rec []string) bool {
	for _, cell := range rec {
		if cell != "" {
			return false
		}
	}
	return true
}
