package testutil

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/xuri/excelize/v2"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create fixture dir: %v", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// WriteCSV writes rows as a comma-separated UTF-8 file and returns the path.
//
// The first row is usually the header; nothing is added.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - dir: Target directory
//   - name: File name
//   - rows: Records to write
//
// Returns:
//   - string: Path of the written file
func WriteCSV(t *testing.T, dir, name string, rows ...[]string) string {
	t.Helper()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("encode csv fixture: %v", err)
	}
	return WriteFile(t, dir, name, buf.Bytes())
}

// WriteXLSX writes rows to the first sheet of a new workbook and returns the path.
func WriteXLSX(t *testing.T, dir, name string, rows ...[]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellStr(sheet, cell, v); err != nil {
				t.Fatalf("set cell %s: %v", cell, err)
			}
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save xlsx fixture: %v", err)
	}
	return path
}

// ReadCSV reads a csv output file, dropping a leading byte order mark.
func ReadCSV(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM))).ReadAll()
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return records
}

// ListDir returns the sorted file names in dir.
func ListDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// NumberedRows returns a header and n rows of the form [id, name-id, key].
// key cycles through keys, or is empty when keys is empty.
func NumberedRows(n int, keys ...string) [][]string {
	rows := [][]string{{"id", "name", "key"}}
	for i := 0; i < n; i++ {
		key := ""
		if len(keys) > 0 {
			key = keys[i%len(keys)]
		}
		rows = append(rows, []string{fmt.Sprint(i), fmt.Sprintf("name-%d", i), key})
	}
	return rows
}
