// Package paginate splits a table into fixed-size output files.
package paginate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/ajxudir/tabsplit/pkg/runlog"
	"github.com/ajxudir/tabsplit/pkg/tabular"
)

// ErrInvalidPageSize is returned for a page size below 1.
var ErrInvalidPageSize = errors.New("page size must be a positive integer")

// Chunk is the half-open row range [Start, End) of one output page.
type Chunk struct {
	Start int
	End   int
}

// Len returns the number of rows in the chunk.
func (c Chunk) Len() int {
	return c.End - c.Start
}

// Chunks divides n rows into pages of size rows.
//
// All chunks but the last hold exactly size rows; the last holds n mod size
// rows, or size when n is a multiple of size. n = 0 yields no chunks.
//
// Returns:
//   - []Chunk: ceil(n/size) ranges covering [0, n) in order
//   - error: ErrInvalidPageSize when size <= 0
func Chunks(n, size int) ([]Chunk, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidPageSize, size)
	}
	if n <= 0 {
		return nil, nil
	}

	chunks := make([]Chunk, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		chunks = append(chunks, Chunk{Start: start, End: end})
	}
	return chunks, nil
}

// Options controls Export.
type Options struct {
	// Dir is the output directory. It is created when missing.
	Dir string

	// Prefix is the file name stem; pages are named "<Prefix>_<n><ext>".
	Prefix string

	// PageSize is the maximum number of data rows per file.
	PageSize int

	// Format selects the file format and extension.
	Format tabular.Format

	// CSVBOM writes a UTF-8 byte order mark in csv pages.
	CSVBOM bool

	// OmitSingleIndex names the file "<Prefix><ext>" when only one page is written.
	OmitSingleIndex bool

	// Logger receives one line per written page. Nil discards.
	Logger *zap.Logger
}

// File describes one written page.
type File struct {
	Path string `json:"path"`
	Rows int    `json:"rows"`
}

// PageName returns the file name of page n (1-based) out of total pages.
func (o Options) PageName(n, total int) string {
	if o.OmitSingleIndex && total == 1 {
		return o.Prefix + o.Format.Extension()
	}
	return o.Prefix + "_" + strconv.Itoa(n) + o.Format.Extension()
}

// Export writes t as a sequence of pages.
//
// Concatenating the written files in order reproduces t's rows. An empty
// table writes nothing.
//
// Parameters:
//   - ctx: Checked between pages
//   - t: Table to export
//   - opts: Directory, naming, page size and format
//
// Returns:
//   - []File: Written files in page order
//   - error: Invalid page size, directory or write failure, or cancellation
func Export(ctx context.Context, t *tabular.Table, opts Options) ([]File, error) {
	log := runlog.OrNop(opts.Logger)

	chunks, err := Chunks(t.Len(), opts.PageSize)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		log.Info("Nothing to export", zap.String("prefix", opts.Prefix))
		return nil, nil
	}

	if opts.Format.RowLimit() > 0 && opts.PageSize > opts.Format.RowLimit() {
		log.Warn("Page size exceeds the format row limit",
			zap.Int("page_size", opts.PageSize), zap.Int("limit", opts.Format.RowLimit()))
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	files := make([]File, 0, len(chunks))
	for i, c := range chunks {
		if err := ctx.Err(); err != nil {
			return files, err
		}

		path := filepath.Join(opts.Dir, opts.PageName(i+1, len(chunks)))
		page := t.Slice(c.Start, c.End)
		if err := tabular.WriteFile(path, page, tabular.WriteOptions{Format: opts.Format, CSVBOM: opts.CSVBOM}); err != nil {
			return files, err
		}

		log.Info("Wrote page", zap.String("file", filepath.Base(path)), zap.Int("rows", c.Len()))
		files = append(files, File{Path: path, Rows: c.Len()})
	}
	return files, nil
}

// CleanDir removes the regular files directly inside dir.
//
// Subdirectories are left alone. A missing dir is not an error.
//
// Returns:
//   - int: Number of files removed
//   - error: First failure to list or remove
func CleanDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
