package jobs

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ajxudir/tabsplit/pkg/constants"
	pkgerrors "github.com/ajxudir/tabsplit/pkg/errors"
	"github.com/ajxudir/tabsplit/pkg/filtering"
	"github.com/ajxudir/tabsplit/pkg/output"
	"github.com/ajxudir/tabsplit/pkg/paginate"
	"github.com/ajxudir/tabsplit/pkg/tabular"
)

// FilterJob keeps the rows whose filter column matches a criteria file and
// writes them as filtered_part_<n> pages.
type FilterJob struct {
	Options

	// CriteriaPath is the criteria file (first column, no header).
	CriteriaPath string

	// Column is the filter column in the source files.
	Column string

	// Mode selects exact, contains, prefix or suffix matching.
	Mode filtering.MatchMode

	// PageSize is the maximum number of rows per output file.
	PageSize int
}

func (j *FilterJob) validate() error {
	if err := j.Options.validate(); err != nil {
		return err
	}
	if j.CriteriaPath == "" {
		return pkgerrors.NewParameterError("criteria", "a criteria file is required", "pass --criteria <file>")
	}
	if j.Column == "" {
		return pkgerrors.NewParameterError("column", "a filter column is required", "run 'tabsplit columns <source>' to list the columns")
	}
	if j.PageSize <= 0 {
		return pkgerrors.NewParameterError("page-size", fmt.Sprintf("page size must be a positive integer, got %d", j.PageSize), "")
	}
	if j.Mode == "" {
		j.Mode = filtering.ModeExact
	}
	return nil
}

// Run executes the filter.
//
// A source file that cannot be read aborts the run; a file without the
// filter column is skipped with a warning.
//
// Parameters:
//   - ctx: Cancels loading and export
//
// Returns:
//   - *output.RunResult: Per-file status, written pages and row counts
//   - error: Validation, criteria, read or write failure
func (j *FilterJob) Run(ctx context.Context) (*output.RunResult, error) {
	if err := j.validate(); err != nil {
		return nil, err
	}
	log := j.log()
	result := j.newResult("filter")

	log.Info("Starting filter", zap.String("source", j.Source), zap.String("column", j.Column), zap.String("mode", string(j.Mode)))
	if err := j.prepareOutputDir(); err != nil {
		return nil, err
	}

	criteria, err := filtering.LoadCriteria(ctx, j.CriteriaPath, j.Read)
	if err != nil {
		return nil, err
	}
	log.Info("Loaded criteria", zap.Int("count", criteria.Len()))

	pred, err := filtering.NewRowPredicate(j.Mode, criteria)
	if err != nil {
		return nil, err
	}

	files, err := j.sourceFiles()
	if err != nil {
		return nil, err
	}
	result.Summary.Files = len(files)

	loaded, err := j.loadSources(ctx, files)
	if err != nil {
		return nil, err
	}

	progress := j.newProgress(len(loaded), "Filtering files")
	combined := &tabular.Table{}
	for i, lr := range loaded {
		progress.Increment(filepath.Base(lr.Path))
		if lr.Err != nil {
			progress.Clear()
			return nil, readError(lr.Path, lr.Err)
		}
		log.Info("Processing file", zap.String("file", filepath.Base(lr.Path)),
			zap.Int("index", i+1), zap.Int("total", len(loaded)))

		if !lr.Table.HasColumn(j.Column) {
			j.skippedEntry(result, lr.Table, j.Column)
			continue
		}

		kept, stats, err := filtering.FilterTable(lr.Table, j.Column, pred)
		if err != nil {
			return nil, err
		}
		log.Info("Filtered file", zap.String("file", filepath.Base(lr.Path)),
			zap.Int("rows", stats.Total), zap.Int("kept", stats.Kept))

		combined.Append(kept)
		result.Files = append(result.Files, output.FileEntry{
			File: lr.Path, Status: constants.StatusProcessed, Rows: stats.Total, Kept: stats.Kept,
		})
		result.Summary.FilesProcessed++
		result.Summary.TotalRows += stats.Total
		result.Summary.KeptRows += stats.Kept
		result.Summary.DroppedRows += stats.Dropped
	}
	progress.Done()

	written, err := paginate.Export(ctx, combined, paginate.Options{
		Dir:      j.OutputDir,
		Prefix:   constants.FilteredPrefix,
		PageSize: j.PageSize,
		Format:   j.Format,
		CSVBOM:   j.CSVBOM,
		Logger:   log,
	})
	addOutputs(result, written)
	if err != nil {
		return result, err
	}

	log.Info("Filter finished",
		zap.Int("files", result.Summary.Files),
		zap.Int("total_rows", result.Summary.TotalRows),
		zap.Int("kept", result.Summary.KeptRows),
		zap.Int("dropped", result.Summary.DroppedRows))
	return result, nil
}

// PaginateJob concatenates the source files and writes them as paged_part_<n> pages.
type PaginateJob struct {
	Options

	// PageSize is the maximum number of rows per output file.
	PageSize int
}

// Run executes the pagination. A source file that cannot be read aborts the run.
func (j *PaginateJob) Run(ctx context.Context) (*output.RunResult, error) {
	if err := j.Options.validate(); err != nil {
		return nil, err
	}
	if j.PageSize <= 0 {
		return nil, pkgerrors.NewParameterError("page-size", fmt.Sprintf("page size must be a positive integer, got %d", j.PageSize), "")
	}
	log := j.log()
	result := j.newResult("paginate")

	log.Info("Starting pagination", zap.String("source", j.Source), zap.Int("page_size", j.PageSize))
	if err := j.prepareOutputDir(); err != nil {
		return nil, err
	}

	files, err := j.sourceFiles()
	if err != nil {
		return nil, err
	}
	result.Summary.Files = len(files)

	loaded, err := j.loadSources(ctx, files)
	if err != nil {
		return nil, err
	}

	progress := j.newProgress(len(loaded), "Reading files")
	combined := &tabular.Table{}
	for _, lr := range loaded {
		progress.Increment(filepath.Base(lr.Path))
		if lr.Err != nil {
			progress.Clear()
			return nil, readError(lr.Path, lr.Err)
		}
		combined.Append(lr.Table)
		result.Files = append(result.Files, output.FileEntry{
			File: lr.Path, Status: constants.StatusProcessed, Rows: lr.Table.Len(),
		})
		result.Summary.FilesProcessed++
		result.Summary.TotalRows += lr.Table.Len()
	}
	progress.Done()
	log.Info("Loaded all files", zap.Int("total_rows", combined.Len()))

	written, err := paginate.Export(ctx, combined, paginate.Options{
		Dir:      j.OutputDir,
		Prefix:   constants.PagedPrefix,
		PageSize: j.PageSize,
		Format:   j.Format,
		CSVBOM:   j.CSVBOM,
		Logger:   log,
	})
	addOutputs(result, written)
	if err != nil {
		return result, err
	}

	log.Info("Pagination finished", zap.Int("files", result.Summary.Files), zap.Int("total_rows", result.Summary.TotalRows))
	return result, nil
}
