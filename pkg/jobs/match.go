package jobs

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ajxudir/tabsplit/pkg/constants"
	pkgerrors "github.com/ajxudir/tabsplit/pkg/errors"
	"github.com/ajxudir/tabsplit/pkg/matching"
	"github.com/ajxudir/tabsplit/pkg/output"
	"github.com/ajxudir/tabsplit/pkg/tabular"
)

// MatchJob matches the distinct values of a column against a mapping file and
// writes matched_results and unmatched_values reports.
type MatchJob struct {
	Options

	// MappingPath is the two-column pattern → label file.
	MappingPath string

	// Column is the key column in the source files.
	Column string

	// UnmatchedLabel is reported for values without a match.
	UnmatchedLabel string
}

func (j *MatchJob) validate() error {
	if err := j.Options.validate(); err != nil {
		return err
	}
	if j.MappingPath == "" {
		return pkgerrors.NewParameterError("mapping", "a mapping file is required", "pass --mapping <file>")
	}
	if j.Column == "" {
		return pkgerrors.NewParameterError("column", "a key column is required", "run 'tabsplit columns <source>' to list the columns")
	}
	return nil
}

// Run executes the match.
//
// Files that cannot be read are logged and left out; the run then ends with
// a PartialSuccessError after writing the reports.
func (j *MatchJob) Run(ctx context.Context) (*output.RunResult, error) {
	if err := j.validate(); err != nil {
		return nil, err
	}
	log := j.log()
	result := j.newResult("match")

	log.Info("Starting match", zap.String("source", j.Source), zap.String("column", j.Column))
	if err := j.prepareOutputDir(); err != nil {
		return nil, err
	}

	mapping, err := matching.LoadMapping(ctx, j.MappingPath, j.Read)
	if err != nil {
		return nil, err
	}
	log.Info("Loaded mapping", zap.Int("pairs", mapping.Len()))
	matcher := matching.NewMatcher(mapping, j.UnmatchedLabel)

	files, err := j.sourceFiles()
	if err != nil {
		return nil, err
	}
	result.Summary.Files = len(files)

	loaded, err := j.loadSources(ctx, files)
	if err != nil {
		return nil, err
	}

	progress := j.newProgress(len(loaded), "Collecting values")
	var (
		tables []*tabular.Table
		failed []error
	)
	for _, lr := range loaded {
		progress.Increment(filepath.Base(lr.Path))
		if lr.Err != nil {
			err := readError(lr.Path, lr.Err)
			j.failedEntry(result, lr.Path, err)
			failed = append(failed, err)
			continue
		}
		if !lr.Table.HasColumn(j.Column) {
			j.skippedEntry(result, lr.Table, j.Column)
			continue
		}
		tables = append(tables, lr.Table)
		result.Files = append(result.Files, output.FileEntry{
			File: lr.Path, Status: constants.StatusProcessed, Rows: lr.Table.Len(),
		})
		result.Summary.FilesProcessed++
		result.Summary.TotalRows += lr.Table.Len()
	}
	progress.Done()

	values, err := matching.UniqueValues(tables, j.Column, log)
	if err != nil {
		return result, err
	}

	report := matcher.MatchAll(values)
	result.Summary.DistinctValues = report.Total()
	result.Summary.Matched = len(report.Matched)
	result.Summary.UnmatchedCount = len(report.Unmatched)
	result.Unmatched = report.Unmatched
	log.Info("Match summary",
		zap.Int("distinct", report.Total()),
		zap.Int("matched", len(report.Matched)),
		zap.Int("unmatched", len(report.Unmatched)))

	paths, err := matching.ExportReport(j.OutputDir, report, j.writeOptions())
	for _, p := range paths {
		rows := len(report.Matched)
		if filepath.Base(p) == constants.UnmatchedValuesName+j.Format.Extension() {
			rows = len(report.Unmatched)
		}
		result.Outputs = append(result.Outputs, output.OutputFile{File: p, Rows: rows})
		log.Info("Wrote report", zap.String("file", filepath.Base(p)), zap.Int("rows", rows))
	}
	result.Summary.OutputFiles = len(result.Outputs)
	if err != nil {
		return result, err
	}
	if len(report.Matched) == 0 {
		log.Info("No matched values, matched report not written")
	}
	if len(report.Unmatched) == 0 {
		log.Info("All values matched, unmatched report not written")
	}

	if len(failed) > 0 {
		return result, pkgerrors.NewPartialSuccessError(result.Summary.FilesProcessed, len(failed), failed)
	}
	return result, nil
}
