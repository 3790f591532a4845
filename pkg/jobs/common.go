package jobs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ajxudir/tabsplit/pkg/constants"
	pkgerrors "github.com/ajxudir/tabsplit/pkg/errors"
	"github.com/ajxudir/tabsplit/pkg/filtering"
	"github.com/ajxudir/tabsplit/pkg/output"
	"github.com/ajxudir/tabsplit/pkg/paginate"
	"github.com/ajxudir/tabsplit/pkg/runlog"
	"github.com/ajxudir/tabsplit/pkg/tabular"
	"github.com/ajxudir/tabsplit/pkg/verbose"
)

// Options are the settings shared by every job.
type Options struct {
	// Source is a data file or a directory of data files.
	Source string

	// Include filters directory entries by base name (comma-separated globs, "!" excludes).
	Include string

	// Extensions are the accepted source extensions; nil means tabular.DefaultExtensions.
	Extensions []string

	// Read controls header row and encoding of source files.
	Read tabular.ReadOptions

	// Workers bounds concurrent file loading; <= 0 means GOMAXPROCS.
	Workers int

	// OutputDir receives the output files.
	OutputDir string

	// Format is the output file format.
	Format tabular.Format

	// CSVBOM writes a byte order mark in csv outputs.
	CSVBOM bool

	// Clean removes existing files in OutputDir before writing.
	Clean bool

	// Logger is the run log. Nil discards.
	Logger *zap.Logger

	// Progress, when set, receives a per-file progress line.
	Progress io.Writer

	// RunID identifies the run in its result. Generated when empty.
	RunID string
}

func (o *Options) log() *zap.Logger {
	return runlog.OrNop(o.Logger)
}

func (o *Options) writeOptions() tabular.WriteOptions {
	return tabular.WriteOptions{Format: o.Format, CSVBOM: o.CSVBOM}
}

func (o *Options) validate() error {
	if o.Source == "" {
		return pkgerrors.NewParameterError("source", "a source file or directory is required", "pass the data file or directory as the first argument")
	}
	if o.OutputDir == "" {
		return pkgerrors.NewParameterError("output-dir", "an output directory is required", "set --output-dir or output_dir in .tabsplit.yml")
	}
	if o.Format == "" {
		o.Format = tabular.FormatCSV
	}
	if _, err := tabular.ParseFormat(string(o.Format)); err != nil {
		return pkgerrors.NewParameterError("format", err.Error(), "use csv, xlsx, json or sqlite")
	}
	if o.Read.HeaderRow < 0 {
		return pkgerrors.NewParameterError("header-row", "header row must be 0 (no header) or a 1-based row number", "")
	}
	return nil
}

func (o *Options) newResult(command string) *output.RunResult {
	if o.RunID == "" {
		o.RunID = runlog.NewRunID()
	}
	return &output.RunResult{Command: command, RunID: o.RunID}
}

// prepareOutputDir creates the output directory and optionally empties it.
func (o *Options) prepareOutputDir() error {
	log := o.log()
	log.Info("Output directory", zap.String("dir", o.OutputDir))
	if err := os.MkdirAll(o.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if o.Clean {
		n, err := paginate.CleanDir(o.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to clean output directory: %w", err)
		}
		log.Info("Cleaned output directory", zap.Int("removed", n))
	}
	return nil
}

// sourceFiles lists the source files or reports that there are none.
func (o *Options) sourceFiles() ([]string, error) {
	files, err := tabular.ListFiles(o.Source, o.Extensions)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", o.Source, err)
	}
	files = filtering.SelectFiles(files, o.Include)
	if len(files) == 0 {
		return nil, pkgerrors.NewInputError(o.Source, "no files to process",
			"check the path, --include patterns and the extensions setting")
	}
	o.log().Info("Found source files", zap.Int("count", len(files)))
	return files, nil
}

// loadSources reads files concurrently, returning per-file results in order.
func (o *Options) loadSources(ctx context.Context, files []string) ([]tabular.LoadResult, error) {
	results, err := tabular.LoadAll(ctx, files, o.Read, o.Workers)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (o *Options) newProgress(total int, message string) *output.Progress {
	if o.Progress == nil {
		p := output.NewProgress(io.Discard, total, message)
		p.SetEnabled(false)
		return p
	}
	return output.NewProgress(o.Progress, total, message)
}

// readError converts a per-file read failure into the error reported to the user.
func readError(path string, err error) error {
	if errors.Is(err, tabular.ErrUnsupportedFormat) {
		return pkgerrors.NewUnsupportedError("read", filepath.Ext(path), path, err.Error())
	}
	return err
}

// skippedEntry records a file that lacks the key column.
func (o *Options) skippedEntry(result *output.RunResult, t *tabular.Table, column string) {
	name := filepath.Base(t.Source)
	reason := fmt.Sprintf("column '%s' not found", column)
	o.log().Warn("Column not found, skipping file", zap.String("file", name), zap.String("column", column))
	verbose.FileSkipped(name, reason)
	result.Files = append(result.Files, output.FileEntry{File: t.Source, Status: constants.StatusSkipped, Rows: t.Len(), Reason: reason})
	result.Warnings = append(result.Warnings, fmt.Sprintf("%s skipped: %s", name, reason))
	result.Summary.FilesSkipped++
}

// failedEntry records a file that could not be read.
func (o *Options) failedEntry(result *output.RunResult, path string, err error) {
	o.log().Error("Failed to process file", zap.String("file", filepath.Base(path)), zap.Error(err))
	result.Files = append(result.Files, output.FileEntry{File: path, Status: constants.StatusFailed, Reason: err.Error()})
	result.Errors = append(result.Errors, err.Error())
	result.Summary.FilesFailed++
}

func addOutputs(result *output.RunResult, files []paginate.File) {
	for _, f := range files {
		result.Outputs = append(result.Outputs, output.OutputFile{File: f.Path, Rows: f.Rows})
	}
	result.Summary.OutputFiles = len(result.Outputs)
}
