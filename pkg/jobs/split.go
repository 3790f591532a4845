package jobs

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ajxudir/tabsplit/pkg/constants"
	pkgerrors "github.com/ajxudir/tabsplit/pkg/errors"
	"github.com/ajxudir/tabsplit/pkg/matching"
	"github.com/ajxudir/tabsplit/pkg/output"
	"github.com/ajxudir/tabsplit/pkg/paginate"
	"github.com/ajxudir/tabsplit/pkg/tabular"
	"github.com/ajxudir/tabsplit/pkg/utils"
)

// SplitMode selects how match-and-split writes its output.
type SplitMode string

const (
	// SplitSingle writes every tagged row into one file.
	SplitSingle SplitMode = "single"
	// SplitByGroup writes one paginated file set per group label.
	SplitByGroup SplitMode = "split"
)

// ParseSplitMode converts a mode name into a SplitMode. "" selects SplitByGroup.
func ParseSplitMode(s string) (SplitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "split", "split_output", "group":
		return SplitByGroup, nil
	case "single", "single_file":
		return SplitSingle, nil
	default:
		return "", fmt.Errorf("unknown split mode %q (valid: single, split)", s)
	}
}

// SplitJob tags each source row with the mapping label of its key column and
// writes the tagged rows either as one file or as one file set per label.
type SplitJob struct {
	Options

	// MappingPath is the two-column pattern → label file.
	MappingPath string

	// Column is the key column in the source files.
	Column string

	// GroupColumn is the name of the added label column.
	GroupColumn string

	// UnmatchedLabel tags rows without a match.
	UnmatchedLabel string

	// Mode selects single-file or per-group output.
	Mode SplitMode

	// SplitRows is the page size of each group in SplitByGroup mode.
	SplitRows int

	// tagColumn is GroupColumn, renamed when a source already has it.
	tagColumn string
}

func (j *SplitJob) validate() error {
	if err := j.Options.validate(); err != nil {
		return err
	}
	if j.MappingPath == "" {
		return pkgerrors.NewParameterError("mapping", "a mapping file is required", "pass --mapping <file>")
	}
	if j.Column == "" {
		return pkgerrors.NewParameterError("column", "a key column is required", "run 'tabsplit columns <source>' to list the columns")
	}
	if j.GroupColumn == "" {
		j.GroupColumn = constants.GroupColumn
	}
	if j.GroupColumn == j.Column {
		return pkgerrors.NewParameterError("group-column",
			fmt.Sprintf("group column %q is the key column", j.GroupColumn), "pass a different --group-column")
	}
	if j.Mode == "" {
		j.Mode = SplitByGroup
	}
	if j.Mode != SplitSingle && j.Mode != SplitByGroup {
		return pkgerrors.NewParameterError("mode", fmt.Sprintf("unknown split mode %q", j.Mode), "use single or split")
	}
	if j.Mode == SplitByGroup && j.SplitRows <= 0 {
		return pkgerrors.NewParameterError("rows", fmt.Sprintf("split rows must be a positive integer, got %d", j.SplitRows), "")
	}
	return nil
}

// Run executes match-and-split.
//
// In single mode any unreadable file aborts the run before anything is
// written, and a total above the format's row limit fails the run. In split
// mode unreadable files are logged and left out, and the run ends with a
// PartialSuccessError.
func (j *SplitJob) Run(ctx context.Context) (*output.RunResult, error) {
	if err := j.validate(); err != nil {
		return nil, err
	}
	log := j.log()
	result := j.newResult("split")

	log.Info("Starting match and split", zap.String("source", j.Source),
		zap.String("column", j.Column), zap.String("mode", string(j.Mode)))
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
	j.tagColumn = resolveGroupColumn(j.GroupColumn, loaded)
	if j.tagColumn != j.GroupColumn {
		log.Warn("Source files already have the group column, using another name",
			zap.String("group_column", j.GroupColumn), zap.String("renamed", j.tagColumn))
	}

	if j.Mode == SplitSingle {
		return j.runSingle(ctx, result, loaded, matcher)
	}
	return j.runSplit(ctx, result, loaded, matcher)
}

// resolveGroupColumn returns name, or the first of name.1, name.2, ... that
// no loaded table uses, so existing source data is never overwritten.
func resolveGroupColumn(name string, loaded []tabular.LoadResult) string {
	taken := func(candidate string) bool {
		for _, lr := range loaded {
			if lr.Table != nil && lr.Table.HasColumn(candidate) {
				return true
			}
		}
		return false
	}
	candidate := name
	for n := 1; taken(candidate); n++ {
		candidate = name + "." + strconv.Itoa(n)
	}
	return candidate
}

// tag adds the group column to t and returns the labels in row order.
func (j *SplitJob) tag(t *tabular.Table, matcher *matching.Matcher) ([]string, error) {
	keys, _ := t.Column(j.Column)
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = matcher.Match(k)
	}
	if err := t.AddColumn(j.tagColumn, labels); err != nil {
		return nil, err
	}
	return labels, nil
}

func (j *SplitJob) processed(result *output.RunResult, t *tabular.Table) {
	result.Files = append(result.Files, output.FileEntry{
		File: t.Source, Status: constants.StatusProcessed, Rows: t.Len(),
	})
	result.Summary.FilesProcessed++
	result.Summary.TotalRows += t.Len()
}

func (j *SplitJob) runSingle(ctx context.Context, result *output.RunResult, loaded []tabular.LoadResult, matcher *matching.Matcher) (*output.RunResult, error) {
	log := j.log()
	limit := j.Format.RowLimit()
	progress := j.newProgress(len(loaded), "Tagging files")

	combined := &tabular.Table{}
	for _, lr := range loaded {
		progress.Increment(filepath.Base(lr.Path))
		if lr.Err != nil {
			progress.Clear()
			err := readError(lr.Path, lr.Err)
			log.Error("Failed to process file, aborting without output",
				zap.String("file", filepath.Base(lr.Path)), zap.Error(err))
			return nil, err
		}
		if !lr.Table.HasColumn(j.Column) {
			j.skippedEntry(result, lr.Table, j.Column)
			continue
		}

		if _, err := j.tag(lr.Table, matcher); err != nil {
			progress.Clear()
			return nil, err
		}
		combined.Append(lr.Table)
		j.processed(result, lr.Table)

		if limit > 0 && combined.Len() > limit {
			progress.Clear()
			return nil, fmt.Errorf("total rows %d exceed the %s limit of %d rows: %w",
				combined.Len(), j.Format, limit, tabular.ErrRowLimitExceeded)
		}
	}
	progress.Done()

	if combined.Len() == 0 {
		log.Info("Nothing to export")
		return result, nil
	}

	path := filepath.Join(j.OutputDir, constants.SplitSuffix+j.Format.Extension())
	if err := tabular.WriteFile(path, combined, j.writeOptions()); err != nil {
		return result, err
	}
	log.Info("Wrote single file", zap.String("file", filepath.Base(path)), zap.Int("rows", combined.Len()))
	result.Outputs = append(result.Outputs, output.OutputFile{File: path, Rows: combined.Len()})
	result.Summary.OutputFiles = 1
	result.Summary.Groups = countGroups(combined, j.tagColumn)
	return result, nil
}

// group is the rows collected for one sanitised label.
type group struct {
	name  string
	table *tabular.Table
}

func (j *SplitJob) runSplit(ctx context.Context, result *output.RunResult, loaded []tabular.LoadResult, matcher *matching.Matcher) (*output.RunResult, error) {
	log := j.log()
	progress := j.newProgress(len(loaded), "Grouping files")

	var (
		groups []*group
		index  = make(map[string]*group)
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
		t := lr.Table
		if !t.HasColumn(j.Column) {
			j.skippedEntry(result, t, j.Column)
			continue
		}

		labels, err := j.tag(t, matcher)
		if err != nil {
			j.failedEntry(result, lr.Path, err)
			failed = append(failed, err)
			continue
		}
		perFile := make(map[string]*tabular.Table)
		var order []string
		for i, label := range labels {
			name := utils.SanitizeFileName(label)
			sub, ok := perFile[name]
			if !ok {
				sub = &tabular.Table{Columns: t.Columns}
				perFile[name] = sub
				order = append(order, name)
			}
			sub.Rows = append(sub.Rows, t.Rows[i])
		}
		for _, name := range order {
			g, ok := index[name]
			if !ok {
				g = &group{name: name, table: &tabular.Table{}}
				index[name] = g
				groups = append(groups, g)
			}
			g.table.Append(perFile[name])
		}
		j.processed(result, t)
	}
	progress.Done()

	result.Summary.Groups = len(groups)
	exportProgress := j.newProgress(len(groups), "Exporting groups")
	for _, g := range groups {
		exportProgress.Increment(g.name)
		written, err := paginate.Export(ctx, g.table, paginate.Options{
			Dir:             j.OutputDir,
			Prefix:          g.name + "_" + constants.SplitSuffix,
			PageSize:        j.SplitRows,
			Format:          j.Format,
			CSVBOM:          j.CSVBOM,
			OmitSingleIndex: true,
			Logger:          log,
		})
		addOutputs(result, written)
		if err != nil {
			exportProgress.Clear()
			return result, err
		}
	}
	exportProgress.Done()

	log.Info("Match and split finished",
		zap.Int("groups", len(groups)), zap.Int("outputs", result.Summary.OutputFiles),
		zap.Int("failed_files", len(failed)))
	if len(failed) > 0 {
		return result, pkgerrors.NewPartialSuccessError(result.Summary.FilesProcessed, len(failed), failed)
	}
	return result, nil
}

func countGroups(t *tabular.Table, column string) int {
	labels, _ := t.Column(column)
	seen := make(map[string]struct{})
	for _, l := range labels {
		seen[l] = struct{}{}
	}
	return len(seen)
}
