package matching

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ajxudir/tabsplit/pkg/constants"
	"github.com/ajxudir/tabsplit/pkg/runlog"
	"github.com/ajxudir/tabsplit/pkg/tabular"
)

// ErrNoValues is returned when no source file yields a value to match.
var ErrNoValues = errors.New("no values found in the key column")

// Result is the label assigned to one distinct source value.
type Result struct {
	Value   string `json:"source_value"`
	Label   string `json:"matched_result"`
	Pattern string `json:"pattern"`
}

// Report is the outcome of matching a set of distinct values.
type Report struct {
	Matched   []Result `json:"matched"`
	Unmatched []string `json:"unmatched"`
}

// Total returns the number of values matched or not.
func (r Report) Total() int {
	return len(r.Matched) + len(r.Unmatched)
}

// UniqueValues collects the distinct non-empty values of column across tables.
//
// Values keep their first-seen order. Tables without the column are skipped
// with a warning on log.
//
// Parameters:
//   - tables: Loaded source tables
//   - column: Key column name
//   - log: Run log; nil discards
//
// Returns:
//   - []string: Distinct values
//   - error: ErrNoValues when nothing was collected
func UniqueValues(tables []*tabular.Table, column string, log *zap.Logger) ([]string, error) {
	log = runlog.OrNop(log)

	seen := make(map[string]struct{})
	var values []string
	for _, t := range tables {
		col, ok := t.Column(column)
		if !ok {
			log.Warn("Column not found, skipping file",
				zap.String("file", filepath.Base(t.Source)), zap.String("column", column))
			continue
		}
		for _, v := range col {
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
		log.Info("Collected distinct values",
			zap.String("file", filepath.Base(t.Source)), zap.Int("distinct_so_far", len(values)))
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("column %q: %w", column, ErrNoValues)
	}
	return values, nil
}

// MatchAll matches every value and splits them into matched and unmatched.
func (m *Matcher) MatchAll(values []string) Report {
	var r Report
	for _, v := range values {
		p, ok := m.Lookup(v)
		if !ok {
			r.Unmatched = append(r.Unmatched, v)
			continue
		}
		r.Matched = append(r.Matched, Result{Value: v, Label: p.Result, Pattern: p.Pattern})
	}
	return r
}

// ExportReport writes the matched and unmatched values to dir.
//
// matched_results holds columns source_value and matched_result;
// unmatched_values holds column unmatched_value. A file is only written when
// it has at least one row.
//
// Returns:
//   - []string: Paths written
//   - error: Directory or write failure
func ExportReport(dir string, r Report, opts tabular.WriteOptions) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string
	if len(r.Matched) > 0 {
		t := tabular.NewTable(constants.MatchedSourceColumn, constants.MatchedResultColumn)
		for _, res := range r.Matched {
			t.AppendRow(res.Value, res.Label)
		}
		path := filepath.Join(dir, constants.MatchedResultsName+opts.Format.Extension())
		if err := tabular.WriteFile(path, t, opts); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	if len(r.Unmatched) > 0 {
		t := tabular.NewTable(constants.UnmatchedColumn)
		for _, v := range r.Unmatched {
			t.AppendRow(v)
		}
		path := filepath.Join(dir, constants.UnmatchedValuesName+opts.Format.Extension())
		if err := tabular.WriteFile(path, t, opts); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
