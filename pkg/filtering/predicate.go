package filtering

import (
	"fmt"

	"github.com/ajxudir/tabsplit/pkg/tabular"
)

// foldingMatcher folds the value before handing it to the inner matcher.
type foldingMatcher struct {
	mode  MatchMode
	inner Matcher
}

func (m *foldingMatcher) Match(value string) bool {
	return m.inner.Match(Fold(value))
}

func (m *foldingMatcher) String() string {
	return string(m.mode) + "(" + m.inner.String() + ")"
}

// NewRowPredicate builds the matcher applied to a row's filter value.
//
// The value is case-folded before comparison; the criteria are already folded.
//
// Parameters:
//   - mode: One of ModeExact, ModeContains, ModePrefix, ModeSuffix
//   - criteria: Folded criteria; must not be empty
//
// Returns:
//   - Matcher: Predicate over raw cell values
//   - error: For an unknown mode or empty criteria
func NewRowPredicate(mode MatchMode, criteria *CriteriaSet) (Matcher, error) {
	if criteria.Len() == 0 {
		return nil, ErrEmptyCriteria
	}

	values := criteria.Values()
	var inner Matcher
	switch mode {
	case ModeExact:
		inner = NewSetMatcher(values)
	case ModeContains:
		inner = anyOf(values, NewContainsMatcher)
	case ModePrefix:
		inner = anyOf(values, NewPrefixMatcher)
	case ModeSuffix:
		inner = anyOf(values, NewSuffixMatcher)
	default:
		return nil, fmt.Errorf("unknown match mode %q", mode)
	}
	return &foldingMatcher{mode: mode, inner: inner}, nil
}

func anyOf(values []string, build func(string) Matcher) Matcher {
	matchers := make([]Matcher, len(values))
	for i, v := range values {
		matchers[i] = build(v)
	}
	return NewAnyMatcher(matchers...)
}

// FilterStats counts the outcome of FilterTable.
type FilterStats struct {
	Total   int
	Kept    int
	Dropped int
}

// FilterTable keeps the rows whose column value satisfies pred.
//
// Parameters:
//   - t: Source table
//   - column: Name of the filter column
//   - pred: Row predicate from NewRowPredicate or any Matcher
//
// Returns:
//   - *tabular.Table: Kept rows in input order, same columns as t
//   - FilterStats: Total, kept and dropped counts
//   - error: When t lacks the column
func FilterTable(t *tabular.Table, column string, pred Matcher) (*tabular.Table, FilterStats, error) {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil, FilterStats{}, fmt.Errorf("column %q not found", column)
	}

	kept := t.Filter(func(r tabular.Row) bool {
		return pred.Match(r[idx])
	})
	stats := FilterStats{
		Total:   t.Len(),
		Kept:    kept.Len(),
		Dropped: t.Len() - kept.Len(),
	}
	return kept, stats, nil
}
