package filtering

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajxudir/tabsplit/pkg/tabular"
)

// ErrEmptyCriteria is returned when a criteria file holds no usable values.
var ErrEmptyCriteria = errors.New("criteria file has no values")

// Fold returns the lower-cased form of s used for every comparison.
//
// Lower-casing keeps the rune count of most text, so "ß" stays "ß" and
// never matches "ss". Values are not trimmed: " a" and "a" are different
// criteria.
func Fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

// CriteriaSet holds the distinct case-folded criteria in file order.
type CriteriaSet struct {
	values []string
	index  map[string]struct{}
}

// NewCriteriaSet folds and deduplicates raw values. Empty values are dropped.
func NewCriteriaSet(raw []string) *CriteriaSet {
	c := &CriteriaSet{index: make(map[string]struct{}, len(raw))}
	for _, v := range raw {
		if v == "" {
			continue
		}
		f := Fold(v)
		if _, dup := c.index[f]; dup {
			continue
		}
		c.index[f] = struct{}{}
		c.values = append(c.values, f)
	}
	return c
}

// Len returns the number of distinct criteria.
func (c *CriteriaSet) Len() int {
	if c == nil {
		return 0
	}
	return len(c.values)
}

// Contains reports whether the folded form of v is a criterion.
func (c *CriteriaSet) Contains(v string) bool {
	_, ok := c.index[Fold(v)]
	return ok
}

// Values returns the folded criteria in first-seen order.
func (c *CriteriaSet) Values() []string {
	out := make([]string, len(c.values))
	copy(out, c.values)
	return out
}

// LoadCriteria reads a criteria file.
//
// The file is read without a header whatever opts.HeaderRow says; only the
// first column is used and empty cells are skipped.
//
// Parameters:
//   - ctx: Context for the read
//   - path: Criteria file (csv or xlsx)
//   - opts: Encoding options; HeaderRow is forced to 0
//
// Returns:
//   - *CriteriaSet: Folded distinct criteria
//   - error: Read error, or ErrEmptyCriteria when nothing usable was found
func LoadCriteria(ctx context.Context, path string, opts tabular.ReadOptions) (*CriteriaSet, error) {
	opts.HeaderRow = 0
	opts.HeaderOnly = false
	t, err := tabular.ReadFile(ctx, path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load criteria: %w", err)
	}

	var raw []string
	if len(t.Columns) > 0 {
		raw, _ = t.Column(t.Columns[0])
	}

	c := NewCriteriaSet(raw)
	if c.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyCriteria)
	}
	return c, nil
}
