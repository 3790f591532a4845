package matching

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ajxudir/tabsplit/pkg/tabular"
)

var (
	// ErrEmptyMapping is returned when a mapping file yields no pairs.
	ErrEmptyMapping = errors.New("mapping file has no pattern/label pairs")

	// ErrTooFewColumns is returned when a mapping file has fewer than two columns.
	ErrTooFewColumns = errors.New("mapping file needs at least two columns: pattern and label")
)

// Pair is one mapping entry.
type Pair struct {
	Pattern string `json:"pattern"`
	Result  string `json:"result"`
}

// MappingTable holds the mapping pairs in file order with unique patterns.
type MappingTable struct {
	Pairs []Pair
}

// NewMappingTable builds a table from raw pairs.
//
// Patterns and results are trimmed; pairs with either side empty are
// skipped. A repeated pattern keeps the position of its first occurrence
// and the result of its last.
func NewMappingTable(raw []Pair) *MappingTable {
	m := &MappingTable{}
	index := make(map[string]int, len(raw))
	for _, p := range raw {
		pattern := strings.TrimSpace(p.Pattern)
		result := strings.TrimSpace(p.Result)
		if pattern == "" || result == "" {
			continue
		}
		if i, dup := index[pattern]; dup {
			m.Pairs[i].Result = result
			continue
		}
		index[pattern] = len(m.Pairs)
		m.Pairs = append(m.Pairs, Pair{Pattern: pattern, Result: result})
	}
	return m
}

// Len returns the number of pairs.
func (m *MappingTable) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Pairs)
}

// LoadMapping reads a mapping file without a header.
//
// Parameters:
//   - ctx: Context for the read
//   - path: Mapping file; column one is the pattern, column two the label
//   - opts: Encoding options; HeaderRow is forced to 0
//
// Returns:
//   - *MappingTable: Pairs in file order
//   - error: Read failure, ErrTooFewColumns or ErrEmptyMapping
func LoadMapping(ctx context.Context, path string, opts tabular.ReadOptions) (*MappingTable, error) {
	opts.HeaderRow = 0
	opts.HeaderOnly = false
	t, err := tabular.ReadFile(ctx, path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load mapping: %w", err)
	}
	if len(t.Columns) < 2 {
		return nil, fmt.Errorf("%s: %w", path, ErrTooFewColumns)
	}

	raw := make([]Pair, 0, t.Len())
	for _, r := range t.Rows {
		raw = append(raw, Pair{Pattern: r[0], Result: r[1]})
	}

	m := NewMappingTable(raw)
	if m.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyMapping)
	}
	return m, nil
}
