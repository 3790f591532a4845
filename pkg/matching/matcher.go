package matching

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ajxudir/tabsplit/pkg/constants"
	"github.com/ajxudir/tabsplit/pkg/verbose"
)

type entry struct {
	Pair
	runes int
}

// Matcher resolves subjects to labels. It is safe for concurrent use.
type Matcher struct {
	entries   []entry
	unmatched string
}

// NewMatcher prepares mapping for matching.
//
// Patterns are ordered by descending rune length; patterns of equal length
// keep their mapping order.
//
// Parameters:
//   - mapping: Pattern/label pairs
//   - unmatchedLabel: Label for subjects without a match; "" means constants.UnmatchedLabel
//
// Returns:
//   - *Matcher: Ready matcher
func NewMatcher(mapping *MappingTable, unmatchedLabel string) *Matcher {
	if unmatchedLabel == "" {
		unmatchedLabel = constants.UnmatchedLabel
	}

	m := &Matcher{unmatched: unmatchedLabel}
	if mapping != nil {
		m.entries = make([]entry, len(mapping.Pairs))
		for i, p := range mapping.Pairs {
			m.entries[i] = entry{Pair: p, runes: utf8.RuneCountInString(p.Pattern)}
		}
	}
	sort.SliceStable(m.entries, func(i, j int) bool {
		return m.entries[i].runes > m.entries[j].runes
	})
	return m
}

// UnmatchedLabel returns the label given to unmatched subjects.
func (m *Matcher) UnmatchedLabel() string {
	return m.unmatched
}

// Lookup finds the longest pattern that prefixes subject.
//
// The subject is trimmed first; an empty subject never matches.
//
// Returns:
//   - Pair: The winning pattern and its label
//   - bool: false when no pattern matches
func (m *Matcher) Lookup(subject string) (Pair, bool) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return Pair{}, false
	}
	for _, e := range m.entries {
		if hasPrefixFold(subject, e.Pattern, e.runes) {
			return e.Pair, true
		}
	}
	return Pair{}, false
}

// Match returns the label for subject, or the unmatched label.
func (m *Matcher) Match(subject string) string {
	p, ok := m.Lookup(subject)
	if !ok {
		verbose.PatternMatched(subject, "", m.unmatched)
		return m.unmatched
	}
	verbose.PatternMatched(subject, p.Pattern, p.Result)
	return p.Result
}

// hasPrefixFold reports whether the first n runes of s equal prefix under
// Unicode simple case folding.
func hasPrefixFold(s, prefix string, n int) bool {
	end := 0
	for i := 0; i < n; i++ {
		if end >= len(s) {
			return false
		}
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	return strings.EqualFold(s[:end], prefix)
}
