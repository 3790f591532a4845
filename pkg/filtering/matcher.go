package filtering

import (
	"strconv"
	"strings"

	"github.com/ajxudir/tabsplit/pkg/utils"
)

// Matcher defines the interface for string matching strategies.
//
// Example:
//
//	matcher := filtering.NewGlobMatcher("sales_*.csv")
//	if matcher.Match("sales_2024.csv") {
//	    fmt.Println("matched!")
//	}
type Matcher interface {
	// Match tests if the given value matches the pattern.
	Match(value string) bool

	// String returns a string representation of the matcher.
	String() string
}

// ExactMatcher matches strings that exactly equal the pattern.
//
// Example:
//
//	matcher := &filtering.ExactMatcher{Pattern: "cmcc", IgnoreCase: true}
//	matcher.Match("CMCC")  // returns true
//	matcher.Match("cmcc2") // returns false
type ExactMatcher struct {
	// Pattern is the exact string to match.
	Pattern string

	// IgnoreCase enables case-insensitive matching.
	IgnoreCase bool
}

// Match tests if value exactly equals the pattern.
func (m *ExactMatcher) Match(value string) bool {
	if m.IgnoreCase {
		return strings.EqualFold(value, m.Pattern)
	}
	return value == m.Pattern
}

// String returns the pattern string.
func (m *ExactMatcher) String() string {
	return m.Pattern
}

// SetMatcher matches values that are members of a set.
//
// It is the constant-time form of an AnyMatcher over ExactMatchers and backs
// the exact row filter mode.
type SetMatcher struct {
	members map[string]struct{}
}

// NewSetMatcher creates a matcher for the given members.
func NewSetMatcher(members []string) *SetMatcher {
	m := &SetMatcher{members: make(map[string]struct{}, len(members))}
	for _, v := range members {
		m.members[v] = struct{}{}
	}
	return m
}

// Match tests if value is a member of the set.
func (m *SetMatcher) Match(value string) bool {
	_, ok := m.members[value]
	return ok
}

// String describes the set size.
func (m *SetMatcher) String() string {
	return "set(" + strconv.Itoa(len(m.members)) + ")"
}

// PrefixMatcher matches strings that start with the pattern.
//
// Example:
//
//	matcher := &filtering.PrefixMatcher{Prefix: "138"}
//	matcher.Match("13800000000") // returns true
//	matcher.Match("15900000000") // returns false
type PrefixMatcher struct {
	// Prefix is the string that values must start with.
	Prefix string

	// IgnoreCase enables case-insensitive matching.
	IgnoreCase bool
}

// Match tests if value starts with the prefix.
func (m *PrefixMatcher) Match(value string) bool {
	if m.IgnoreCase {
		return strings.HasPrefix(strings.ToLower(value), strings.ToLower(m.Prefix))
	}
	return strings.HasPrefix(value, m.Prefix)
}

// String returns the prefix with a trailing asterisk (e.g., "prefix*").
func (m *PrefixMatcher) String() string {
	return m.Prefix + "*"
}

// SuffixMatcher matches strings that end with the pattern.
type SuffixMatcher struct {
	// Suffix is the string that values must end with.
	Suffix string

	// IgnoreCase enables case-insensitive matching.
	IgnoreCase bool
}

// Match tests if value ends with the suffix.
func (m *SuffixMatcher) Match(value string) bool {
	if m.IgnoreCase {
		return strings.HasSuffix(strings.ToLower(value), strings.ToLower(m.Suffix))
	}
	return strings.HasSuffix(value, m.Suffix)
}

// String returns the suffix with a leading asterisk (e.g., "*suffix").
func (m *SuffixMatcher) String() string {
	return "*" + m.Suffix
}

// ContainsMatcher matches strings that contain the pattern.
type ContainsMatcher struct {
	// Substring is the string that values must contain.
	Substring string

	// IgnoreCase enables case-insensitive matching.
	IgnoreCase bool
}

// Match tests if value contains the substring.
func (m *ContainsMatcher) Match(value string) bool {
	if m.IgnoreCase {
		return strings.Contains(strings.ToLower(value), strings.ToLower(m.Substring))
	}
	return strings.Contains(value, m.Substring)
}

// String returns the substring wrapped in asterisks (e.g., "*sub*").
func (m *ContainsMatcher) String() string {
	return "*" + m.Substring + "*"
}

// GlobMatcher matches strings using glob patterns (*, **, ?).
type GlobMatcher struct {
	// Pattern is the glob pattern.
	Pattern string
}

// Match tests if value matches the glob pattern.
func (m *GlobMatcher) Match(value string) bool {
	return utils.MatchGlob(value, m.Pattern)
}

// String returns the glob pattern.
func (m *GlobMatcher) String() string {
	return m.Pattern
}

// NewExactMatcher creates a case-sensitive exact matcher.
func NewExactMatcher(pattern string) Matcher {
	return &ExactMatcher{Pattern: pattern}
}

// NewPrefixMatcher creates a case-sensitive prefix matcher.
func NewPrefixMatcher(prefix string) Matcher {
	return &PrefixMatcher{Prefix: prefix}
}

// NewSuffixMatcher creates a case-sensitive suffix matcher.
func NewSuffixMatcher(suffix string) Matcher {
	return &SuffixMatcher{Suffix: suffix}
}

// NewContainsMatcher creates a case-sensitive substring matcher.
func NewContainsMatcher(substring string) Matcher {
	return &ContainsMatcher{Substring: substring}
}

// NewGlobMatcher creates a glob matcher.
func NewGlobMatcher(pattern string) Matcher {
	return &GlobMatcher{Pattern: pattern}
}

// AnyMatcher matches if any of its matchers match. An empty AnyMatcher matches nothing.
type AnyMatcher struct {
	Matchers []Matcher
}

// Match returns true on the first matching child.
func (m *AnyMatcher) Match(value string) bool {
	for _, matcher := range m.Matchers {
		if matcher.Match(value) {
			return true
		}
	}
	return false
}

// String joins the child patterns with " | ".
func (m *AnyMatcher) String() string {
	return joinMatchers(m.Matchers, " | ")
}

// AllMatcher matches if all of its matchers match. An empty AllMatcher matches everything.
type AllMatcher struct {
	Matchers []Matcher
}

// Match returns false on the first non-matching child.
func (m *AllMatcher) Match(value string) bool {
	for _, matcher := range m.Matchers {
		if !matcher.Match(value) {
			return false
		}
	}
	return true
}

// String joins the child patterns with " & ".
func (m *AllMatcher) String() string {
	return joinMatchers(m.Matchers, " & ")
}

// NotMatcher inverts another matcher.
type NotMatcher struct {
	Matcher Matcher
}

// Match returns the negation of the inner matcher.
func (m *NotMatcher) Match(value string) bool {
	return !m.Matcher.Match(value)
}

// String prefixes the inner pattern with "!".
func (m *NotMatcher) String() string {
	return "!" + m.Matcher.String()
}

// NewAnyMatcher combines matchers with OR logic.
func NewAnyMatcher(matchers ...Matcher) Matcher {
	return &AnyMatcher{Matchers: matchers}
}

// NewAllMatcher combines matchers with AND logic.
func NewAllMatcher(matchers ...Matcher) Matcher {
	return &AllMatcher{Matchers: matchers}
}

// NewNotMatcher negates a matcher.
func NewNotMatcher(matcher Matcher) Matcher {
	return &NotMatcher{Matcher: matcher}
}

func joinMatchers(matchers []Matcher, sep string) string {
	parts := make([]string, len(matchers))
	for i, m := range matchers {
		parts[i] = m.String()
	}
	return strings.Join(parts, sep)
}

// Verify interface implementations.
var (
	_ Matcher = (*ExactMatcher)(nil)
	_ Matcher = (*SetMatcher)(nil)
	_ Matcher = (*PrefixMatcher)(nil)
	_ Matcher = (*SuffixMatcher)(nil)
	_ Matcher = (*ContainsMatcher)(nil)
	_ Matcher = (*GlobMatcher)(nil)
	_ Matcher = (*AnyMatcher)(nil)
	_ Matcher = (*AllMatcher)(nil)
	_ Matcher = (*NotMatcher)(nil)
)
