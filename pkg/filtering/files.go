package filtering

import (
	"path/filepath"
	"strings"
)

// FileFilterPatterns holds include and exclude patterns for file filtering.
type FileFilterPatterns struct {
	Include []string
	Exclude []string
}

// IsEmpty reports whether no pattern was given.
func (p FileFilterPatterns) IsEmpty() bool {
	return len(p.Include) == 0 && len(p.Exclude) == 0
}

// Matcher combines the patterns: any include, and none of the excludes.
// No includes means everything not excluded.
func (p FileFilterPatterns) Matcher() Matcher {
	var parts []Matcher
	if len(p.Include) > 0 {
		parts = append(parts, NewAnyMatcher(fileMatchers(p.Include)...))
	}
	if len(p.Exclude) > 0 {
		parts = append(parts, NewNotMatcher(NewAnyMatcher(fileMatchers(p.Exclude)...)))
	}
	return NewAllMatcher(parts...)
}

// fileMatchers turns wildcard patterns into globs and the rest into exact names.
func fileMatchers(patterns []string) []Matcher {
	matchers := make([]Matcher, len(patterns))
	for i, p := range patterns {
		if strings.ContainsAny(p, "*?[") {
			matchers[i] = NewGlobMatcher(p)
		} else {
			matchers[i] = NewExactMatcher(p)
		}
	}
	return matchers
}

// ParseFileFilterPatterns parses a comma-separated filter string into include/exclude patterns.
// Patterns starting with ! are treated as exclusion patterns.
//
// Example:
//
//	patterns := filtering.ParseFileFilterPatterns("sales_*.csv,!*_backup.csv")
//	// patterns.Include = ["sales_*.csv"]
//	// patterns.Exclude = ["*_backup.csv"]
func ParseFileFilterPatterns(filter string) FileFilterPatterns {
	var patterns FileFilterPatterns
	for _, p := range strings.Split(filter, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.HasPrefix(p, "!") {
			patterns.Exclude = append(patterns.Exclude, strings.TrimPrefix(p, "!"))
		} else {
			patterns.Include = append(patterns.Include, p)
		}
	}
	return patterns
}

// MatchesFileFilter checks if a file name matches the filter patterns.
func MatchesFileFilter(name string, patterns FileFilterPatterns) bool {
	return patterns.Matcher().Match(name)
}

// SelectFiles keeps the paths whose base name matches filter.
//
// Parameters:
//   - paths: Candidate source files
//   - filter: Comma-separated names or globs, "!" prefix excludes; "" keeps everything
//
// Returns:
//   - []string: Selected paths in input order
func SelectFiles(paths []string, filter string) []string {
	patterns := ParseFileFilterPatterns(filter)
	if patterns.IsEmpty() {
		return paths
	}

	m := patterns.Matcher()
	var selected []string
	for _, p := range paths {
		if m.Match(filepath.Base(p)) {
			selected = append(selected, p)
		}
	}
	return selected
}
