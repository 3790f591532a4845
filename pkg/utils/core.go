// Package utils holds small string and path helpers shared by the tabsplit packages.
package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

// TrimAndSplit splits s on sep, trims each part and drops empty parts.
//
// Parameters:
//   - s: The string to split and trim
//   - sep: The separator to split on
//
// Returns:
//   - []string: Slice of trimmed non-empty strings; empty slice if input is ""
func TrimAndSplit(s string, sep string) []string {
	if s == "" {
		return []string{}
	}

	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// ContainsIgnoreCase checks if a string slice contains an item using strings.EqualFold.
func ContainsIgnoreCase(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}

// MatchGlob checks if a path matches a glob pattern.
//
// Supported patterns:
//   - * matches any sequence of characters within a path segment
//   - ** matches zero or more path segments recursively
//   - ? matches a single character
//   - ! prefix negates the match
//
// Parameters:
//   - path: The file path to match against
//   - pattern: The glob pattern (supports **, *, ?, and ! prefix)
//
// Returns:
//   - bool: true if path matches pattern (or doesn't match if negated), false otherwise
func MatchGlob(path, pattern string) bool {
	negate := false
	if strings.HasPrefix(pattern, "!") {
		negate = true
		pattern = pattern[1:]
	}

	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	var matched bool
	if strings.Contains(pattern, "**") {
		matched, _ = regexp.MatchString(globToRegex(pattern), path)
	} else {
		var err error
		matched, err = filepath.Match(pattern, path)
		if err != nil {
			matched, _ = regexp.MatchString(globToRegex(pattern), path)
		}
	}

	if negate {
		return !matched
	}
	return matched
}

// globToRegex converts a glob pattern to an anchored regular expression.
//
//   - **/ becomes (?:.*/)?
//   - ** becomes .*
//   - * becomes [^/]*
//   - ? becomes .
func globToRegex(pattern string) string {
	pattern = filepath.ToSlash(pattern)
	var builder strings.Builder
	builder.WriteString("^")

	for i := 0; i < len(pattern); {
		if strings.HasPrefix(pattern[i:], "**/") {
			builder.WriteString("(?:.*/)?")
			i += 3
			continue
		}
		if strings.HasPrefix(pattern[i:], "**") {
			builder.WriteString(".*")
			i += 2
			continue
		}
		switch pattern[i] {
		case '*':
			builder.WriteString("[^/]*")
		case '?':
			builder.WriteString(".")
		default:
			builder.WriteString(regexp.QuoteMeta(string(pattern[i])))
		}
		i++
	}

	builder.WriteString("$")
	return builder.String()
}

var fileNameReplacer = strings.NewReplacer("/", "_", "\\", "_", ":", "_", " ", "_")

// SanitizeFileName makes a group label safe to embed in an output file name.
//
// Path separators, colons and spaces become underscores. Everything else,
// including CJK text, is kept as is.
//
// Parameters:
//   - label: The raw label
//
// Returns:
//   - string: The label with unsafe characters replaced
func SanitizeFileName(label string) string {
	return fileNameReplacer.Replace(label)
}

