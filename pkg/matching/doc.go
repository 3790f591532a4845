// Package matching assigns labels to values by longest case-insensitive prefix.
//
// A MappingTable is read from a two-column file: column one holds the
// pattern, column two the label. A Matcher tries patterns from longest to
// shortest and returns the label of the first pattern that is a prefix of
// the subject, ignoring case. Subjects no pattern matches get the
// unmatched label.
//
// Example:
//
//	mapping, _ := matching.LoadMapping(ctx, "groups.csv", tabular.ReadOptions{})
//	m := matching.NewMatcher(mapping, "unmatched")
//	m.Match("中国移动北京分公司") // "移动" when "中国移动" → "移动" is the longest matching pattern
package matching
