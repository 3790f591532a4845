// Package filtering decides which rows and files a tabsplit run keeps.
//
// The building blocks are Matcher implementations (exact, set, prefix, suffix,
// contains, glob and their any/all/not combinations). On top of
// them the package provides:
//
//   - CriteriaSet and LoadCriteria: the case-folded values of a criteria file
//   - MatchMode and NewRowPredicate: the four row filter modes
//   - FilterTable: apply a predicate to one column of a table
//   - ParseFileFilterPatterns and SelectFiles: --include patterns ("!" excludes) on source files
//
// Example:
//
//	criteria, _ := filtering.LoadCriteria(ctx, "carriers.csv", tabular.ReadOptions{})
//	pred, _ := filtering.NewRowPredicate(filtering.ModeContains, criteria)
//	kept, stats, _ := filtering.FilterTable(table, "carrier", pred)
package filtering
