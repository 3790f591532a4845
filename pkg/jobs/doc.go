// Package jobs runs the tabsplit batch operations end to end.
//
// Each job validates its inputs, lists and loads the source files, applies
// its routine, writes the output files and returns an output.RunResult:
//
//   - FilterJob: keep rows whose filter column matches a criteria file, then paginate
//   - PaginateJob: concatenate the sources and paginate them unchanged
//   - MatchJob: match the distinct values of a column against a mapping file
//   - SplitJob: tag every row with its mapping label and write one file set per label
//
// Jobs report progress on their zap logger and never print to stdout.
package jobs
