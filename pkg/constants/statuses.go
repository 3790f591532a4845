// Package constants provides centralized string constants used throughout the application.
// This eliminates magic strings and provides a single source of truth for labels,
// output names and status values.
package constants

// Labels and column names written into output files.
const (
	// UnmatchedLabel is the default label for values no mapping pattern claims.
	UnmatchedLabel = "unmatched"

	// GroupColumn is the default name of the column match-and-split adds.
	GroupColumn = "group"

	// MatchedSourceColumn heads the deduplicated source values in the match report.
	MatchedSourceColumn = "source_value"

	// MatchedResultColumn heads the mapping results in the match report.
	MatchedResultColumn = "matched_result"

	// UnmatchedColumn heads the unmatched values report.
	UnmatchedColumn = "unmatched_value"
)

// Output file name stems.
const (
	// FilteredPrefix names the pages written by the filter command.
	FilteredPrefix = "filtered_part"

	// PagedPrefix names the pages written by the paginate command.
	PagedPrefix = "paged_part"

	// MatchedResultsName is the match report file stem.
	MatchedResultsName = "matched_results"

	// UnmatchedValuesName is the unmatched report file stem.
	UnmatchedValuesName = "unmatched_values"

	// SplitSuffix is appended to each group label in split output names.
	SplitSuffix = "match_and_split"
)

// File statuses reported in run summaries.
const (
	// StatusProcessed indicates the file was read and contributed rows.
	StatusProcessed = "Processed"

	// StatusSkipped indicates the file lacked the key column.
	StatusSkipped = "Skipped"

	// StatusFailed indicates the file could not be read.
	StatusFailed = "Failed"

	// StatusWritten indicates an output file was written.
	StatusWritten = "Written"
)

// Icon constants for status display.
const (
	// IconSuccess indicates a successful or positive state (green circle).
	IconSuccess = "🟢"

	// IconWarning indicates a warning or caution state (orange circle).
	IconWarning = "🟠"

	// IconError indicates an error or failed state (red X).
	IconError = "❌"

	// IconSkipped indicates a file left out of the run.
	IconSkipped = "⚪"

	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"

	// IconCheckmarkBox indicates successful validation (checkmark in box).
	IconCheckmarkBox = "✅"

	// IconLightbulb indicates a hint or suggestion.
	IconLightbulb = "💡"
)

// StatusIcon returns the display icon for a file status.
//
// Parameters:
//   - status: One of the Status* constants
//
// Returns:
//   - string: Icon for the status, or empty string for unknown statuses
func StatusIcon(status string) string {
	switch status {
	case StatusProcessed, StatusWritten:
		return IconSuccess
	case StatusSkipped:
		return IconSkipped
	case StatusFailed:
		return IconError
	default:
		return ""
	}
}
