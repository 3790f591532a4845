package errors

import (
	"strings"
)

// ErrorHint provides actionable resolution hints for common errors.
//
// Fields:
//   - Pattern: Substring to match in error message (case-insensitive)
//   - Hint: Brief description of the issue
//   - Resolution: Command or action to resolve the issue
type ErrorHint struct {
	Pattern    string
	Hint       string
	Resolution string
}

// CommonErrorHints maps error patterns to actionable hints.
// These are used by EnhanceErrorWithHint to add context to errors.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "no files to process",
		Hint:       "No CSV or Excel files found",
		Resolution: "Check the path, or widen 'extensions' in .tabsplit.yml",
	},
	{
		Pattern:    "cannot decode",
		Hint:       "File encoding not recognised",
		Resolution: "Pass --encoding gbk (or gb18030, latin-1) explicitly",
	},
	{
		Pattern:    "cannot read .xls",
		Hint:       "Legacy Excel 97-2003 workbook",
		Resolution: "Save the workbook as .xlsx or export it to CSV",
	},
	{
		Pattern:    "row limit",
		Hint:       "Output exceeds the Excel sheet size",
		Resolution: "Use --format csv, or --mode split with --rows",
	},
	{
		Pattern:    "at least two columns",
		Hint:       "Mapping file layout",
		Resolution: "Put the pattern in column A and the result label in column B",
	},
	{
		Pattern:    "failed to load config",
		Hint:       "Configuration file is invalid or not found",
		Resolution: "Run 'tabsplit config --validate', or 'tabsplit config --init' to create one",
	},
	{
		Pattern:    "no such file or directory",
		Hint:       "File or directory not found",
		Resolution: "Verify the path exists and you have read permissions",
	},
	{
		Pattern:    "permission denied",
		Hint:       "Insufficient permissions",
		Resolution: "Check permissions on the source files and the output directory",
	},
}

// GetHint returns an actionable hint for the given error.
//
// Parameters:
//   - err: The error to get a hint for
//
// Returns:
//   - string: The hint with resolution, or empty string if no hint found
func GetHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := strings.ToLower(err.Error())
	for _, hint := range CommonErrorHints {
		if strings.Contains(errStr, strings.ToLower(hint.Pattern)) {
			return hint.Hint + ": " + hint.Resolution
		}
	}

	return ""
}

// EnhanceErrorWithHint adds an actionable hint to an error message if a matching pattern is found.
//
// Example:
//
//	enhanced := errors.EnhanceErrorWithHint(err)
//	fmt.Fprintf(os.Stderr, "Error: %s\n", enhanced)
func EnhanceErrorWithHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := err.Error()
	if hint := GetHint(err); hint != "" {
		return errStr + "\n  \U0001F4A1 " + hint
	}
	return errStr
}
