package errors

import (
	"fmt"
	"io"
)

// PrintErrorWithHints prints errors with actionable hints to the writer.
//
// This is the single implementation for error display across all commands.
//
// Output format:
//
//	Error: <error message>
//	  💡 <hint if available>
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - errs: Slice of errors to display
//   - verbose: If true, includes additional details
func PrintErrorWithHints(w io.Writer, errs []error, verbose bool) {
	for _, err := range errs {
		printSingleError(w, err, verbose)
	}
}

func printSingleError(w io.Writer, err error, verbose bool) {
	if err == nil {
		return
	}

	if ve, ok := IsValidationError(err); ok {
		if verbose {
			_, _ = fmt.Fprintf(w, "Validation Error: %s\n", ve.VerboseError())
		} else {
			_, _ = fmt.Fprintf(w, "Validation Error: %s\n", ve.Error())
		}
		return
	}

	if ue, ok := IsUnsupportedError(err); ok {
		_, _ = fmt.Fprintf(w, "Unsupported: %s\n", EnhanceErrorWithHint(ue))
		return
	}

	if pse, ok := IsPartialSuccess(err); ok {
		_, _ = fmt.Fprintf(w, "Partial Success: %s\n", pse.Error())
		for _, e := range pse.Errors {
			if verbose {
				_, _ = fmt.Fprintf(w, "    - %s\n", EnhanceErrorWithHint(e))
			} else {
				_, _ = fmt.Fprintf(w, "    - %s\n", e.Error())
			}
		}
		return
	}

	_, _ = fmt.Fprintf(w, "Error: %s\n", EnhanceErrorWithHint(err))
}
