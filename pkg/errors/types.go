package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scripting integration.
const (
	// ExitSuccess indicates all source files were processed.
	ExitSuccess = 0

	// ExitPartialFailure indicates some source files failed but outputs
	// were written for the rest.
	ExitPartialFailure = 1

	// ExitFailure indicates the run failed as a whole.
	ExitFailure = 2

	// ExitConfigError indicates a configuration or parameter error.
	// The command could not start.
	ExitConfigError = 3
)

// ExitError represents a command termination with a specific exit code.
//
// Fields:
//   - Code: Exit code (use the Exit* constants)
//   - Message: Human-readable error message
//   - Err: Underlying error that caused this exit, may be nil
//
// Example:
//
//	return &ExitError{
//	    Code:    ExitConfigError,
//	    Message: "failed to load config",
//	    Err:     err,
//	}
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise the underlying error's
// message, or a default message with the exit code.
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
//
// Parameters:
//   - code: Exit code
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ExitError: New exit error
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewExitErrorf creates an ExitError with the given code and formatted message.
func NewExitErrorf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetExitCode extracts the exit code from an error.
//
// nil maps to ExitSuccess, a PartialSuccessError to ExitPartialFailure,
// a ValidationError to ExitConfigError, an ExitError to its own code, and
// anything else to ExitFailure.
//
// Parameters:
//   - err: The error to extract code from
//
// Returns:
//   - int: Exit code
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var pse *PartialSuccessError
	if errors.As(err, &pse) {
		return ExitPartialFailure
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ExitConfigError
	}

	return ExitFailure
}

// IsExitError checks if err is an ExitError and returns it.
func IsExitError(err error) (*ExitError, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}

// PartialSuccessError indicates that some source files were processed while
// others failed to load.
//
// Fields:
//   - Succeeded: Count of files processed
//   - Failed: Count of files that could not be processed
//   - Errors: One error per failed file
type PartialSuccessError struct {
	Succeeded int
	Failed    int
	Errors    []error
}

// Error implements the error interface.
func (e *PartialSuccessError) Error() string {
	return fmt.Sprintf("%d files processed, %d failed", e.Succeeded, e.Failed)
}

// Unwrap exposes the per-file errors to errors.Is/As.
func (e *PartialSuccessError) Unwrap() []error {
	return e.Errors
}

// NewPartialSuccessError creates a PartialSuccessError with the given counts and errors.
//
// Parameters:
//   - succeeded: Number of files processed
//   - failed: Number of files that failed
//   - errs: Per-file errors
//
// Returns:
//   - *PartialSuccessError: New partial success error
func NewPartialSuccessError(succeeded, failed int, errs []error) *PartialSuccessError {
	return &PartialSuccessError{
		Succeeded: succeeded,
		Failed:    failed,
		Errors:    errs,
	}
}

// IsPartialSuccess checks if err is a PartialSuccessError and returns it.
func IsPartialSuccess(err error) (*PartialSuccessError, bool) {
	var pse *PartialSuccessError
	if errors.As(err, &pse) {
		return pse, true
	}
	return nil, false
}

// UnsupportedError indicates a file cannot be read or written in its format.
//
// Fields:
//   - Operation: "read" or "write"
//   - Format: The offending format or extension (e.g., ".xls")
//   - Path: The file involved, may be empty
//   - Reason: Why the format is not supported
type UnsupportedError struct {
	Operation string
	Format    string
	Path      string
	Reason    string
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	msg := fmt.Sprintf("cannot %s %s", e.Operation, e.Format)
	if e.Path != "" {
		msg += fmt.Sprintf(" file %s", e.Path)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// IsUnsupportedError checks if err is an UnsupportedError and returns it.
func IsUnsupportedError(err error) (*UnsupportedError, bool) {
	var ue *UnsupportedError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// NewUnsupportedError creates an UnsupportedError.
//
// Parameters:
//   - operation: "read" or "write"
//   - format: Format name or extension
//   - path: File path, may be empty
//   - reason: Explanation shown to the user
//
// Returns:
//   - *UnsupportedError: New unsupported error
func NewUnsupportedError(operation, format, path, reason string) *UnsupportedError {
	return &UnsupportedError{
		Operation: operation,
		Format:    format,
		Path:      path,
		Reason:    reason,
	}
}
