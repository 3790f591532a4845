// Package errors provides unified error types and display for tabsplit.
//
// This package consolidates error handling for all commands:
//   - ExitError: Command exit with specific exit code
//   - PartialSuccessError: Some source files were processed, some failed
//   - ValidationError: Bad parameters or configuration
//   - UnsupportedError: A file format the tool cannot read or write
//
// Error Display:
//
//	errors.PrintErrorWithHints(os.Stderr, errs, verbose)
//
// Exit Codes:
//
// Standard exit codes are defined for scripting integration:
//   - ExitSuccess (0): All files processed
//   - ExitPartialFailure (1): Some files failed, outputs for the rest were written
//   - ExitFailure (2): The run failed and no outputs were written
//   - ExitConfigError (3): Configuration or parameter error
package errors
