package tabular

import "errors"

var (
	// ErrUnsupportedFormat is returned for inputs or outputs tabsplit cannot handle.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrRowLimitExceeded is returned when a table does not fit the output format.
	ErrRowLimitExceeded = errors.New("row limit exceeded")
)
