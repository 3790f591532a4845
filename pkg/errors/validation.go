package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationCategory identifies the source of a validation error.
type ValidationCategory string

const (
	// ValidationCategoryParameter indicates a missing or invalid command parameter.
	ValidationCategoryParameter ValidationCategory = "parameter"

	// ValidationCategoryInput indicates an input file whose content cannot be used
	// (empty criteria file, mapping file with a single column).
	ValidationCategoryInput ValidationCategory = "input"
)

// ValidationError represents a parameter or input failure.
//
// Fields:
//   - Category: Source of validation ("config", "parameter", "input")
//   - Field: Name of the invalid field, flag or file
//   - Message: Description of what's wrong
//   - Expected: What the valid value should look like
//   - ValidKeys: List of valid options (for enum-like fields)
//   - DocSection: Documentation anchor for this setting
//   - Hint: Actionable hint for fixing the error
//
// Example:
//
//	return &ValidationError{
//	    Category:  ValidationCategoryParameter,
//	    Field:     "mode",
//	    Message:   "unknown match mode \"fuzzy\"",
//	    ValidKeys: []string{"exact", "contains", "prefix", "suffix"},
//	}
type ValidationError struct {
	Category   ValidationCategory
	Field      string
	Message    string
	Expected   string
	ValidKeys  []string
	DocSection string
	Hint       string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// VerboseError returns a detailed error message with schema hints.
//
// Returns:
//   - string: Detailed error with expected values and documentation links
func (e *ValidationError) VerboseError() string {
	var sb strings.Builder

	sb.WriteString(e.Error())
	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf("\n    Expected: %s", e.Expected))
	}
	if len(e.ValidKeys) > 0 {
		sb.WriteString(fmt.Sprintf("\n    Valid values: %s", strings.Join(e.ValidKeys, ", ")))
	}
	if e.DocSection != "" {
		sb.WriteString(fmt.Sprintf("\n    See: docs/configuration.md#%s", e.DocSection))
	}
	if e.Hint != "" {
		sb.WriteString(fmt.Sprintf("\n    Hint: %s", e.Hint))
	}

	return sb.String()
}

// IsValidationError checks if err is a ValidationError and returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// NewParameterError creates a ValidationError for a missing or invalid parameter.
//
// Parameters:
//   - field: Flag or argument name
//   - message: Description of the problem
//   - hint: Resolution hint, may be empty
//
// Returns:
//   - *ValidationError: New validation error with parameter category
func NewParameterError(field, message, hint string) *ValidationError {
	return &ValidationError{
		Category: ValidationCategoryParameter,
		Field:    field,
		Message:  message,
		Hint:     hint,
	}
}

// NewInputError creates a ValidationError for an input file that cannot be used.
//
// Parameters:
//   - path: The offending file
//   - message: Description of the problem
//   - hint: Resolution hint, may be empty
//
// Returns:
//   - *ValidationError: New validation error with input category
func NewInputError(path, message, hint string) *ValidationError {
	return &ValidationError{
		Category: ValidationCategoryInput,
		Field:    path,
		Message:  message,
		Hint:     hint,
	}
}
