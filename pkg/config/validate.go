package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/tabsplit/pkg/filtering"
	"github.com/ajxudir/tabsplit/pkg/tabular"
	"github.com/ajxudir/tabsplit/pkg/verbose"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field      string
	Message    string
	Expected   string // Expected type or schema hint
	ValidKeys  string // Valid keys for this context
	DocSection string // Documentation section reference
}

// Error returns the error message string.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// VerboseError returns a detailed error message with schema hints.
//
// Returns:
//   - string: error message with expected type, valid keys and documentation reference
func (e ValidationError) VerboseError() string {
	var sb strings.Builder
	sb.WriteString(e.Error())
	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf("\n    Expected: %s", e.Expected))
	}
	if e.ValidKeys != "" {
		sb.WriteString(fmt.Sprintf("\n    Valid keys: %s", e.ValidKeys))
	}
	if e.DocSection != "" {
		sb.WriteString(fmt.Sprintf("\n    📖 See: docs/configuration.md#%s", e.DocSection))
	}
	return sb.String()
}

// ValidationResult holds the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []string
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// ErrorMessages returns all error messages as a formatted string.
//
// Returns:
//   - string: one "  - " line per error under a heading, or "" if there are none
func (r *ValidationResult) ErrorMessages() string {
	if len(r.Errors) == 0 {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, "  - "+e.Error())
	}
	return "Configuration validation failed:\n" + strings.Join(msgs, "\n")
}

// VerboseErrorMessages returns detailed error messages with schema hints.
func (r *ValidationResult) VerboseErrorMessages() string {
	if len(r.Errors) == 0 {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, "  - "+e.VerboseError())
	}
	return "Configuration validation failed:\n" + strings.Join(msgs, "\n")
}

// Schema information for validation errors
var configSchema = map[string]schemaInfo{
	"Config": {
		fields: "extends, header_row, encoding, extensions, include, workers, output_dir, output_format, page_size, csv_bom, clean_output, filter, match, split",
		doc:    "configuration",
	},
	"FilterCfg": {
		fields: "mode",
		doc:    "filter",
	},
	"MatchCfg": {
		fields: "unmatched_label",
		doc:    "match",
	},
	"SplitCfg": {
		fields: "group_column, mode, rows",
		doc:    "split",
	},
}

type schemaInfo struct {
	fields string
	doc    string
}

// validSplitModes are the accepted split.mode spellings.
var validSplitModes = []string{"single", "single_file", "split", "split_output", "group"}

// ValidateConfigFile validates YAML configuration data for syntax errors,
// unknown fields and invalid values.
//
// Keys absent from data take their built-in defaults before the values are
// checked.
//
// Parameters:
//   - data: YAML configuration data as bytes
//
// Returns:
//   - *ValidationResult: validation result with any errors and warnings found
func ValidateConfigFile(data []byte) *ValidationResult {
	result := &ValidationResult{}

	verbose.Printf("Config validation: starting YAML parsing with strict field checking\n")

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	cfg := loadDefaultConfig()
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		verbose.Printf("Config validation FAILED: YAML decode error: %v\n", err)
		result.Errors = append(result.Errors, decodeError(err))
		return result
	}

	validateConfigStruct(cfg, result)

	if len(result.Errors) == 0 {
		verbose.Printf("Config validation PASSED: no errors found\n")
	} else {
		verbose.Printf("Config validation FAILED: %d errors found\n", len(result.Errors))
	}
	return result
}

// decodeError turns a yaml decode error into a ValidationError with hints.
func decodeError(err error) ValidationError {
	errMsg := err.Error()
	switch {
	case strings.Contains(errMsg, "field") && strings.Contains(errMsg, "not found"):
		fieldName, typeName := extractFieldAndType(errMsg)
		verr := ValidationError{Message: fmt.Sprintf("unknown field '%s'", fieldName)}
		if line := extractLineNumber(errMsg); line > 0 {
			verr.Message = fmt.Sprintf("unknown field '%s' (line %d)", fieldName, line)
		}
		if schema, ok := configSchema[typeName]; ok {
			verr.ValidKeys = schema.fields
			verr.DocSection = schema.doc
		} else if typeName != "" {
			verr.Expected = fmt.Sprintf("valid field for %s", typeName)
		}
		if suggestion := suggestSimilarField(fieldName, typeName); suggestion != "" {
			verr.Message += fmt.Sprintf(" (did you mean '%s'?)", suggestion)
		}
		return verr
	case strings.Contains(errMsg, "cannot unmarshal"):
		// Checked before "yaml:" since these also contain "yaml:".
		return ValidationError{Message: errMsg, Expected: extractExpectedType(errMsg)}
	case strings.Contains(errMsg, "yaml:"):
		return ValidationError{Message: fmt.Sprintf("YAML syntax error: %s", errMsg), DocSection: "configuration"}
	default:
		return ValidationError{Message: errMsg}
	}
}

// Validate validates a loaded Config struct.
//
// Returns:
//   - *ValidationResult: validation result with any errors and warnings found
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}
	validateConfigStruct(c, result)
	return result
}

// validateConfigStruct checks value ranges and enumerations.
func validateConfigStruct(cfg *Config, result *ValidationResult) {
	addErr := func(field, msg, expected string) {
		verbose.Printf("Config validation ERROR: %s: %s\n", field, msg)
		result.Errors = append(result.Errors, ValidationError{
			Field: field, Message: msg, Expected: expected, DocSection: field,
		})
	}

	if cfg.HeaderRow < 0 {
		addErr("header_row", fmt.Sprintf("must be 0 or greater, got %d", cfg.HeaderRow), "0 (no header) or a 1-based row number")
	}
	if _, err := tabular.ParseEncoding(cfg.Encoding); err != nil {
		addErr("encoding", err.Error(), "auto, utf-8, gbk, gb18030 or latin-1")
	}
	if cfg.Workers < 0 {
		addErr("workers", fmt.Sprintf("must be 0 or greater, got %d", cfg.Workers), "")
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		addErr("output_dir", "cannot be empty", "a directory path")
	}
	if _, err := tabular.ParseFormat(cfg.OutputFormat); err != nil {
		addErr("output_format", err.Error(), "csv, xlsx, json or sqlite")
	}
	if cfg.PageSize <= 0 {
		addErr("page_size", fmt.Sprintf("must be greater than 0, got %d", cfg.PageSize), "positive integer")
	}
	if _, err := filtering.ParseMatchMode(cfg.Filter.Mode); err != nil {
		addErr("filter.mode", err.Error(), strings.Join(filtering.ValidModes, ", "))
	}
	if mode := strings.ToLower(strings.TrimSpace(cfg.Split.Mode)); mode != "" && !contains(validSplitModes, mode) {
		addErr("split.mode", fmt.Sprintf("unknown split mode %q", cfg.Split.Mode), "single or split")
	}
	if cfg.Split.Rows <= 0 {
		addErr("split.rows", fmt.Sprintf("must be greater than 0, got %d", cfg.Split.Rows), "positive integer")
	}

	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("extensions[%d]: %q has no leading dot and is read as %q", i, ext, "."+ext))
		}
	}
	if strings.TrimSpace(cfg.Match.UnmatchedLabel) == "" {
		result.Warnings = append(result.Warnings, "match.unmatched_label is empty; \"unmatched\" is used")
	}
	if strings.TrimSpace(cfg.Split.GroupColumn) == "" {
		result.Warnings = append(result.Warnings, "split.group_column is empty; \"group\" is used")
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// extractFieldAndType extracts the field name and type from a YAML error message.
//
// Parameters:
//   - errMsg: YAML error message such as "line 3: field foo not found in type config.Config"
//
// Returns:
//   - field: the unknown field name
//   - typeName: the struct type name without package prefix
func extractFieldAndType(errMsg string) (field, typeName string) {
	parts := strings.Split(errMsg, "field ")
	if len(parts) >= 2 {
		fieldPart := parts[1]
		if spaceIdx := strings.Index(fieldPart, " "); spaceIdx > 0 {
			field = fieldPart[:spaceIdx]
		} else {
			field = fieldPart
		}
	}

	if idx := strings.Index(errMsg, "in type config."); idx >= 0 {
		typePart := errMsg[idx+len("in type config."):]
		if endIdx := strings.IndexAny(typePart, " \n"); endIdx > 0 {
			typeName = typePart[:endIdx]
		} else {
			typeName = typePart
		}
	}

	return field, typeName
}

var lineNumberPattern = regexp.MustCompile(`line (\d+):`)

// extractLineNumber returns the line number of a YAML error message, or 0.
func extractLineNumber(errMsg string) int {
	matches := lineNumberPattern.FindStringSubmatch(errMsg)
	if len(matches) >= 2 {
		var lineNum int
		_, _ = fmt.Sscanf(matches[1], "%d", &lineNum)
		return lineNum
	}
	return 0
}

// extractExpectedType extracts Y from "cannot unmarshal X into Y".
func extractExpectedType(errMsg string) string {
	if idx := strings.Index(errMsg, "into "); idx >= 0 {
		typePart := errMsg[idx+5:]
		if endIdx := strings.IndexAny(typePart, " \n"); endIdx > 0 {
			return typePart[:endIdx]
		}
		return typePart
	}
	return ""
}

// commonTypos maps common typos to correct field names
var commonTypos = map[string]map[string]string{
	"Config": {
		"extend":       "extends",
		"headerRow":    "header_row",
		"header":       "header_row",
		"extension":    "extensions",
		"worker":       "workers",
		"output":       "output_dir",
		"outputDir":    "output_dir",
		"format":       "output_format",
		"outputFormat": "output_format",
		"pageSize":     "page_size",
		"page_rows":    "page_size",
		"bom":          "csv_bom",
		"clean":        "clean_output",
		"includes":     "include",
	},
	"FilterCfg": {
		"match_mode": "mode",
		"matchMode":  "mode",
	},
	"MatchCfg": {
		"unmatched":      "unmatched_label",
		"unmatchedLabel": "unmatched_label",
	},
	"SplitCfg": {
		"group":       "group_column",
		"groupColumn": "group_column",
		"split_rows":  "rows",
		"splitRows":   "rows",
		"page_size":   "rows",
	},
}

// suggestSimilarField returns a suggested field name if the input looks like a typo.
//
// Parameters:
//   - field: the unknown field name
//   - typeName: the type name where the field was found
//
// Returns:
//   - string: suggested correct field name, or empty string if no suggestion
func suggestSimilarField(field, typeName string) string {
	if typos, ok := commonTypos[typeName]; ok {
		if suggestion, found := typos[field]; found {
			return suggestion
		}
	}

	if strings.Contains(field, "-") {
		snakeCase := strings.ReplaceAll(field, "-", "_")
		if schema, ok := configSchema[typeName]; ok {
			for _, known := range strings.Split(schema.fields, ", ") {
				if known == snakeCase {
					return snakeCase
				}
			}
		}
	}

	return ""
}

// ValidateConfigFileStrict is like ValidateConfigFile but treats warnings as errors.
func ValidateConfigFileStrict(data []byte) *ValidationResult {
	result := ValidateConfigFile(data)
	for _, w := range result.Warnings {
		result.Errors = append(result.Errors, ValidationError{Message: w})
	}
	result.Warnings = nil
	return result
}
