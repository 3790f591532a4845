package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfigFileUnknownField(t *testing.T) {
	result := ValidateConfigFile([]byte("page_size: 10\npageSize: 20\n"))
	require.True(t, result.HasErrors())
	require.Len(t, result.Errors, 1)

	verr := result.Errors[0]
	assert.Contains(t, verr.Message, "unknown field 'pageSize'")
	assert.Contains(t, verr.Message, "(line 2)")
	assert.Contains(t, verr.Message, "did you mean 'page_size'?")
	assert.Contains(t, verr.ValidKeys, "output_format")
	assert.Equal(t, "configuration", verr.DocSection)
}

func TestValidateConfigFileNestedUnknownField(t *testing.T) {
	result := ValidateConfigFile([]byte("match:\n  unmatched: none\n"))
	require.True(t, result.HasErrors())

	verr := result.Errors[0]
	assert.Contains(t, verr.Message, "did you mean 'unmatched_label'?")
	assert.Equal(t, "unmatched_label", verr.ValidKeys)
	assert.Equal(t, "match", verr.DocSection)
}

func TestValidateConfigFileKebabCase(t *testing.T) {
	result := ValidateConfigFile([]byte("clean-output: true\n"))
	require.True(t, result.HasErrors())
	assert.Contains(t, result.Errors[0].Message, "did you mean 'clean_output'?")
}

func TestValidateConfigFileTypeMismatch(t *testing.T) {
	result := ValidateConfigFile([]byte("page_size: lots\n"))
	require.True(t, result.HasErrors())
	assert.Contains(t, result.Errors[0].Message, "cannot unmarshal")
	assert.Equal(t, "int", result.Errors[0].Expected)
}

func TestValidateConfigFileSyntaxError(t *testing.T) {
	result := ValidateConfigFile([]byte("page_size: [1, 2\n"))
	require.True(t, result.HasErrors())
	assert.Contains(t, result.Errors[0].Message, "YAML syntax error")
}

func TestValidateConfigValues(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"negative header row", "header_row: -1", "header_row"},
		{"unknown encoding", "encoding: ebcdic", "encoding"},
		{"negative workers", "workers: -2", "workers"},
		{"empty output dir", "output_dir: ''", "output_dir"},
		{"unknown output format", "output_format: parquet", "output_format"},
		{"zero page size", "page_size: 0", "page_size"},
		{"unknown filter mode", "filter:\n  mode: fuzzy", "filter.mode"},
		{"unknown split mode", "split:\n  mode: sideways", "split.mode"},
		{"zero split rows", "split:\n  rows: 0", "split.rows"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateConfigFile([]byte(tt.yaml))
			require.True(t, result.HasErrors())
			assert.Equal(t, tt.field, result.Errors[0].Field)
			assert.Contains(t, result.ErrorMessages(), tt.field+":")
		})
	}
}

func TestValidateConfigAcceptsAliases(t *testing.T) {
	result := ValidateConfigFile([]byte("filter:\n  mode: 前缀匹配\nsplit:\n  mode: single_file\noutput_format: excel\nencoding: cp936\n"))
	assert.False(t, result.HasErrors(), result.ErrorMessages())
}

func TestValidateConfigWarnings(t *testing.T) {
	data := []byte("extensions: [csv]\nmatch:\n  unmatched_label: ''\n")

	result := ValidateConfigFile(data)
	assert.False(t, result.HasErrors())
	assert.Len(t, result.Warnings, 2)

	strict := ValidateConfigFileStrict(data)
	assert.True(t, strict.HasErrors())
	assert.Len(t, strict.Errors, 2)
	assert.Empty(t, strict.Warnings)
}

func TestValidationErrorFormatting(t *testing.T) {
	verr := ValidationError{
		Field:      "page_size",
		Message:    "must be greater than 0, got 0",
		Expected:   "positive integer",
		ValidKeys:  "page_size",
		DocSection: "page_size",
	}
	assert.Equal(t, "page_size: must be greater than 0, got 0", verr.Error())

	detail := verr.VerboseError()
	assert.Contains(t, detail, "Expected: positive integer")
	assert.Contains(t, detail, "Valid keys: page_size")
	assert.Contains(t, detail, "docs/configuration.md#page_size")

	result := &ValidationResult{Errors: []ValidationError{verr}}
	assert.Contains(t, result.VerboseErrorMessages(), "Configuration validation failed:")
	assert.Empty(t, (&ValidationResult{}).ErrorMessages())
	assert.Empty(t, (&ValidationResult{}).VerboseErrorMessages())
}

func TestExtractHelpers(t *testing.T) {
	field, typeName := extractFieldAndType("yaml: unmarshal errors:\n  line 4: field rowz not found in type config.SplitCfg")
	assert.Equal(t, "rowz", field)
	assert.Equal(t, "SplitCfg", typeName)

	assert.Equal(t, 4, extractLineNumber("line 4: field rowz not found"))
	assert.Equal(t, 0, extractLineNumber("no line here"))
	assert.Equal(t, "int", extractExpectedType("cannot unmarshal !!str `x` into int"))
	assert.Equal(t, "", extractExpectedType("something else"))

	assert.Equal(t, "rows", suggestSimilarField("split_rows", "SplitCfg"))
	assert.Equal(t, "", suggestSimilarField("whatever", "SplitCfg"))
}
