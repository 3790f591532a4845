package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/tabsplit/pkg/filtering"
	"github.com/ajxudir/tabsplit/pkg/tabular"
	"github.com/ajxudir/tabsplit/pkg/verbose"
	"github.com/ajxudir/tabsplit/pkg/warnings"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1, cfg.HeaderRow)
	assert.Equal(t, "auto", cfg.Encoding)
	assert.Equal(t, []string{".csv", ".xlsx", ".xlsm"}, cfg.Extensions)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, 50000, cfg.PageSize)
	assert.True(t, cfg.CSVBOM)
	assert.False(t, cfg.CleanOutput)
	assert.Equal(t, "exact", cfg.Filter.Mode)
	assert.Equal(t, "unmatched", cfg.Match.UnmatchedLabel)
	assert.Equal(t, "group", cfg.Split.GroupColumn)
	assert.Equal(t, "split", cfg.Split.Mode)
	assert.Equal(t, 50000, cfg.Split.Rows)
	assert.False(t, cfg.Validate().HasErrors())
}

func TestLoadConfigWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfigLocalFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, FileName, `
page_size: 200
csv_bom: false
split:
  mode: single
`)

	cfg, err := LoadConfig("", dir)
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.PageSize)
	assert.False(t, cfg.CSVBOM)
	assert.Equal(t, "single", cfg.Split.Mode)
	// Keys not present keep their defaults, including siblings in nested sections.
	assert.Equal(t, 50000, cfg.Split.Rows)
	assert.Equal(t, "group", cfg.Split.GroupColumn)
	assert.Equal(t, 1, cfg.HeaderRow)
}

func TestLoadConfigExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "custom.yml", "output_format: xlsx\nencoding: gbk\n")

	cfg, err := LoadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, tabular.FormatXLSX, cfg.Format())
	assert.Equal(t, tabular.EncodingGBK, cfg.ReadOptions().Encoding)
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfigEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "empty.yml", "")

	cfg, err := LoadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, 50000, cfg.PageSize)
}

func TestLoadConfigRejectsUnknownField(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "bad.yml", "pageSize: 10\n")

	_, err := LoadConfig(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pageSize")
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "bad.yml", "page_size: 0\nsplit:\n  mode: sideways\n")

	_, err := LoadConfig(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page_size")
	assert.Contains(t, err.Error(), "split.mode")
}

func TestLoadConfigVerboseErrors(t *testing.T) {
	var log bytes.Buffer
	verbose.SetWriter(&log)
	verbose.Enable()
	defer func() {
		verbose.Disable()
		verbose.SetWriter(os.Stderr)
	}()

	path := writeConfig(t, t.TempDir(), "bad.yml", "page_size: 0\n")
	_, err := LoadConfig(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected: positive integer")
}

func TestLoadConfigReportsWarnings(t *testing.T) {
	var buf bytes.Buffer
	restore := warnings.SetWarningWriter(&buf)
	defer restore()

	path := writeConfig(t, t.TempDir(), "warn.yml", "extensions: [csv]\nmatch:\n  unmatched_label: \"\"\n")
	cfg, err := LoadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"csv"}, cfg.Extensions)
	assert.Contains(t, buf.String(), "has no leading dot")
	assert.Contains(t, buf.String(), "match.unmatched_label is empty")
}

func TestLoadConfigExtends(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "base.yml", "page_size: 10\noutput_format: json\n")
	path := writeConfig(t, dir, "child.yml", "extends: [base.yml]\noutput_format: sqlite\n")

	cfg, err := LoadConfig(path, "")
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.PageSize, "inherited from base")
	assert.Equal(t, tabular.FormatSQLite, cfg.Format(), "child overrides base")
	assert.Nil(t, cfg.Extends)
}

func TestLoadConfigExtendsDefaultResetsEarlierValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "base.yml", "page_size: 10\n")
	path := writeConfig(t, dir, "child.yml", "extends: [base.yml, default]\n")

	cfg, err := LoadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, 50000, cfg.PageSize)
}

func TestLoadConfigExtendsCycle(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "a.yml", "extends: [b.yml]\n")
	writeConfig(t, dir, "b.yml", "extends: [a.yml]\n")

	_, err := LoadConfig(filepath.Join(dir, "a.yml"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cyclic extends")
}

func TestLoadConfigExtendsMissing(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "child.yml", "extends: [missing.yml]\n")

	_, err := LoadConfig(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load extend 'missing.yml'")
}

func TestReadConfigDataSizeLimit(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "big.yml", "page_size: 100000\n")

	_, err := readConfigData(path, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file too large")

	data, err := readConfigData(path, DefaultMaxConfigFileSize)
	require.NoError(t, err)
	assert.Equal(t, "page_size: 100000\n", string(data))
}

func TestConfigAccessorsFallBack(t *testing.T) {
	cfg := &Config{OutputFormat: "bogus", Encoding: "bogus", Filter: FilterCfg{Mode: "bogus"}, HeaderRow: 0}

	assert.Equal(t, tabular.FormatCSV, cfg.Format())
	assert.Equal(t, filtering.ModeExact, cfg.FilterMode())
	opts := cfg.ReadOptions()
	assert.Equal(t, tabular.EncodingAuto, opts.Encoding)
	assert.Equal(t, 0, opts.HeaderRow)
}

func TestEmbeddedConfigsAreValid(t *testing.T) {
	for name, data := range map[string]string{
		"default":  GetDefaultConfig(),
		"template": GetTemplateConfig(),
	} {
		result := ValidateConfigFile([]byte(data))
		assert.False(t, result.HasErrors(), "%s: %s", name, result.ErrorMessages())
	}
	assert.Contains(t, GetTemplateConfig(), "# tabsplit configuration")
}
