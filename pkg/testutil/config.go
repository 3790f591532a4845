package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/tabsplit/pkg/config"
)

// ConfigBuilder provides a fluent API for building test configurations.
//
// It starts from the built-in defaults, so tests only set what they exercise.
type ConfigBuilder struct {
	cfg *config.Config
}

// NewConfig creates a new ConfigBuilder seeded with the built-in defaults.
func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{cfg: config.Default()}
}

// WithOutputDir sets output_dir.
func (b *ConfigBuilder) WithOutputDir(dir string) *ConfigBuilder {
	b.cfg.OutputDir = dir
	return b
}

// WithOutputFormat sets output_format.
func (b *ConfigBuilder) WithOutputFormat(format string) *ConfigBuilder {
	b.cfg.OutputFormat = format
	return b
}

// WithPageSize sets page_size.
func (b *ConfigBuilder) WithPageSize(n int) *ConfigBuilder {
	b.cfg.PageSize = n
	return b
}

// WithHeaderRow sets header_row.
func (b *ConfigBuilder) WithHeaderRow(row int) *ConfigBuilder {
	b.cfg.HeaderRow = row
	return b
}

// WithCSVBOM sets csv_bom.
func (b *ConfigBuilder) WithCSVBOM(bom bool) *ConfigBuilder {
	b.cfg.CSVBOM = bom
	return b
}

// WithFilterMode sets filter.mode.
func (b *ConfigBuilder) WithFilterMode(mode string) *ConfigBuilder {
	b.cfg.Filter.Mode = mode
	return b
}

// WithSplit sets split.mode and split.rows.
//
// Parameters:
//   - mode: "single" or "split"
//   - rows: Rows per output file in split mode
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithSplit(mode string, rows int) *ConfigBuilder {
	b.cfg.Split.Mode = mode
	b.cfg.Split.Rows = rows
	return b
}

// Build returns the built configuration.
func (b *ConfigBuilder) Build() *config.Config {
	return b.cfg
}

// WriteFile marshals the configuration as YAML into dir/name and returns the path.
//
// Parameters:
//   - t: Testing instance; the test fails if the file cannot be written
//   - dir: Target directory
//   - name: File name, e.g. config.FileName
//
// Returns:
//   - string: Path of the written file
func (b *ConfigBuilder) WriteFile(t *testing.T, dir, name string) string {
	t.Helper()

	data, err := yaml.Marshal(b.cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
