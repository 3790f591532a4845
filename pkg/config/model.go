package config

import (
	"github.com/ajxudir/tabsplit/pkg/filtering"
	"github.com/ajxudir/tabsplit/pkg/tabular"
)

// DefaultMaxConfigFileSize is the largest config file LoadConfig reads (10MB).
const DefaultMaxConfigFileSize int64 = 10 * 1024 * 1024

// FileName is the config file looked up in the working directory.
const FileName = ".tabsplit.yml"

// Config is the root configuration structure.
type Config struct {
	Extends []string `yaml:"extends,omitempty"`

	// HeaderRow is the 1-based header row of source files; 0 means no header.
	HeaderRow int `yaml:"header_row"`

	// Encoding of delimited text sources.
	Encoding string `yaml:"encoding"`

	// Extensions accepted when the source is a directory.
	Extensions []string `yaml:"extensions"`

	// Include filters directory entries by base name.
	Include string `yaml:"include,omitempty"`

	// Workers bounds concurrent file loading; 0 means one per CPU.
	Workers int `yaml:"workers"`

	OutputDir    string `yaml:"output_dir"`
	OutputFormat string `yaml:"output_format"`
	PageSize     int    `yaml:"page_size"`
	CSVBOM       bool   `yaml:"csv_bom"`
	CleanOutput  bool   `yaml:"clean_output"`

	Filter FilterCfg `yaml:"filter"`
	Match  MatchCfg  `yaml:"match"`
	Split  SplitCfg  `yaml:"split"`
}

// FilterCfg holds settings of the filter command.
type FilterCfg struct {
	Mode string `yaml:"mode"`
}

// MatchCfg holds settings of the match command.
type MatchCfg struct {
	UnmatchedLabel string `yaml:"unmatched_label"`
}

// SplitCfg holds settings of the split command.
type SplitCfg struct {
	GroupColumn string `yaml:"group_column"`
	Mode        string `yaml:"mode"`
	Rows        int    `yaml:"rows"`
}

// ReadOptions returns the source read options described by the config.
//
// Returns:
//   - tabular.ReadOptions: Header row and encoding; an unknown encoding falls back to auto
func (c *Config) ReadOptions() tabular.ReadOptions {
	opts := tabular.DefaultReadOptions()
	opts.HeaderRow = c.HeaderRow
	if enc, err := tabular.ParseEncoding(c.Encoding); err == nil {
		opts.Encoding = enc
	}
	return opts
}

// Format returns the configured output format, csv when unset or unknown.
func (c *Config) Format() tabular.Format {
	f, err := tabular.ParseFormat(c.OutputFormat)
	if err != nil {
		return tabular.FormatCSV
	}
	return f
}

// FilterMode returns the configured filter match mode, exact when unset or unknown.
func (c *Config) FilterMode() filtering.MatchMode {
	m, err := filtering.ParseMatchMode(c.Filter.Mode)
	if err != nil {
		return filtering.ModeExact
	}
	return m
}
