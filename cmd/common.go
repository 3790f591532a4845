package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajxudir/tabsplit/pkg/config"
	"github.com/ajxudir/tabsplit/pkg/errors"
	"github.com/ajxudir/tabsplit/pkg/jobs"
	"github.com/ajxudir/tabsplit/pkg/output"
	"github.com/ajxudir/tabsplit/pkg/tabular"
	"github.com/ajxudir/tabsplit/pkg/utils"
)

// progressWriter receives progress lines when --progress is set.
var progressWriter io.Writer = os.Stderr

// sourceFlags are the flags shared by the data commands. A flag left unset
// keeps the configured value.
type sourceFlags struct {
	outputDir  string
	format     string
	headerRow  int
	encoding   string
	include    string
	extensions string
	workers    int
	clean      bool
	csvBOM     bool
	output     string
}

// register adds the shared flags to cmd.
func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "d", "", "Directory for the output files (config: output_dir)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output file format: csv, xlsx, json, sqlite (config: output_format)")
	cmd.Flags().IntVar(&f.headerRow, "header-row", 1, "1-based header row of the source files, 0 for none (config: header_row)")
	cmd.Flags().StringVar(&f.encoding, "encoding", "", "Encoding of csv/txt/tsv sources: auto, utf-8, gbk, gb18030, latin-1 (config: encoding)")
	cmd.Flags().StringVar(&f.include, "include", "", "File name globs to process in a directory, comma-separated, ! excludes (config: include)")
	cmd.Flags().StringVar(&f.extensions, "ext", "", "Source extensions, comma-separated (config: extensions)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Files loaded concurrently, 0 for one per CPU (config: workers)")
	cmd.Flags().BoolVar(&f.clean, "clean", false, "Remove existing files in the output directory first (config: clean_output)")
	cmd.Flags().BoolVar(&f.csvBOM, "csv-bom", true, "Write a UTF-8 byte order mark in csv output (config: csv_bom)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Summary format: table, json, csv, xml (default: table)")
}

// options merges cfg with the flags the user set into job options.
//
// Parameters:
//   - cmd: Command whose flags were parsed
//   - cfg: Loaded configuration
//   - source: Source file or directory argument
//
// Returns:
//   - jobs.Options: Options for the job
//   - error: Parameter error for an invalid --format or --encoding
func (f *sourceFlags) options(cmd *cobra.Command, cfg *config.Config, source string) (jobs.Options, error) {
	changed := cmd.Flags().Changed

	opts := jobs.Options{
		Source:     source,
		Include:    cfg.Include,
		Extensions: tabular.NormalizeExtensions(cfg.Extensions),
		Read:       cfg.ReadOptions(),
		Workers:    cfg.Workers,
		OutputDir:  cfg.OutputDir,
		Format:     cfg.Format(),
		CSVBOM:     cfg.CSVBOM,
		Clean:      cfg.CleanOutput,
		Logger:     logger,
		RunID:      runID,
	}
	if progressFlag {
		opts.Progress = progressWriter
	}

	if changed("output-dir") {
		opts.OutputDir = f.outputDir
	}
	if changed("format") {
		format, err := tabular.ParseFormat(f.format)
		if err != nil {
			return opts, errors.NewParameterError("format", err.Error(), "use csv, xlsx, json or sqlite")
		}
		opts.Format = format
	}
	if changed("header-row") {
		opts.Read.HeaderRow = f.headerRow
	}
	if changed("encoding") {
		enc, err := tabular.ParseEncoding(f.encoding)
		if err != nil {
			return opts, errors.NewParameterError("encoding", err.Error(), "")
		}
		opts.Read.Encoding = enc
	}
	if changed("include") {
		opts.Include = f.include
	}
	if changed("ext") {
		opts.Extensions = tabular.NormalizeExtensions(utils.TrimAndSplit(f.extensions, ","))
	}
	if changed("workers") {
		opts.Workers = f.workers
	}
	if changed("clean") {
		opts.Clean = f.clean
	}
	if changed("csv-bom") {
		opts.CSVBOM = f.csvBOM
	}
	return opts, nil
}

// outputFormat parses --output.
func (f *sourceFlags) outputFormat() (output.Format, error) {
	format, err := output.ParseFormat(f.output)
	if err != nil {
		return "", errors.NewParameterError("output", err.Error(), "use "+strings.Join(output.ValidFormats, ", "))
	}
	return format, nil
}

// loadCommandConfig loads the configuration for a data command.
func loadCommandConfig() (*config.Config, error) {
	return loadAndValidateConfig(configFlag, workingDir())
}

// printRunResult writes result to the command output, then passes err through.
//
// A nil result (the job failed before producing one) writes nothing.
func printRunResult(cmd *cobra.Command, format output.Format, result *output.RunResult, err error) error {
	if result != nil {
		if werr := output.WriteRunResult(cmd.OutOrStdout(), format, result); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}
