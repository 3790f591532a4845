package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ajxudir/tabsplit/pkg/errors"
	"github.com/ajxudir/tabsplit/pkg/filtering"
	"github.com/ajxudir/tabsplit/pkg/output"
	"github.com/ajxudir/tabsplit/pkg/tabular"
	"github.com/ajxudir/tabsplit/pkg/utils"
)

var (
	columnsHeaderRowFlag int
	columnsEncodingFlag  string
	columnsOutputFlag    string
	columnsIncludeFlag   string
	columnsExtFlag       string
)

var columnsCmd = &cobra.Command{
	Use:   "columns <file|dir>",
	Short: "List the column names of a data file",
	Long: `Read only the header of a data file and list its column names, e.g. to pick the --column of another command.

Given a directory, the first source file in name order is read, after the
--include and --ext selection the other commands apply.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runColumns,
}

func init() {
	columnsCmd.Flags().IntVar(&columnsHeaderRowFlag, "header-row", 1, "1-based header row, 0 for none (config: header_row)")
	columnsCmd.Flags().StringVar(&columnsEncodingFlag, "encoding", "", "Encoding of csv/txt/tsv files (config: encoding)")
	columnsCmd.Flags().StringVar(&columnsIncludeFlag, "include", "", "File name globs to consider in a directory, comma-separated, ! excludes (config: include)")
	columnsCmd.Flags().StringVar(&columnsExtFlag, "ext", "", "Source extensions, comma-separated (config: extensions)")
	columnsCmd.Flags().StringVarP(&columnsOutputFlag, "output", "o", "", "Output format: table, json, csv, xml (default: table)")
}

// runColumns prints the columns of args[0], or of the first source file when
// args[0] is a directory.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: The data file or directory
//
// Returns:
//   - error: Config, parameter or read failure
func runColumns(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(columnsOutputFlag)
	if err != nil {
		return errors.NewParameterError("output", err.Error(), "")
	}

	cfg, err := loadCommandConfig()
	if err != nil {
		return err
	}

	opts := cfg.ReadOptions()
	if cmd.Flags().Changed("header-row") {
		opts.HeaderRow = columnsHeaderRowFlag
	}
	if cmd.Flags().Changed("encoding") {
		enc, err := tabular.ParseEncoding(columnsEncodingFlag)
		if err != nil {
			return errors.NewParameterError("encoding", err.Error(), "")
		}
		opts.Encoding = enc
	}

	include := cfg.Include
	if cmd.Flags().Changed("include") {
		include = columnsIncludeFlag
	}
	extensions := tabular.NormalizeExtensions(cfg.Extensions)
	if cmd.Flags().Changed("ext") {
		extensions = tabular.NormalizeExtensions(utils.TrimAndSplit(columnsExtFlag, ","))
	}

	files, err := tabular.ListFiles(args[0], extensions)
	if err != nil {
		return err
	}
	files = filtering.SelectFiles(files, include)
	if len(files) == 0 {
		return errors.NewInputError(args[0], "no files to process",
			"check the path, --include patterns and the extensions setting")
	}

	columns, err := tabular.ReadColumns(cmd.Context(), files[0], opts)
	if err != nil {
		return err
	}

	return output.WriteColumnsResult(cmd.OutOrStdout(), format, &output.ColumnsResult{File: files[0], Columns: columns})
}
