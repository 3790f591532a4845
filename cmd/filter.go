package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ajxudir/tabsplit/pkg/errors"
	"github.com/ajxudir/tabsplit/pkg/filtering"
	"github.com/ajxudir/tabsplit/pkg/jobs"
)

var (
	filterSource       sourceFlags
	filterCriteriaFlag string
	filterColumnFlag   string
	filterModeFlag     string
	filterPageSizeFlag int
)

var filterCmd = &cobra.Command{
	Use:   "filter <source> --criteria <file> --column <name>",
	Short: "Keep rows whose column matches a criteria list",
	Long: `Read every data file in <source>, keep the rows whose --column value matches
one of the values in the first column of the criteria file, and write the
kept rows as filtered_part_<n> files of at most --page-size rows.

Matching is case-insensitive. --mode selects exact, contains, prefix or suffix.
Files without the column are skipped with a warning.`,
	Args: cobra.ExactArgs(1),
	RunE: runFilter,
}

func init() {
	filterSource.register(filterCmd)
	filterCmd.Flags().StringVarP(&filterCriteriaFlag, "criteria", "b", "", "Criteria file; the first column is read, without a header")
	filterCmd.Flags().StringVarP(&filterColumnFlag, "column", "k", "", "Column of the source files to filter on")
	filterCmd.Flags().StringVarP(&filterModeFlag, "mode", "m", "", "Match mode: exact, contains, prefix, suffix (config: filter.mode)")
	filterCmd.Flags().IntVarP(&filterPageSizeFlag, "page-size", "n", 0, "Rows per output file (config: page_size)")
}

// runFilter executes the filter command.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: The source file or directory
//
// Returns:
//   - error: Validation, read or write failure
func runFilter(cmd *cobra.Command, args []string) error {
	format, err := filterSource.outputFormat()
	if err != nil {
		return err
	}

	cfg, err := loadCommandConfig()
	if err != nil {
		return err
	}

	opts, err := filterSource.options(cmd, cfg, args[0])
	if err != nil {
		return err
	}

	mode := cfg.FilterMode()
	if cmd.Flags().Changed("mode") {
		if mode, err = filtering.ParseMatchMode(filterModeFlag); err != nil {
			return errors.NewParameterError("mode", err.Error(), "")
		}
	}
	pageSize := cfg.PageSize
	if cmd.Flags().Changed("page-size") {
		pageSize = filterPageSizeFlag
	}

	job := &jobs.FilterJob{
		Options:      opts,
		CriteriaPath: filterCriteriaFlag,
		Column:       filterColumnFlag,
		Mode:         mode,
		PageSize:     pageSize,
	}
	result, err := job.Run(cmd.Context())
	return printRunResult(cmd, format, result, err)
}
