package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ajxudir/tabsplit/pkg/errors"
	"github.com/ajxudir/tabsplit/pkg/jobs"
)

var (
	splitSource             sourceFlags
	splitMappingFlag        string
	splitColumnFlag         string
	splitGroupColumnFlag    string
	splitUnmatchedLabelFlag string
	splitModeFlag           string
	splitRowsFlag           int
)

var splitCmd = &cobra.Command{
	Use:   "split <source> --mapping <file> --column <name>",
	Short: "Label rows by prefix mapping and write them per label",
	Long: `Tag every row of the data files in <source> with the mapping result of its
--column value (longest case-insensitive prefix wins) in a new --group-column.

--mode single writes all rows to match_and_split.<ext>; a read failure aborts
without output. --mode split writes <label>_match_and_split[_<n>].<ext> files of
at most --rows rows per label; unreadable files are reported and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	splitSource.register(splitCmd)
	splitCmd.Flags().StringVar(&splitMappingFlag, "mapping", "", "Mapping file: pattern in column one, result in column two, no header")
	splitCmd.Flags().StringVarP(&splitColumnFlag, "column", "k", "", "Column of the source files to match")
	splitCmd.Flags().StringVar(&splitGroupColumnFlag, "group-column", "", "Name of the added label column (config: split.group_column)")
	splitCmd.Flags().StringVar(&splitUnmatchedLabelFlag, "unmatched-label", "", "Label for rows without a match (config: match.unmatched_label)")
	splitCmd.Flags().StringVarP(&splitModeFlag, "mode", "m", "", "Output mode: single, split (config: split.mode)")
	splitCmd.Flags().IntVarP(&splitRowsFlag, "rows", "n", 0, "Rows per file in split mode (config: split.rows)")
}

func runSplit(cmd *cobra.Command, args []string) error {
	format, err := splitSource.outputFormat()
	if err != nil {
		return err
	}

	cfg, err := loadCommandConfig()
	if err != nil {
		return err
	}

	opts, err := splitSource.options(cmd, cfg, args[0])
	if err != nil {
		return err
	}

	modeName := cfg.Split.Mode
	if cmd.Flags().Changed("mode") {
		modeName = splitModeFlag
	}
	mode, err := jobs.ParseSplitMode(modeName)
	if err != nil {
		return errors.NewParameterError("mode", err.Error(), "use single or split")
	}

	job := &jobs.SplitJob{
		Options:        opts,
		MappingPath:    splitMappingFlag,
		Column:         splitColumnFlag,
		GroupColumn:    cfg.Split.GroupColumn,
		UnmatchedLabel: cfg.Match.UnmatchedLabel,
		Mode:           mode,
		SplitRows:      cfg.Split.Rows,
	}
	if cmd.Flags().Changed("group-column") {
		job.GroupColumn = splitGroupColumnFlag
	}
	if cmd.Flags().Changed("unmatched-label") {
		job.UnmatchedLabel = splitUnmatchedLabelFlag
	}
	if cmd.Flags().Changed("rows") {
		job.SplitRows = splitRowsFlag
	}

	result, err := job.Run(cmd.Context())
	return printRunResult(cmd, format, result, err)
}
