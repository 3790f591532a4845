package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ajxudir/tabsplit/pkg/jobs"
)

var (
	matchSource             sourceFlags
	matchMappingFlag        string
	matchColumnFlag         string
	matchUnmatchedLabelFlag string
)

var matchCmd = &cobra.Command{
	Use:   "match <source> --mapping <file> --column <name>",
	Short: "Match distinct column values against a prefix mapping",
	Long: `Collect the distinct values of --column across the data files in <source> and
label each with the result of the longest mapping pattern that is a
case-insensitive prefix of it.

Writes matched_results (source value, matched result) and unmatched_values.
Files that cannot be read are reported and the run continues (exit code 1).`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	matchSource.register(matchCmd)
	matchCmd.Flags().StringVar(&matchMappingFlag, "mapping", "", "Mapping file: pattern in column one, result in column two, no header")
	matchCmd.Flags().StringVarP(&matchColumnFlag, "column", "k", "", "Column of the source files to match")
	matchCmd.Flags().StringVar(&matchUnmatchedLabelFlag, "unmatched-label", "", "Label for values without a match (config: match.unmatched_label)")
}

func runMatch(cmd *cobra.Command, args []string) error {
	format, err := matchSource.outputFormat()
	if err != nil {
		return err
	}

	cfg, err := loadCommandConfig()
	if err != nil {
		return err
	}

	opts, err := matchSource.options(cmd, cfg, args[0])
	if err != nil {
		return err
	}

	label := cfg.Match.UnmatchedLabel
	if cmd.Flags().Changed("unmatched-label") {
		label = matchUnmatchedLabelFlag
	}

	job := &jobs.MatchJob{
		Options:        opts,
		MappingPath:    matchMappingFlag,
		Column:         matchColumnFlag,
		UnmatchedLabel: label,
	}
	result, err := job.Run(cmd.Context())
	return printRunResult(cmd, format, result, err)
}
