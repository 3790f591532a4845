package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ajxudir/tabsplit/pkg/jobs"
)

var (
	paginateSource       sourceFlags
	paginatePageSizeFlag int
)

var paginateCmd = &cobra.Command{
	Use:   "paginate <source>",
	Short: "Split data files into fixed-size pages",
	Long: `Concatenate every data file in <source> and write the rows as paged_part_<n>
files of at most --page-size rows each.`,
	Args: cobra.ExactArgs(1),
	RunE: runPaginate,
}

func init() {
	paginateSource.register(paginateCmd)
	paginateCmd.Flags().IntVarP(&paginatePageSizeFlag, "page-size", "n", 0, "Rows per output file (config: page_size)")
}

func runPaginate(cmd *cobra.Command, args []string) error {
	format, err := paginateSource.outputFormat()
	if err != nil {
		return err
	}

	cfg, err := loadCommandConfig()
	if err != nil {
		return err
	}

	opts, err := paginateSource.options(cmd, cfg, args[0])
	if err != nil {
		return err
	}

	pageSize := cfg.PageSize
	if cmd.Flags().Changed("page-size") {
		pageSize = paginatePageSizeFlag
	}

	job := &jobs.PaginateJob{Options: opts, PageSize: pageSize}
	result, err := job.Run(cmd.Context())
	return printRunResult(cmd, format, result, err)
}
