// Package cmd implements the command-line interface for tabsplit.
// It provides commands to filter, paginate, match and split tabular data
// files (csv, tsv, txt, xlsx).
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajxudir/tabsplit/pkg/errors"
	"github.com/ajxudir/tabsplit/pkg/runlog"
	"github.com/ajxudir/tabsplit/pkg/verbose"
	"github.com/ajxudir/tabsplit/pkg/warnings"
)

var exitFunc = os.Exit
var verboseFlag bool
var versionFlag bool
var quietFlag bool
var progressFlag bool
var skipBuildChecksFlag bool
var configFlag string
var logFormatFlag string

var (
	// logWriter receives the run log.
	logWriter io.Writer = os.Stderr
	// logger is built in PersistentPreRunE for the command being run.
	logger = runlog.Nop()
	// runID identifies the current invocation in the log and the result.
	runID string
)

var rootCmd = &cobra.Command{
	Use:   "tabsplit",
	Short: "Filter, paginate, match and split tabular data files",
	Long: `Process csv, tsv, txt and xlsx files: keep rows matching a criteria file,
split large tables into fixed-size pages, label rows by longest-prefix mapping
and write one file set per label.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupRun,
	Run: func(cmd *cobra.Command, args []string) {
		if versionFlag {
			printVersionOutput(cmd.OutOrStdout())
			return
		}
		_ = cmd.Help()
	},
}

// setupRun enables verbose output and builds the run logger.
//
// Parameters:
//   - cmd: Command being executed
//   - args: Command arguments (unused)
//
// Returns:
//   - error: Parameter error for an unknown --log-format
func setupRun(cmd *cobra.Command, args []string) error {
	if verboseFlag {
		verbose.Enable()
	}

	format, err := runlog.ParseFormat(logFormatFlag)
	if err != nil {
		return errors.NewParameterError("log-format", err.Error(), "use console or json")
	}

	warnings.SetWarningWriter(cmd.ErrOrStderr())

	runID = runlog.NewRunID()
	logger = runlog.New(runlog.Options{
		Writer: logWriter,
		Format: format,
		Debug:  verboseFlag,
		Quiet:  quietFlag,
		RunID:  runID,
	})
	logger.Debug("Starting command", zap.String("command", cmd.CommandPath()))

	// Show build warnings (arch mismatch, dev build) at the top of every command
	if !skipBuildChecksFlag && !quietFlag {
		if msg := GetBuildWarnings(); msg != "" {
			fmt.Fprint(cmd.ErrOrStderr(), msg)
			fmt.Fprintln(cmd.ErrOrStderr())
		}
	}
	return nil
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success
//   - 1: Partial failure (some source files could not be read)
//   - 2: Complete failure
//   - 3: Configuration or validation error
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_ = logger.Sync()
		errors.PrintErrorWithHints(rootCmd.ErrOrStderr(), []error{err}, verboseFlag)

		code := errors.GetExitCode(err)
		if partialErr, ok := errors.IsPartialSuccess(err); ok {
			verbose.Infof("Exit code %d: partial success - %d succeeded, %d failed", code, partialErr.Succeeded, partialErr.Failed)
		} else {
			verbose.Infof("Exit code %d: %v", code, err)
		}

		stop()
		exitFunc(code)
	}
	_ = logger.Sync()
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Only log warnings and errors")
	rootCmd.PersistentFlags().BoolVar(&progressFlag, "progress", false, "Show a progress line on stderr")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Config file path (default: .tabsplit.yml in the current directory)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "console", "Run log format: console, json")
	rootCmd.PersistentFlags().BoolVar(&skipBuildChecksFlag, "skip-build-checks", false, "Skip build validation warnings (dev build, arch mismatch)")

	// Add -v/--version as a LOCAL flag (not persistent) so it only works on root command
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	// Commands ordered logically: info → config → inspect → process
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(columnsCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(paginateCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(splitCmd)
}

// printVersionOutput prints version, build, and runtime information.
func printVersionOutput(w io.Writer) {
	buildOS, buildArch := getBuildTarget()
	fmt.Fprintf(w, "  Build:   %s/%s\n", buildOS, buildArch)

	// Show runtime only if different
	if buildOS != runtime.GOOS || buildArch != runtime.GOARCH {
		fmt.Fprintf(w, "  Runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}

	fmt.Fprintf(w, "  Go:      %s\n", runtime.Version())
	if BuildTime != "" {
		fmt.Fprintf(w, "  Date:    %s\n", BuildTime)
	}
	fmt.Fprintln(w)
	if GitCommit != "" {
		fmt.Fprintf(w, "  Git:     %s\n", GitCommit)
	}
	fmt.Fprintf(w, "  Version: %s (%s)\n", GetVersion(), ReleaseChannel())
}
