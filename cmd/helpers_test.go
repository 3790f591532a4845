package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajxudir/tabsplit/pkg/runlog"
	"github.com/ajxudir/tabsplit/pkg/verbose"
)

// resetFlags restores every flag of c and its subcommands to its default so
// values set by one test do not leak into the next.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// cliResult is what one CLI invocation produced.
type cliResult struct {
	stdout string
	stderr string
	log    string
	err    error
}

// runCLI executes the root command with args and captures its output and run log.
func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr, logBuf bytes.Buffer
	oldLogWriter := logWriter
	logWriter = &logBuf
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--skip-build-checks"}, args...))
	t.Cleanup(func() {
		logWriter = oldLogWriter
		logger = runlog.Nop()
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		verbose.Disable()
		resetFlags(rootCmd)
	})

	err := ExecuteTest()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), log: logBuf.String(), err: err}
}
