package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/tabsplit/pkg/errors"
	"github.com/ajxudir/tabsplit/pkg/testutil"
	"github.com/ajxudir/tabsplit/pkg/verbose"
)

// executeWithExit runs Execute with a stubbed exitFunc and returns the exit
// code (-1 when exitFunc was not called) and stderr.
func executeWithExit(t *testing.T, args ...string) (int, string) {
	t.Helper()
	resetFlags(rootCmd)

	code := -1
	oldExit := exitFunc
	exitFunc = func(c int) { code = c }

	var stdout, stderr, logBuf bytes.Buffer
	oldLogWriter := logWriter
	logWriter = &logBuf
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--skip-build-checks"}, args...))
	defer func() {
		exitFunc = oldExit
		logWriter = oldLogWriter
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	}()

	Execute()
	return code, stderr.String()
}

func TestRootWithoutArgsShowsHelp(t *testing.T) {
	res := runCLI(t)
	require.NoError(t, res.err)
	for _, name := range []string{"columns", "filter", "paginate", "match", "split", "config", "version"} {
		assert.Contains(t, res.stdout, name)
	}
}

func TestSetupRunEnablesVerbose(t *testing.T) {
	res := runCLI(t, "--verbose", "version")
	require.NoError(t, res.err)
	assert.True(t, verbose.IsEnabled())
	assert.NotEmpty(t, runID)
	assert.Contains(t, res.log, "Starting command")
}

func TestSetupRunRejectsUnknownLogFormat(t *testing.T) {
	res := runCLI(t, "--log-format", "xml", "version")
	verr, ok := errors.IsValidationError(res.err)
	require.True(t, ok, "got %v", res.err)
	assert.Equal(t, "log-format", verr.Field)
}

func TestJSONRunLog(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteCSV(t, filepath.Join(dir, "src"), "a.csv", testutil.NumberedRows(3)...)

	res := runCLI(t, "--log-format", "json", "paginate", filepath.Join(dir, "src"), "-n", "2", "-d", filepath.Join(dir, "out"))
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.log), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		assert.Equal(t, runID, entry["run_id"])
	}
	assert.Contains(t, res.log, `"msg":"Starting pagination"`)
}

func TestQuietSuppressesInfoLog(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteCSV(t, filepath.Join(dir, "src"), "a.csv", testutil.NumberedRows(3)...)

	res := runCLI(t, "-q", "paginate", filepath.Join(dir, "src"), "-n", "2", "-d", filepath.Join(dir, "out"))
	require.NoError(t, res.err)
	assert.Empty(t, res.log)
}

func TestExecuteExitCodes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	testutil.WriteCSV(t, src, "a.csv", []string{"id", "code"}, []string{"1", "ab"})
	mapping := testutil.WriteCSV(t, dir, "mapping.csv", []string{"ab", "A"})

	t.Run("success does not exit", func(t *testing.T) {
		code, _ := executeWithExit(t, "paginate", src, "-n", "5", "-d", filepath.Join(dir, "out1"))
		assert.Equal(t, -1, code)
	})

	t.Run("unknown command is a failure", func(t *testing.T) {
		code, stderr := executeWithExit(t, "nonexistent-subcommand-xyz")
		assert.Equal(t, errors.ExitFailure, code)
		assert.Contains(t, stderr, "unknown command")
	})

	t.Run("invalid parameter is a config error", func(t *testing.T) {
		code, stderr := executeWithExit(t, "paginate", src, "-n", "0", "-d", filepath.Join(dir, "out2"))
		assert.Equal(t, errors.ExitConfigError, code)
		assert.Contains(t, stderr, "page-size")
	})

	t.Run("unreadable file in split mode is a partial failure", func(t *testing.T) {
		testutil.WriteFile(t, src, "broken.xlsx", []byte("not a workbook"))
		code, stderr := executeWithExit(t, "split", src, "--mapping", mapping, "-k", "code", "-n", "10", "-d", filepath.Join(dir, "out3"))
		assert.Equal(t, errors.ExitPartialFailure, code)
		assert.Contains(t, stderr, "Partial Success")
	})
}
