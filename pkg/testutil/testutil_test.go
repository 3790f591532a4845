package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ajxudir/tabsplit/pkg/config"
)

func TestConfigBuilder(t *testing.T) {
	cfg := NewConfig().
		WithOutputDir("out").
		WithOutputFormat("xlsx").
		WithPageSize(10).
		WithHeaderRow(0).
		WithCSVBOM(false).
		WithFilterMode("prefix").
		WithSplit("single", 5).
		Build()

	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "xlsx", cfg.OutputFormat)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 0, cfg.HeaderRow)
	assert.False(t, cfg.CSVBOM)
	assert.Equal(t, "prefix", cfg.Filter.Mode)
	assert.Equal(t, "single", cfg.Split.Mode)
	assert.Equal(t, 5, cfg.Split.Rows)
	assert.Equal(t, "unmatched", cfg.Match.UnmatchedLabel, "untouched keys keep defaults")
}

func TestConfigBuilderWriteFileRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := NewConfig().WithPageSize(42).WithCSVBOM(false).WriteFile(t, dir, config.FileName)

	loaded, err := config.LoadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.PageSize)
	assert.False(t, loaded.CSVBOM)
}

func TestWriteAndReadCSV(t *testing.T) {
	dir := t.TempDir()
	path := WriteCSV(t, dir, "a.csv", []string{"h1", "h2"}, []string{"x,y", "z"})

	assert.Equal(t, [][]string{{"h1", "h2"}, {"x,y", "z"}}, ReadCSV(t, path))

	bom := WriteFile(t, dir, "bom.csv", append([]byte{0xEF, 0xBB, 0xBF}, "c\n1\n"...))
	assert.Equal(t, [][]string{{"c"}, {"1"}}, ReadCSV(t, bom))
}

func TestWriteXLSX(t *testing.T) {
	dir := t.TempDir()
	path := WriteXLSX(t, dir, "a.xlsx", []string{"col"}, []string{"v1"}, []string{"v2"})

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"col"}, {"v1"}, {"v2"}}, rows)
}

func TestWriteFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := WriteFile(t, dir, filepath.Join("nested", "x.txt"), []byte("hi"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(data))
	assert.Equal(t, []string{"nested"}, ListDir(t, dir))
}

func TestNumberedRows(t *testing.T) {
	rows := NumberedRows(3, "a", "b")
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"id", "name", "key"}, rows[0])
	for i := 0; i < 3; i++ {
		assert.Equal(t, fmt.Sprint(i), rows[i+1][0])
	}
	assert.Equal(t, "a", rows[3][2])
	assert.Equal(t, "", NumberedRows(1)[1][2])
}

func TestCaptureStdout(t *testing.T) {
	out := CaptureStdout(t, func() { fmt.Println("hello") })
	assert.Equal(t, "hello\n", out)
}

func TestCaptureStderr(t *testing.T) {
	out := CaptureStderr(t, func() { fmt.Fprintln(os.Stderr, "oops") })
	assert.Equal(t, "oops\n", out)
}

func TestCaptureOutput(t *testing.T) {
	stdout, stderr := CaptureOutput(t, func() {
		fmt.Println("out")
		fmt.Fprintln(os.Stderr, "err")
	})
	assert.Equal(t, "out\n", stdout)
	assert.Equal(t, "err\n", stderr)
}
