package tabular

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "a.csv", []byte("name,code,name\nAlice,007,A\nBob,,B\n\nCarol,3\n"))

	tbl, err := ReadFile(context.Background(), path, DefaultReadOptions())
	require.NoError(t, err)

	assert.Equal(t, path, tbl.Source)
	assert.Equal(t, []string{"name", "code", "name.1"}, tbl.Columns)
	require.Equal(t, 3, tbl.Len())
	assert.Equal(t, "007", tbl.Value(0, "code"))
	assert.Equal(t, Row{"Carol", "3", ""}, tbl.Rows[2])
}

func TestReadFileKeepsBlankDataRows(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "gaps.csv", []byte("a,b\n1,2\n,\n3,4\n,,\n"))

	tbl, err := ReadFile(context.Background(), path, DefaultReadOptions())
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())
	assert.Equal(t, Row{"", ""}, tbl.Rows[1])
	assert.Equal(t, Row{"3", "4"}, tbl.Rows[2])
}

func TestTrimTrailingBlankRows(t *testing.T) {
	records := [][]string{{"1"}, {""}, {"2"}, {}, {"", ""}}
	assert.Equal(t, [][]string{{"1"}, {""}, {"2"}}, trimTrailingBlankRows(records))
	assert.Empty(t, trimTrailingBlankRows([][]string{{}, {""}}))
}

func TestReadFileHeaderRow(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "report.csv", []byte("Monthly report,,\nid,carrier,region\n1,CMCC,north\n"))

	tbl, err := ReadFile(context.Background(), path, ReadOptions{HeaderRow: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "carrier", "region"}, tbl.Columns)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "CMCC", tbl.Value(0, "carrier"))
}

func TestReadFileNoHeader(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "criteria.csv", []byte("Apple\nbanana,extra\n"))

	tbl, err := ReadFile(context.Background(), path, ReadOptions{HeaderRow: 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, tbl.Columns)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, "Apple", tbl.Value(0, "0"))
	assert.Equal(t, "", tbl.Value(0, "1"))
}

func TestReadFileWiderRowsThanHeader(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "wide.csv", []byte("a\n1,2\n"))

	tbl, err := ReadFile(context.Background(), path, DefaultReadOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "Unnamed: 1"}, tbl.Columns)
}

func TestReadFileTSVAndGBK(t *testing.T) {
	dir := t.TempDir()
	tsv := writeFixture(t, dir, "a.tsv", []byte("k\tv\nx\ty\n"))
	gbk := writeFixture(t, dir, "b.csv", gbkBytes(t, "运营商\n中国联通\n"))

	tbl, err := ReadFile(context.Background(), tsv, DefaultReadOptions())
	require.NoError(t, err)
	assert.Equal(t, "y", tbl.Value(0, "v"))

	tbl, err = ReadFile(context.Background(), gbk, DefaultReadOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"运营商"}, tbl.Columns)
	assert.Equal(t, "中国联通", tbl.Value(0, "运营商"))
}

func TestReadFileLimits(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "a.csv", []byte("h1,h2\n1,2\n3,4\n5,6\n"))

	tbl, err := ReadFile(context.Background(), path, ReadOptions{HeaderRow: 1, MaxRows: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())

	cols, err := ReadColumns(context.Background(), path, DefaultReadOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"h1", "h2"}, cols)
}

func TestReadFileUnsupported(t *testing.T) {
	dir := t.TempDir()
	xls := writeFixture(t, dir, "old.xls", []byte{0xD0, 0xCF, 0x11, 0xE0})
	pdf := writeFixture(t, dir, "doc.pdf", []byte("%PDF"))

	_, err := ReadFile(context.Background(), xls, DefaultReadOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "cannot read .xls")

	_, err = ReadFile(context.Background(), pdf, DefaultReadOptions())
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestReadFileErrors(t *testing.T) {
	_, err := ReadFile(context.Background(), "/nonexistent/file.csv", DefaultReadOptions())
	assert.Error(t, err)

	_, err = ReadFile(context.Background(), "x.csv", ReadOptions{HeaderRow: -1})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ReadFile(ctx, "x.csv", DefaultReadOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadFileXLSXRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := NewTable("号码", "运营商", "备注")
	src.AppendRow("13800000000", "中国移动", "")
	src.AppendRow("00123", "中国联通", "x")
	path := dir + "/out.xlsx"
	require.NoError(t, WriteFile(path, src, WriteOptions{Format: FormatXLSX}))

	tbl, err := ReadFile(context.Background(), path, DefaultReadOptions())
	require.NoError(t, err)
	assert.Equal(t, src.Columns, tbl.Columns)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "00123", tbl.Value(1, "号码"))
	assert.Equal(t, "中国移动", tbl.Value(0, "运营商"))
	assert.Equal(t, "", tbl.Value(0, "备注"))

	cols, err := ReadColumns(context.Background(), path, DefaultReadOptions())
	require.NoError(t, err)
	assert.Equal(t, src.Columns, cols)
}
