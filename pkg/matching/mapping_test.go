package matching

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/tabsplit/pkg/tabular"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewMappingTable(t *testing.T) {
	m := NewMappingTable([]Pair{
		{" 中国移动 ", "移动"},
		{"中国联通", ""},
		{"", "x"},
		{"中国电信", "电信"},
		{"中国移动", "移动2"},
	})

	require.Equal(t, 2, m.Len())
	assert.Equal(t, Pair{Pattern: "中国移动", Result: "移动2"}, m.Pairs[0])
	assert.Equal(t, Pair{Pattern: "中国电信", Result: "电信"}, m.Pairs[1])

	var nilMapping *MappingTable
	assert.Equal(t, 0, nilMapping.Len())
}

func TestLoadMapping(t *testing.T) {
	path := writeFile(t, "b.csv", "CMCC,Mobile,extra\nCU,Unicom\n,orphan\nCT, Telecom \n")

	m, err := LoadMapping(context.Background(), path, tabular.DefaultReadOptions())
	require.NoError(t, err)
	assert.Equal(t, []Pair{
		{Pattern: "CMCC", Result: "Mobile"},
		{Pattern: "CU", Result: "Unicom"},
		{Pattern: "CT", Result: "Telecom"},
	}, m.Pairs)
}

func TestLoadMappingErrors(t *testing.T) {
	oneColumn := writeFile(t, "one.csv", "a\nb\n")
	_, err := LoadMapping(context.Background(), oneColumn, tabular.DefaultReadOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooFewColumns))

	emptyPairs := writeFile(t, "empty.csv", "a,\n,b\n")
	_, err = LoadMapping(context.Background(), emptyPairs, tabular.DefaultReadOptions())
	assert.True(t, errors.Is(err, ErrEmptyMapping))

	_, err = LoadMapping(context.Background(), "/missing.csv", tabular.DefaultReadOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load mapping")
}
