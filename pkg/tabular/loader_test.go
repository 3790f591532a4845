package tabular

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAllPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 12; i++ {
		paths = append(paths, writeFixture(t, dir, fmt.Sprintf("f%02d.csv", i), []byte(fmt.Sprintf("n\n%d\n", i))))
	}

	results, err := LoadAll(context.Background(), paths, DefaultReadOptions(), 3)
	require.NoError(t, err)
	require.Len(t, results, len(paths))
	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, paths[i], r.Path)
		assert.Equal(t, fmt.Sprint(i), r.Table.Value(0, "n"))
	}
}

func TestLoadAllKeepsPerFileErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeFixture(t, dir, "good.csv", []byte("n\n1\n"))
	bad := filepath.Join(dir, "missing.csv")
	xls := writeFixture(t, dir, "old.xls", []byte("x"))

	results, err := LoadAll(context.Background(), []string{good, bad, xls}, DefaultReadOptions(), 0)
	require.NoError(t, err)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.ErrorIs(t, results[2].Err, ErrUnsupportedFormat)
}

func TestLoadAllCancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "a.csv", []byte("n\n1\n"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := LoadAll(ctx, []string{path, path}, DefaultReadOptions(), 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, 2)
	assert.Equal(t, path, results[1].Path)
}
