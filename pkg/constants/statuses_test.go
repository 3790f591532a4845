package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestStatusIcon tests the icon lookup for every status.
func TestStatusIcon(t *testing.T) {
	assert.Equal(t, IconSuccess, StatusIcon(StatusProcessed))
	assert.Equal(t, IconSuccess, StatusIcon(StatusWritten))
	assert.Equal(t, IconSkipped, StatusIcon(StatusSkipped))
	assert.Equal(t, IconError, StatusIcon(StatusFailed))
	assert.Empty(t, StatusIcon("Unknown"))
}

// TestOutputStemsDistinct guards against two commands writing the same file names.
func TestOutputStemsDistinct(t *testing.T) {
	stems := []string{FilteredPrefix, PagedPrefix, MatchedResultsName, UnmatchedValuesName, SplitSuffix}
	seen := map[string]bool{}
	for _, s := range stems {
		assert.False(t, seen[s], s)
		seen[s] = true
	}
}
