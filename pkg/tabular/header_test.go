package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		name  string
		raw   []string
		width int
		want  []string
	}{
		{"unique", []string{"a", "b"}, 2, []string{"a", "b"}},
		{"empty names", []string{"", "b", ""}, 3, []string{"Unnamed: 0", "b", "Unnamed: 2"}},
		{"duplicates", []string{"a", "a", "a"}, 3, []string{"a", "a.1", "a.2"}},
		{"suffix already taken", []string{"a", "a.1", "a"}, 3, []string{"a", "a.1", "a.2"}},
		{"duplicate of generated", []string{"a", "a", "a.1"}, 3, []string{"a", "a.1", "a.1.1"}},
		{"wider than header", []string{"a"}, 3, []string{"a", "Unnamed: 1", "Unnamed: 2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeHeader(tt.raw, tt.width))
		})
	}
}

func TestPositionalHeader(t *testing.T) {
	assert.Equal(t, []string{"0", "1", "2"}, positionalHeader(3))
	assert.Empty(t, positionalHeader(0))
}
