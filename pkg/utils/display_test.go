package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty string", "", 0},
		{"ascii string", "hello", 5},
		{"cjk chars", "中国移动", 8},
		{"mixed", "abc北京", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayWidth(tt.input))
		})
	}
}

func TestToWidth(t *testing.T) {
	tests := []struct {
		name     string
		val      string
		width    int
		expected string
	}{
		{"zero width", "test", 0, "test"},
		{"negative width", "test", -1, "test"},
		{"exact width", "test", 4, "test"},
		{"longer than width", "testing", 4, "testing"},
		{"needs padding", "test", 8, "test    "},
		{"cjk padding", "北京", 6, "北京  "},
		{"empty string", "", 4, "    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToWidth(tt.val, tt.width))
		})
	}
}

func TestTruncateWidth(t *testing.T) {
	assert.Equal(t, "short", TruncateWidth("short", 10))
	assert.Equal(t, "abcdefg...", TruncateWidth("abcdefghijklmnop", 10))
	assert.Equal(t, "anything", TruncateWidth("anything", 3))
	assert.LessOrEqual(t, DisplayWidth(TruncateWidth("中国移动通信集团有限公司", 10)), 10)
}

func TestMax(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		expected int
	}{
		{"empty", []int{}, 0},
		{"single value", []int{5}, 5},
		{"multiple values", []int{1, 5, 3}, 5},
		{"negative values", []int{-1, -5, -3}, -1},
		{"last is max", []int{1, 2, 10}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Max(tt.values...))
		})
	}
}
