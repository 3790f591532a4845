package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the terminal display width of a string.
//
// Wide characters such as CJK ideographs occupy two cells.
//
// Parameters:
//   - val: The string to measure
//
// Returns:
//   - int: The display width in character cells
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// ToWidth pads a string with spaces to a display width.
//
// Parameters:
//   - val: The string to pad
//   - width: The target display width in character cells (must be > 0 to have effect)
//
// Returns:
//   - string: The padded string, or val if already wide enough or width <= 0
func ToWidth(val string, width int) string {
	if width <= 0 {
		return val
	}
	current := DisplayWidth(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}

// TruncateWidth shortens a string to at most width display cells, ending with "...".
//
// Parameters:
//   - val: The string to shorten
//   - width: Maximum display width; values <= 3 disable truncation
//
// Returns:
//   - string: val unchanged when it fits, otherwise the shortened string
func TruncateWidth(val string, width int) string {
	if width <= 3 || DisplayWidth(val) <= width {
		return val
	}
	return runewidth.Truncate(val, width, "...")
}

// Max returns the largest of values, or 0 when none are given.
func Max(values ...int) int {
	m := 0
	for i, v := range values {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}
