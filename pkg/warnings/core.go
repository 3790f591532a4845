// Package warnings routes user-facing warnings (not debug output) to a
// swappable writer so commands and tests can redirect them.
package warnings

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ajxudir/tabsplit/pkg/constants"
)

var (
	mu         sync.RWMutex
	warnWriter io.Writer = os.Stderr
)

// Warnf writes a formatted warning message to the configured warning writer.
//
// Parameters:
//   - format: Printf-style format string for the warning message
//   - args: Variadic arguments to format into the string
func Warnf(format string, args ...any) {
	mu.RLock()
	w := warnWriter
	mu.RUnlock()
	_, _ = fmt.Fprintf(w, format, args...)
}

// Warn writes a single warning line prefixed with the warning icon.
func Warn(msg string) {
	Warnf("%s  %s\n", constants.IconWarn, msg)
}

// WarningWriter returns the currently configured warning writer.
func WarningWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return warnWriter
}

// SetWarningWriter swaps the warning writer and returns a restore function.
//
// Parameters:
//   - w: The new io.Writer to use; if nil, defaults to os.Stderr
//
// Returns:
//   - func(): A restore function that sets the writer back to the previous value
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	if w == nil {
		warnWriter = os.Stderr
	} else {
		warnWriter = w
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}
