// Package verbose provides the --verbose debug log for tabsplit, with
// documentation references for the topics users most often trip over.
package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable turns on verbose logging.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	return isEnabled()
}

// SetWriter sets the output writer for verbose messages.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
	}
}

func getWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

func isEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Printf prints a formatted verbose message with a [DEBUG] prefix if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints an informational verbose message if enabled.
func Info(msg string) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] %s\n", msg)
	}
}

// Infof is Printf under the name the command layer uses for exit-code traces.
func Infof(format string, args ...any) {
	Printf(format, args...)
}

// DocRef represents a documentation reference for a specific topic.
//
// It contains information to help users find relevant documentation
// when troubleshooting issues or configuring the tool.
//
// Fields:
//   - Topic: A human-readable name for the documentation topic
//   - DocPath: The relative path to the documentation file or section
//   - Hint: A brief description of what the documentation covers
type DocRef struct {
	Topic   string
	DocPath string
	Hint    string
}

// Common documentation references.
var docRefs = map[string]DocRef{
	"config": {
		Topic:   "Configuration",
		DocPath: "docs/configuration.md",
		Hint:    "See configuration guide for YAML schema and options",
	},
	"encoding": {
		Topic:   "Input Encodings",
		DocPath: "docs/configuration.md#encoding",
		Hint:    "Set encoding: gbk (or --encoding) when auto detection picks the wrong charset",
	},
	"filter": {
		Topic:   "Filtering",
		DocPath: "docs/cli.md#filter",
		Hint:    "The criteria file is read without a header; only its first column is used",
	},
	"mapping": {
		Topic:   "Mapping Files",
		DocPath: "docs/cli.md#match",
		Hint:    "Mapping files need two columns: pattern, then result",
	},
	"split": {
		Topic:   "Match and Split",
		DocPath: "docs/cli.md#split",
		Hint:    "Use --mode split with --rows to keep each output file under a row ceiling",
	},
	"cli": {
		Topic:   "CLI Reference",
		DocPath: "docs/cli.md",
		Hint:    "See all available commands and flags",
	},
}

// WithDocRef prints a verbose message with a documentation reference if enabled.
//
// Parameters:
//   - topic: The documentation topic key (e.g., "config", "encoding", "mapping")
//   - message: The main message to print
func WithDocRef(topic, message string) {
	if !isEnabled() {
		return
	}
	w := getWriter()
	ref, ok := docRefs[strings.ToLower(topic)]
	_, _ = fmt.Fprintf(w, "[DEBUG] %s\n", message)
	if ok {
		_, _ = fmt.Fprintf(w, "        📖 %s: %s\n", ref.Topic, ref.DocPath)
		_, _ = fmt.Fprintf(w, "        💡 %s\n", ref.Hint)
	}
}

// ConfigLoaded logs which config file was loaded if enabled.
//
// Parameters:
//   - path: The file path to the configuration file that was loaded
func ConfigLoaded(path string) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Config loaded: %s\n", path)
	}
}

// FileDecoded logs the encoding chosen for a delimited source file if enabled.
//
// Parameters:
//   - path: The source file path
//   - encoding: Name of the encoding that decoded the file
//   - detected: true when the encoding came from auto detection
func FileDecoded(path, encoding string, detected bool) {
	if !isEnabled() {
		return
	}
	how := "configured"
	if detected {
		how = "detected"
	}
	_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Decoded %s as %s (%s)\n", truncate(path, 80), encoding, how)
}

// FileSkipped logs when a source file is left out of a run if enabled.
//
// Parameters:
//   - name: The base name of the skipped file
//   - reason: Why the file was skipped
func FileSkipped(name, reason string) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] File '%s' skipped: %s\n", name, reason)
	}
}

// PatternMatched logs which mapping pattern claimed a subject if enabled.
//
// Parameters:
//   - subject: The value being matched
//   - pattern: The winning pattern, or empty when nothing matched
//   - label: The label assigned to the subject
func PatternMatched(subject, pattern, label string) {
	if !isEnabled() {
		return
	}
	if pattern == "" {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] '%s' → %s (no pattern)\n", truncate(subject, 60), label)
		return
	}
	_, _ = fmt.Fprintf(getWriter(), "[DEBUG] '%s' → %s (pattern '%s')\n", truncate(subject, 60), label, pattern)
}

// truncate shortens a string to the specified maximum length.
//
// Parameters:
//   - s: The string to truncate
//   - maxLen: The maximum length in runes for the returned string (must be at least 3)
//
// Returns:
//   - string: The original or truncated string with "..." suffix if truncated
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
