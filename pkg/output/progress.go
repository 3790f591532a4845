package output

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ajxudir/tabsplit/pkg/utils"
)

// Progress prints a single self-overwriting "message: n/total (p%) item" line.
//
// It is safe for concurrent use. A disabled Progress prints nothing.
type Progress struct {
	mu        sync.Mutex
	writer    io.Writer
	total     int
	current   int
	message   string
	enabled   bool
	lastWidth int
}

// NewProgress creates an enabled progress line.
//
// Parameters:
//   - writer: Destination, usually stderr
//   - total: Number of steps
//   - message: Prefix such as "Filtering files"
func NewProgress(writer io.Writer, total int, message string) *Progress {
	return &Progress{writer: writer, total: total, message: message, enabled: true}
}

// SetEnabled turns output on or off.
func (p *Progress) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
}

// Increment advances by one step and shows item as the current item.
func (p *Progress) Increment(item string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current++
	p.render(item)
}

// Done completes the line and moves to the next one.
func (p *Progress) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled || p.total <= 0 {
		return
	}
	p.current = p.total
	p.render("")
	_, _ = fmt.Fprintln(p.writer)
}

// Clear erases the current line.
func (p *Progress) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.enabled && p.lastWidth > 0 {
		_, _ = fmt.Fprintf(p.writer, "\r%s\r", strings.Repeat(" ", p.lastWidth))
		p.lastWidth = 0
	}
}

// render must be called with p.mu held.
func (p *Progress) render(item string) {
	if !p.enabled || p.total <= 0 {
		return
	}

	percentage := float64(p.current) / float64(p.total) * 100
	line := fmt.Sprintf("%s: %d/%d (%.0f%%)", p.message, p.current, p.total, percentage)
	if item != "" {
		line += " " + utils.TruncateWidth(item, 40)
	}

	width := utils.DisplayWidth(line)
	padded := utils.ToWidth(line, p.lastWidth)
	p.lastWidth = width
	_, _ = fmt.Fprint(p.writer, "\r"+padded)
}
