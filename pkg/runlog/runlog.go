// Package runlog builds the job progress log shared by every tabsplit routine.
//
// The log is a zap logger whose output goes to a configurable sink: an
// io.Writer (stderr for the CLI) or a line callback a front end can use to
// show progress. Every logger carries the run_id of the job it belongs to.
package runlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format selects the encoder used for log lines.
type Format string

const (
	// FormatConsole writes "time  level  message  {fields}" lines.
	FormatConsole Format = "console"
	// FormatJSON writes one JSON object per line.
	FormatJSON Format = "json"
)

// ParseFormat converts a --log-format value into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatConsole:
		return FormatConsole, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown log format %q (valid: console, json)", s)
	}
}

// Options configures a run logger.
type Options struct {
	// Writer receives encoded log lines. Defaults to os.Stderr.
	Writer io.Writer

	// Sink, when set, receives every log line without its trailing newline
	// and takes precedence over Writer.
	Sink func(line string)

	// Format selects the encoder. Defaults to FormatConsole.
	Format Format

	// Debug lowers the level from info to debug.
	Debug bool

	// Quiet raises the level to warn.
	Quiet bool

	// RunID is attached to every entry. A new UUID is generated when empty.
	RunID string
}

// New builds a zap logger from opts.
//
// Parameters:
//   - opts: Sink, format and level settings
//
// Returns:
//   - *zap.Logger: Logger tagged with run_id
func New(opts Options) *zap.Logger {
	var out io.Writer = os.Stderr
	if opts.Writer != nil {
		out = opts.Writer
	}
	if opts.Sink != nil {
		out = &lineWriter{sink: opts.Sink}
	}

	level := zapcore.InfoLevel
	switch {
	case opts.Quiet:
		level = zapcore.WarnLevel
	case opts.Debug:
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var enc zapcore.Encoder
	if opts.Format == FormatJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	runID := opts.RunID
	if runID == "" {
		runID = NewRunID()
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(out), level)
	return zap.New(core).With(zap.String("run_id", runID))
}

// NewRunID returns a fresh identifier for one job run.
func NewRunID() string {
	return uuid.NewString()
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// lineWriter adapts a line callback to io.Writer. Partial writes are
// buffered until a newline arrives.
type lineWriter struct {
	mu   sync.Mutex
	sink func(string)
	buf  []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		idx := strings.IndexByte(string(w.buf), '\n')
		if idx < 0 {
			break
		}
		line := string(w.buf[:idx])
		w.buf = w.buf[idx+1:]
		w.sink(line)
	}
	return len(p), nil
}
