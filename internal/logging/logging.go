// Package logging builds the leveled console loggers used across kaban.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix is printed before every log line.
const Prefix = "kaban"

// Options holds configuration for a logger.
type Options struct {
	Level           log.Level
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns the options used by the CLI.
func DefaultOptions() Options {
	return Options{
		Level:           log.WarnLevel,
		ReportTimestamp: false,
		Prefix:          Prefix,
	}
}

// New creates a text logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, Options{Level: log.FatalLevel})
}

// ParseLevel maps a config string to a level. Unknown values map to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// LogFile is the name of the log file written by long-running sessions.
const LogFile = "kaban.log"

// OpenFile creates a timestamped logger appending to dir/kaban.log.
// The returned closer closes the file.
func OpenFile(dir string, level log.Level) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(dir, LogFile)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := New(file, Options{Level: level, ReportTimestamp: true, Prefix: Prefix})
	return logger, file, nil
}
