// Package logging builds the leveled loggers shared by the CLI and the TUI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the named level. Unknown levels fall
// back to info.
func New(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		Prefix:          "todo",
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, "fatal")
}

// ParseLevel maps a config string onto a log level.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// OpenFile appends to the log file at path, creating parent directories as
// needed. The caller closes the returned file.
func OpenFile(path, level string) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: ensure directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open %s: %w", path, err)
	}
	return New(f, level), f, nil
}
