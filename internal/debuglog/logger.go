// Package debuglog is a small append-only trace log used by the commands
// when --debug-log is set.
package debuglog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes timestamped lines to a file. The zero value and a nil
// *Logger are valid no-op loggers.
type Logger struct {
	mu sync.Mutex
	w  io.WriteCloser
}

// New creates a logger appending to path. An empty path returns a no-op
// logger. Parent directories are created as needed.
func New(path, tool string) (*Logger, error) {
	if path == "" {
		return &Logger{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := &Logger{w: f}
	l.Log("=== %s debug log started at %s ===", tool, time.Now().Format(time.RFC3339))

	return l, nil
}

// Enabled reports whether messages are written anywhere.
func (l *Logger) Enabled() bool {
	return l != nil && l.w != nil
}

// Log writes a timestamped message.
func (l *Logger) Log(format string, args ...interface{}) {
	if !l.Enabled() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(l.w, "[%s] %s\n", timestamp, msg)
}

// Close closes the log file. Safe to call on a no-op logger.
func (l *Logger) Close() error {
	if !l.Enabled() {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.w.Close()
	l.w = nil
	return err
}
