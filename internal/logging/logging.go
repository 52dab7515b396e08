// Package logging writes structured logs to per-run files. Stdout belongs
// to the TUI, so nothing is ever logged there.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to a fresh per-run file under dir. The
// returned close function closes the file. If the directory cannot be
// created the logger discards output instead of failing the client.
func New(dir, level, format string) (*log.Logger, func() error, error) {
	if dir == "" {
		return Discard(), func() error { return nil }, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Discard(), func() error { return nil }, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, runID()+".log")
	file, err := os.Create(path)
	if err != nil {
		return Discard(), func() error { return nil }, fmt.Errorf("create log file: %w", err)
	}

	logger := newLogger(file, level, format)
	return logger, file.Close, nil
}

// Discard returns a logger that drops everything, for tests and for when
// file logging is unavailable.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

func newLogger(w io.Writer, level, format string) *log.Logger {
	logger := log.New(w)
	logger.SetReportTimestamp(true)

	if parsed, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}

	switch format {
	case "json":
		logger.SetFormatter(log.JSONFormatter)
	case "logfmt":
		logger.SetFormatter(log.LogfmtFormatter)
	default:
		logger.SetFormatter(log.TextFormatter)
	}

	return logger
}

func runID() string {
	return fmt.Sprintf("%s-%d", time.Now().UTC().Format("20060102-150405"), os.Getpid())
}
