// Package logger configures structured logging. The terminal belongs to the
// game, so logs go to a file unless stderr is asked for.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Stderr is the LOG_FILE value that sends logs to standard error.
const Stderr = "-"

// Options selects handler format, level and destination.
type Options struct {
	Environment string // "production" selects JSON output
	Level       slog.Level
	File        string // Path, or Stderr
}

// Setup builds the logger, installs it as the slog default and returns a
// function that closes the log file.
func Setup(opts Options) (*slog.Logger, func() error, error) {
	out, closeFn, err := open(opts.File)
	if err != nil {
		return nil, nil, err
	}

	logger := New(out, opts)
	slog.SetDefault(logger)
	return logger, closeFn, nil
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		Level: opts.Level,
	}

	var handler slog.Handler
	if opts.Environment == "production" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}

func open(path string) (io.Writer, func() error, error) {
	if path == "" || path == Stderr {
		return os.Stderr, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return f, f.Close, nil
}
