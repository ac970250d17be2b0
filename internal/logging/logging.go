// Package logging configures the structured logger of the application
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/breathe/internal/osutil"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 30
)

// Options controls where and how much is logged.
type Options struct {
	// Path is the log file. Nothing is logged when it is empty.
	Path  string
	Debug bool
}

// New returns a JSON logger writing to a rotating log file, and a closer
// that flushes it.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	if opts.Path == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), nopCloser{}, nil
	}

	err := os.MkdirAll(filepath.Dir(opts.Path), osutil.DirPermission)
	if err != nil {
		return nil, nil, err
	}

	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	return slog.New(newHandler(w, opts.Debug)), w, nil
}

func newHandler(w io.Writer, debug bool) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
