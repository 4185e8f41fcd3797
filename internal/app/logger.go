package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aerissecure/worddeck/internal/config"
)

// NewLogger builds the process logger and installs it with slog.SetDefault,
// which also routes the standard log package (used by unioffice for document
// validation warnings) through it.
//
// Records go to cfg.File, appended, when set; otherwise to stderr, which keeps
// them apart from batch progress on stdout. The returned close func releases
// the file and is a no-op for stderr.
func NewLogger(cfg config.LogConfig) (*slog.Logger, func() error, error) {
	w, closeFn, err := logOutput(cfg.File)
	if err != nil {
		return nil, nil, err
	}
	logger := newLogger(w, cfg)
	slog.SetDefault(logger)
	return logger, closeFn, nil
}

func logOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stderr, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}

// newLogger uses text with source locations for reading on a console and
// plain JSON for collection.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
