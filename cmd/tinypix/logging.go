package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tinypix/internal/config"
)

// newLogger builds the run logger. The terminal is owned by the renderer
// while a scene runs, so logs go to a file or nowhere.
func newLogger(cfg config.LogConfig) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	if cfg.File == "" {
		logger := log.New(io.Discard)
		logger.SetLevel(level)
		return logger, func() {}, nil
	}

	path, err := config.ExpandHome(cfg.File)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tinypix",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}
