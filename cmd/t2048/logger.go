package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// newLogger builds the process logger. Without a configured file, logs go
// to stderr for the line frontend and are dropped for the TUI, which owns
// the terminal. The returned func closes the log file, if any.
func newLogger(cfg config.LogConfig, frontend config.Frontend) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case cfg.File != "":
		f, err := openLogFile(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close at exit
			f.Close()
		}
	case frontend == config.FrontendTUI:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
	return logger, closeFn, nil
}

// openLogFile opens path for appending, expanding ~ and creating parent
// directories.
func openLogFile(path string) (*os.File, error) {
	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("log: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("log: cannot create directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("log: cannot open %s: %w", path, err)
	}
	return f, nil
}
