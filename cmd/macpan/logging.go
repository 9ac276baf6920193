package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-macpan/internal/games/macpan"
)

// logger writes to stderr until a Bubble Tea program takes the terminal.
var logger = newLogger(os.Stderr)

var logLevel = log.InfoLevel

func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "macpan",
	})
	l.SetLevel(logLevel)
	return l
}

// setupLogging applies --log-level to the command logger.
func setupLogging() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logLevel = level
	logger.SetLevel(level)
	return nil
}

// useLogFile redirects logging to ~/.macpan/macpan.log for the lifetime of
// an alt-screen session. The returned func restores stderr logging.
func useLogFile() func() {
	restore := func() {
		logger = newLogger(os.Stderr)
		macpan.SetLogger(logger)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		logger = newLogger(io.Discard)
		macpan.SetLogger(logger)
		return restore
	}
	dir := filepath.Join(home, ".macpan")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger = newLogger(io.Discard)
		macpan.SetLogger(logger)
		return restore
	}

	f, err := os.OpenFile(filepath.Join(dir, "macpan.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		logger = newLogger(io.Discard)
		macpan.SetLogger(logger)
		return restore
	}

	logger = newLogger(f)
	macpan.SetLogger(logger)
	return func() {
		restore()
		f.Close()
	}
}
