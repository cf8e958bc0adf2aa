// logging.go - Diagnostic logger setup.

package main

import (
	"io"
	"log/slog"
	"os"
)

// initLogger installs a text logger on stderr as the slog default. Debug
// output includes per-event diagnostics from the driver.
func initLogger(debug bool) *slog.Logger {
	return installLogger(os.Stderr, debug)
}

func installLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
