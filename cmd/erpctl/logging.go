package main

import (
	"log/slog"
	"os"
)

// newLogger builds the CLI logger. Records go to stderr so stdout stays
// clean for command output and piping.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
