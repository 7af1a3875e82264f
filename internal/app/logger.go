package app

import (
	"io"
	"log/slog"
)

// newLogger creates the App's slog.Logger instance. It does not touch the
// global default, so App instances stay isolated in tests.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
