// Package logging builds the structured logger used for diagnostics.
//
// Diagnostics never go to stdout, which carries only the count.
package logging

import (
	"io"
	"log/slog"
)

// NewLogger creates a text logger writing to w. With debug enabled the level
// is Debug; otherwise only warnings and errors are emitted.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler).With("component", "substring-count")
}
