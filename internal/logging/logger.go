// Package logging configures structured logging on log/slog.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

// Setup makes a text or JSON logger on w the slog default and returns it.
// Unknown formats get text; unknown levels get info.
func Setup(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// parseLevel accepts slog's level names, with offsets such as "error-4", and
// "warning".
func parseLevel(name string) slog.Level {
	if strings.EqualFold(name, "warning") {
		return slog.LevelWarn
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// FromContext is the default logger plus request_id for requests that went
// through chi's RequestID middleware.
func FromContext(ctx context.Context) *slog.Logger {
	id := middleware.GetReqID(ctx)
	if id == "" {
		return slog.Default()
	}
	return slog.Default().With("request_id", id)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
