package main

import (
	"io"
	"log/slog"
	"strings"
)

func newLogger(w io.Writer, getenv func(string) string) *slog.Logger {
	level := parseLogLevel(getenv("PATHVIZ_LOG_LEVEL"))
	format := strings.ToLower(strings.TrimSpace(getenv("PATHVIZ_LOG_FORMAT")))
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
