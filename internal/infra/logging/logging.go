package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New builds the process logger on stdout and installs it as the slog default.
// Unknown formats fall back to json, unknown levels to info.
func New(logFormat, logLevel string) *slog.Logger {
	logger := slog.New(NewHandler(os.Stdout, logFormat, logLevel))

	slog.SetDefault(logger)

	return logger
}

func NewHandler(w io.Writer, logFormat, logLevel string) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(logLevel),
	}

	if strings.EqualFold(logFormat, "text") {
		return slog.NewTextHandler(w, opts)
	}

	return slog.NewJSONHandler(w, opts)
}

func ParseLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
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
