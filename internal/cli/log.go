package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// newLogger writes text records to w. The level comes from CHAPSUB_LOG_LEVEL
// (default warn, which keeps pipeline steps quiet); verbose forces debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := parseLevel(os.Getenv("CHAPSUB_LOG_LEVEL"))
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("run", uuid.NewString())
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
