package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// newLogger builds the run logger: a text or JSON handler at the requested
// level, tagged with the run's session id. Unknown levels fall back to info.
// It does not set the global logger, allowing for isolated logger instances.
func newLogger(levelStr, formatStr string, outW io.Writer, session uuid.UUID) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(levelStr))); err != nil {
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler).With("session", session.String())
}
