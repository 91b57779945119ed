package logging

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// New builds the process logger. "text" uses charmbracelet/log for readable
// terminal output; anything else produces JSON lines.
func New(w io.Writer, format string, level slog.Level) *slog.Logger {
	if format == "text" {
		handler := log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			Level:           log.Level(level),
		})
		return slog.New(handler)
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
