package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// New creates a preconfigured slog.Logger writing JSON to stderr.
// Stdout is reserved for the report itself.
func New() *slog.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a JSON logger tagged with a fresh run identifier.
func NewWithWriter(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With(slog.String("run_id", uuid.NewString()))
}
