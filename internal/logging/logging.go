// Package logging sets up the teacher's zerolog conventions: a console
// writer in development, structured fields (.Str/.Int/.Err) on every
// event, and a per-run correlation id so every line from one batch
// invocation can be grepped together.
package logging

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New builds a run-scoped logger with a fresh correlation id attached to
// every line, the way internal/net/messages.go in the teacher generates a
// uuid per order — here it is one id per CLI invocation instead of per
// order, since a batch run has no per-order identity of its own to log
// against.
func New() zerolog.Logger {
	runID := uuid.New().String()
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).
		With().
		Timestamp().
		Str("run_id", runID).
		Logger()
}
