// Package logging configures structured logging for the tool.
//
// All diagnostics go through log/slog. Commands print their results to
// stdout; the logger writes to stderr so the two streams never mix.
package logging

import (
	"io"
	"log/slog"
)

// Common field names for structured logging
const (
	FieldError       = "error"
	FieldBackend     = "backend"
	FieldPath        = "path"
	FieldExpenseID   = "id"
	FieldDescription = "description"
	FieldAmountCents = "amount_cents"
	FieldCategory    = "category"
	FieldMonth       = "month"
	FieldCount       = "count"
	FieldFilename    = "filename"
	FieldExpenses    = "expenses"
	FieldLastID      = "last_id"
)

// New creates a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
