// Package log provides structured logging for the grid-search pipeline.
//
// It defines a minimal, slog-compatible Logger interface backed by zerolog,
// with named component loggers and standard attribute keys for dataset
// shapes, hyperparameters, and scores. Errors carrying cockroachdb/errors
// stack traces are logged with a stacktrace attribute.
package log

import (
	"context"
)

// Logger defines a structured logging interface with slog-style
// alternating key-value fields.
//
// Implementations must treat an error value appearing in the field list
// specially, attaching its message under the "error" key and, when the
// error carries a stack trace, the trace under "stacktrace".
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, value-compatible with slog.Level.
type Level int

// Standard logging levels.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
