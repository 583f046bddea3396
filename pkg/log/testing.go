// Testing utilities for structured logging.
//
// TestLogger captures records in memory so tests can assert on what was
// logged without touching the process-wide logger.

package log

import (
	"bytes"
	"context"
	"fmt"
	"strings"
)

// TestLogger is a Logger implementation that records all messages in a buffer.
type TestLogger struct {
	buffer *bytes.Buffer
	level  Level
	fields map[string]any
}

// NewTestLogger creates a TestLogger capturing records at or above level,
// and returns the buffer holding the captured output.
func NewTestLogger(level Level) (*TestLogger, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	return &TestLogger{
		buffer: buffer,
		level:  level,
		fields: make(map[string]any),
	}, buffer
}

// Debug implements Logger.Debug.
func (t *TestLogger) Debug(msg string, fields ...any) {
	if t.level <= LevelDebug {
		t.write("DEBUG", msg, fields)
	}
}

// Info implements Logger.Info.
func (t *TestLogger) Info(msg string, fields ...any) {
	if t.level <= LevelInfo {
		t.write("INFO", msg, fields)
	}
}

// Warn implements Logger.Warn.
func (t *TestLogger) Warn(msg string, fields ...any) {
	if t.level <= LevelWarn {
		t.write("WARN", msg, fields)
	}
}

// Error implements Logger.Error.
func (t *TestLogger) Error(msg string, fields ...any) {
	if t.level <= LevelError {
		t.write("ERROR", msg, fields)
	}
}

// With implements Logger.With.
func (t *TestLogger) With(fields ...any) Logger {
	merged := make(map[string]any, len(t.fields)+len(fields)/2)
	for k, v := range t.fields {
		merged[k] = v
	}
	for k, v := range pairs(fields) {
		merged[k] = v
	}
	return &TestLogger{buffer: t.buffer, level: t.level, fields: merged}
}

// Enabled implements Logger.Enabled.
func (t *TestLogger) Enabled(_ context.Context, level Level) bool {
	return level >= t.level
}

// Contains reports whether any captured record contains the substring.
func (t *TestLogger) Contains(substr string) bool {
	return strings.Contains(t.buffer.String(), substr)
}

func (t *TestLogger) write(level, msg string, fields []any) {
	var b strings.Builder
	b.WriteString(level)
	b.WriteByte(' ')
	b.WriteString(msg)
	for k, v := range t.fields {
		fmt.Fprintf(&b, " %s=%v", k, v)
	}
	for k, v := range pairs(fields) {
		fmt.Fprintf(&b, " %s=%v", k, v)
	}
	b.WriteByte('\n')
	t.buffer.WriteString(b.String())
}
