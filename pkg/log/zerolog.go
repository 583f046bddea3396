package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

const (
	// ErrAttrKey is the attribute key used for error values.
	ErrAttrKey = "error"
	// StacktraceAttrKey is the attribute key used for extracted stack traces.
	StacktraceAttrKey = "stacktrace"
	// ComponentAttrKey identifies the component a named logger belongs to.
	ComponentAttrKey = "component"
)

var (
	mu          sync.RWMutex
	rootLogger  = newZerologLogger(os.Stderr)
	globalLevel = LevelInfo
)

// SetOutput redirects all loggers obtained from this package to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	rootLogger = newZerologLogger(w)
}

// SetLevel sets the minimum level emitted by loggers obtained from this package.
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()
	globalLevel = level
	zerolog.SetGlobalLevel(toZerologLevel(level))
}

// GetLogger returns the default logger.
func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return rootLogger
}

// GetLoggerWithName returns a logger tagged with a component name,
// e.g. "modelselection.gridsearch".
func GetLoggerWithName(name string) Logger {
	mu.RLock()
	defer mu.RUnlock()
	return rootLogger.With(ComponentAttrKey, name)
}

func newZerologLogger(w io.Writer) *zerologLogger {
	zl := zerolog.New(w).With().Timestamp().Logger()
	return &zerologLogger{zl: zl}
}

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	zl zerolog.Logger
}

func (z *zerologLogger) Debug(msg string, fields ...any) { z.emit(z.zl.Debug(), msg, fields) }
func (z *zerologLogger) Info(msg string, fields ...any)  { z.emit(z.zl.Info(), msg, fields) }
func (z *zerologLogger) Warn(msg string, fields ...any)  { z.emit(z.zl.Warn(), msg, fields) }
func (z *zerologLogger) Error(msg string, fields ...any) { z.emit(z.zl.Error(), msg, fields) }

// With returns a logger with the given fields attached to every record.
func (z *zerologLogger) With(fields ...any) Logger {
	ctx := z.zl.With()
	for k, v := range pairs(fields) {
		ctx = ctx.Interface(k, v)
	}
	return &zerologLogger{zl: ctx.Logger()}
}

// Enabled reports whether a record at the given level would be emitted.
func (z *zerologLogger) Enabled(_ context.Context, level Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return level >= globalLevel
}

func (z *zerologLogger) emit(event *zerolog.Event, msg string, fields []any) {
	if event == nil {
		return
	}
	// A bare error value may appear as the first field without a key.
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			event = attachError(event, err)
			fields = fields[1:]
		}
	}
	for k, v := range pairs(fields) {
		if err, ok := v.(error); ok && k == ErrAttrKey {
			event = attachError(event, err)
			continue
		}
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}

func attachError(event *zerolog.Event, err error) *zerolog.Event {
	event = event.AnErr(ErrAttrKey, err)
	if trace := extractStacktrace(err); trace != "" {
		event = event.Str(StacktraceAttrKey, trace)
	}
	return event
}

// extractStacktrace pulls the stack trace recorded by cockroachdb/errors.
func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}

// pairs converts an alternating key-value field list into a map-like sequence,
// stringifying non-string keys so malformed field lists never drop records.
func pairs(fields []any) map[string]any {
	kv := make(map[string]any, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", fields[i])
		}
		kv[key] = fields[i+1]
	}
	return kv
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
