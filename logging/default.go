package logging

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
)

// DefaultLogger writes text records through log/slog.
// Loggers derived with WithFields share the level of their parent.
type DefaultLogger struct {
	logger *slog.Logger
	level  *slog.LevelVar
}

// NewDefaultLogger creates a logger writing to stderr at InfoLevel.
func NewDefaultLogger() *DefaultLogger {
	return NewDefaultLoggerTo(os.Stderr)
}

// NewDefaultLoggerTo creates a logger writing to w at InfoLevel.
func NewDefaultLoggerTo(w io.Writer) *DefaultLogger {
	lv := new(slog.LevelVar)
	lv.Set(slog.LevelInfo)
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv})
	return &DefaultLogger{logger: slog.New(h), level: lv}
}

func toSlogLevel(l Level) slog.Level {
	switch l {
	case DebugLevel:
		return slog.LevelDebug
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// attrs flattens fields into slog key/value pairs in key order.
func attrs(fields ...Fields) []any {
	var out []any
	for _, f := range fields {
		for _, k := range slices.Sorted(maps.Keys(f)) {
			out = append(out, slog.Any(k, f[k]))
		}
	}
	return out
}

func (d *DefaultLogger) log(level slog.Level, err error, msg string, fields ...Fields) {
	ctx := context.Background()
	if !d.logger.Enabled(ctx, level) {
		return
	}
	args := attrs(fields...)
	if err != nil {
		args = append([]any{slog.Any("error", err)}, args...)
	}
	d.logger.Log(ctx, level, msg, args...)
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	d.log(slog.LevelDebug, nil, msg, fields...)
}

func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	d.log(slog.LevelInfo, nil, msg, fields...)
}

func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	d.log(slog.LevelWarn, nil, msg, fields...)
}

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.log(slog.LevelError, err, msg, fields...)
}

func (d *DefaultLogger) WithFields(fields Fields) Logger {
	return &DefaultLogger{
		logger: d.logger.With(attrs(fields)...),
		level:  d.level,
	}
}

func (d *DefaultLogger) WithContext(ctx context.Context) Logger {
	if fields, ok := fieldsFromContext(ctx); ok {
		return d.WithFields(fields)
	}
	return d
}

func (d *DefaultLogger) SetLevel(level Level) {
	d.level.Set(toSlogLevel(level))
}
