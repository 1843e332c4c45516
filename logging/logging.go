// Package logging defines the logger the library writes diagnostics to.
//
// The library never configures output on its own behalf. Applications either
// keep the slog-backed default, install their own implementation with
// SetGlobalLogger, or silence the library with a nil logger.
package logging

import (
	"context"
	"sync"
)

// Level represents log levels.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to a Level. Unknown names yield InfoLevel and false.
func ParseLevel(name string) (Level, bool) {
	switch name {
	case "debug", "DEBUG":
		return DebugLevel, true
	case "info", "INFO":
		return InfoLevel, true
	case "warn", "WARN", "warning":
		return WarnLevel, true
	case "error", "ERROR":
		return ErrorLevel, true
	default:
		return InfoLevel, false
	}
}

// Fields represents structured logging fields.
type Fields map[string]any

// Logger defines the interface that the library expects for logging.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)

	// WithFields returns a logger with preset fields.
	WithFields(fields Fields) Logger

	// WithContext returns a logger carrying fields stored in ctx by ContextWithFields.
	WithContext(ctx context.Context) Logger

	// SetLevel sets the minimum log level.
	SetLevel(level Level)
}

type fieldsKey struct{}

// ContextWithFields attaches fields to ctx for later retrieval by WithContext.
func ContextWithFields(ctx context.Context, fields Fields) context.Context {
	return context.WithValue(ctx, fieldsKey{}, fields)
}

func fieldsFromContext(ctx context.Context) (Fields, bool) {
	if ctx == nil {
		return nil, false
	}
	f, ok := ctx.Value(fieldsKey{}).(Fields)
	return f, ok
}

var (
	globalMu     sync.RWMutex
	globalLogger Logger = NewDefaultLogger()
)

// SetGlobalLogger sets the global logger instance. A nil logger disables logging.
func SetGlobalLogger(logger Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if logger == nil {
		globalLogger = NoOpLogger{}
		return
	}
	globalLogger = logger
}

// GetGlobalLogger returns the current global logger.
func GetGlobalLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

func Debug(msg string, fields ...Fields) {
	GetGlobalLogger().Debug(msg, fields...)
}

func Info(msg string, fields ...Fields) {
	GetGlobalLogger().Info(msg, fields...)
}

func Warn(msg string, fields ...Fields) {
	GetGlobalLogger().Warn(msg, fields...)
}

func Error(err error, msg string, fields ...Fields) {
	GetGlobalLogger().Error(err, msg, fields...)
}

func WithFields(fields Fields) Logger {
	return GetGlobalLogger().WithFields(fields)
}

func SetLevel(level Level) {
	GetGlobalLogger().SetLevel(level)
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

func (NoOpLogger) Debug(string, ...Fields)              {}
func (NoOpLogger) Info(string, ...Fields)               {}
func (NoOpLogger) Warn(string, ...Fields)               {}
func (NoOpLogger) Error(error, string, ...Fields)       {}
func (n NoOpLogger) WithFields(Fields) Logger           { return n }
func (n NoOpLogger) WithContext(context.Context) Logger { return n }
func (NoOpLogger) SetLevel(Level)                       {}
