package logger

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger for structured logging.
type Logger struct {
	zerolog.Logger
}

// New creates a new logger instance with JSON output.
func New() *Logger {
	zerolog.SetGlobalLevel(getLogLevel())
	l := zerolog.New(os.Stderr).With().Timestamp().Logger()
	return &Logger{l}
}

// getLogLevel reads LOG_LEVEL environment variable
func getLogLevel() zerolog.Level {
	logLevel := os.Getenv("LOG_LEVEL")
	switch strings.ToLower(logLevel) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithTag returns a new logger with a tag field attached. The HTTP
// layer uses this to stamp every log line within a request with that
// request's correlation id.
func (l *Logger) WithTag(tag string) *Logger {
	newLogger := l.Logger.With().Str("tag", tag).Logger()
	return &Logger{newLogger}
}

// withArgs attaches a flat key/value arg list (mirroring slog's
// variadic attribute convention) to an in-progress log event.
func withArgs(ev *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, args[i+1])
	}
	return ev
}

// Info logs an info level message with attributes
func (l *Logger) Info(msg string, args ...any) {
	withArgs(l.Logger.Info(), args).Msg(msg)
}

// Warn logs a warning level message with attributes
func (l *Logger) Warn(msg string, args ...any) {
	withArgs(l.Logger.Warn(), args).Msg(msg)
}

// Error logs an error level message with attributes
func (l *Logger) Error(msg string, args ...any) {
	withArgs(l.Logger.Error(), args).Msg(msg)
}

// Debug logs a debug level message with attributes
func (l *Logger) Debug(msg string, args ...any) {
	withArgs(l.Logger.Debug(), args).Msg(msg)
}

// loggerKey is the context key a request-scoped, tagged *Logger is
// stored under.
type loggerKey struct{}

// WithContext returns a context carrying l for later retrieval by
// FromContext.
func WithContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the logger stored in ctx by WithContext, or a
// fresh default logger if none was stored.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerKey{}).(*Logger); ok {
		return l
	}
	return New()
}
