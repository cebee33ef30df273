package zerolog

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	logpkg "github.com/matklad/always-assert/log"
)

// Logger implements log.Logger on top of a zerolog.Logger.
type Logger struct {
	logger zerolog.Logger
}

// Compile-time assertion: *Logger implements logpkg.Logger.
var _ logpkg.Logger = (*Logger)(nil)

// New wraps an existing zerolog logger.
func New(logger zerolog.Logger) *Logger {
	return &Logger{logger: logger}
}

// NewConsole creates a logger with a human-readable console writer on
// stdout, suitable for CLIs and local development.
func NewConsole() *Logger {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}

	return &Logger{logger: zerolog.New(output).With().Timestamp().Logger()}
}

// NewWriter creates a JSON logger writing to w.
func NewWriter(w io.Writer) *Logger {
	return &Logger{logger: zerolog.New(w).With().Timestamp().Logger()}
}

// Nop creates a disabled logger.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

func (l *Logger) raw() zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}

	return l.logger
}

// Log implements log.Logger. It dispatches to the matching zerolog level.
func (l *Logger) Log(_ context.Context, level logpkg.Level, msg string, fields ...logpkg.Field) {
	logger := l.raw()
	event := logger.WithLevel(logLevelToZerolog(level))
	for _, f := range fields {
		event = event.Interface(f.Key, f.Value)
	}

	event.Msg(msg)
}

// With returns a child logger with additional structured fields.
//
//nolint:ireturn
func (l *Logger) With(fields ...logpkg.Field) logpkg.Logger {
	ctx := l.raw().With()
	for _, f := range fields {
		ctx = ctx.Interface(f.Key, f.Value)
	}

	return &Logger{logger: ctx.Logger()}
}

// Enabled reports whether the logger would emit a log at the given level.
func (l *Logger) Enabled(level logpkg.Level) bool {
	current := l.raw().GetLevel()
	if current == zerolog.Disabled {
		return false
	}

	return logLevelToZerolog(level) >= current
}

// Sync is a no-op beyond honoring context cancellation; zerolog writes
// synchronously.
func (l *Logger) Sync(ctx context.Context) error {
	return ctx.Err()
}

// Raw returns the underlying zerolog logger.
func (l *Logger) Raw() zerolog.Logger {
	return l.raw()
}

// logLevelToZerolog converts a log.Level to a zerolog.Level.
func logLevelToZerolog(level logpkg.Level) zerolog.Level {
	switch level {
	case logpkg.LevelDebug:
		return zerolog.DebugLevel
	case logpkg.LevelInfo:
		return zerolog.InfoLevel
	case logpkg.LevelWarn:
		return zerolog.WarnLevel
	case logpkg.LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
