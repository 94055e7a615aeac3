package log

import (
	"context"
	"fmt"
	"log/slog"
)

const (
	// slogLevelTrace sits below slog's debug level, slog has no builtin trace level.
	slogLevelTrace = slog.LevelDebug - 4

	// slogLevelPanic sits above slog's error level; the panic itself is raised by 'WrappedLogger.Panicf'.
	slogLevelPanic = slog.LevelError + 4
)

// SlogLogger is a Logger which forwards to a 'log/slog' logger.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger returns a Logger which writes to the given slog logger, or to 'slog.Default' when nil.
func NewSlogLogger(logger *slog.Logger) SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return SlogLogger{logger: logger}
}

// Log formats the message and writes it using the slog level matching the given level.
func (s SlogLogger) Log(level Level, format string, args ...any) {
	s.logger.Log(context.Background(), slogLevel(level), fmt.Sprintf(format, args...))
}

func slogLevel(level Level) slog.Level {
	switch level {
	case LevelTrace:
		return slogLevelTrace
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	}

	return slogLevelPanic
}
