package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is a Logger which forwards to a zap logger.
//
// NOTE: zap has no trace level, trace messages are written at the debug level.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger returns a Logger which writes to the given zap logger, or to a no-op zap logger when nil.
func NewZapLogger(logger *zap.Logger) ZapLogger {
	if logger == nil {
		logger = zap.NewNop()
	}

	return ZapLogger{logger: logger}
}

// Log formats the message and writes it using the zap level matching the given level.
func (z ZapLogger) Log(level Level, format string, args ...any) {
	lvl := zapLevel(level)
	if !z.logger.Core().Enabled(lvl) {
		return
	}

	if ce := z.logger.Check(lvl, fmt.Sprintf(format, args...)); ce != nil {
		ce.Write()
	}
}

// zapLevel maps a level onto zap, the panic level is mapped to the error level since 'WrappedLogger.Panicf' raises
// the panic itself.
func zapLevel(level Level) zapcore.Level {
	switch level {
	case LevelTrace, LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarning:
		return zapcore.WarnLevel
	}

	return zapcore.ErrorLevel
}
