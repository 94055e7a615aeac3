package log

import "fmt"

// WrappedLogger is the internally used Logger struct that implements Logger and defines varous methods for different
// levels of logging, eg: trace, debug, info, etc.
type WrappedLogger struct {
	Logger

	prefix string
}

// NewWrappedLogger returns a WrappedLogger for a given inputted Logger. If logger is nil then assign the nopLogger.
func NewWrappedLogger(logger Logger) WrappedLogger {
	return NewPrefixedLogger(logger, "")
}

// NewPrefixedLogger returns a WrappedLogger which prepends the given prefix, followed by a space, to every message.
func NewPrefixedLogger(logger Logger, prefix string) WrappedLogger {
	if logger == nil {
		logger = nopLogger{}
	}

	return WrappedLogger{Logger: logger, prefix: prefix}
}

func (w *WrappedLogger) logf(level Level, format string, args ...any) {
	if w.Logger == nil {
		return
	}

	if w.prefix != "" {
		format = w.prefix + " " + format
	}

	w.Log(level, format, args...)
}

// Tracef logs the provided information at the trace level.
func (w *WrappedLogger) Tracef(format string, args ...any) {
	w.logf(LevelTrace, format, args...)
}

// Debugf logs the provided information at the debug level.
func (w *WrappedLogger) Debugf(format string, args ...any) {
	w.logf(LevelDebug, format, args...)
}

// Infof logs the provided information at the info level.
func (w *WrappedLogger) Infof(format string, args ...any) {
	w.logf(LevelInfo, format, args...)
}

// Warnf logs the provided information at the warn level.
func (w *WrappedLogger) Warnf(format string, args ...any) {
	w.logf(LevelWarning, format, args...)
}

// Errorf logs the provided information at the error level.
func (w *WrappedLogger) Errorf(format string, args ...any) {
	w.logf(LevelError, format, args...)
}

// Panicf logs the provided information at the panic level.
func (w *WrappedLogger) Panicf(format string, args ...any) {
	w.logf(LevelPanic, format, args...)
	panic(fmt.Sprintf(format, args...))
}
