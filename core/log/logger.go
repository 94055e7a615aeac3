// Package log provides an interface to setup logging when using the priority queue, along with adapters for the
// standard library 'slog' package and 'zap'.
package log

// Logger interface which allows applications to provide custom logger implementations.
type Logger interface {
	Log(level Level, format string, args ...any)
}

// LoggerFunc allows a plain function to be used as a Logger.
type LoggerFunc func(level Level, format string, args ...any)

// Log calls the underlying function.
func (f LoggerFunc) Log(level Level, format string, args ...any) {
	f(level, format, args...)
}
