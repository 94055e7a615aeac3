package log

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type entry struct {
	level   Level
	message string
}

type captureLogger struct {
	entries []entry
}

func (c *captureLogger) Log(level Level, format string, args ...any) {
	c.entries = append(c.entries, entry{level: level, message: fmt.Sprintf(format, args...)})
}

func TestWrappedLoggerLevels(t *testing.T) {
	var (
		capture = &captureLogger{}
		logger  = NewWrappedLogger(capture)
	)

	logger.Tracef("a%d", 1)
	logger.Debugf("b%d", 2)
	logger.Infof("c%d", 3)
	logger.Warnf("d%d", 4)
	logger.Errorf("e%d", 5)

	require.Equal(t, []entry{
		{level: LevelTrace, message: "a1"},
		{level: LevelDebug, message: "b2"},
		{level: LevelInfo, message: "c3"},
		{level: LevelWarning, message: "d4"},
		{level: LevelError, message: "e5"},
	}, capture.entries)
}

func TestWrappedLoggerPanicf(t *testing.T) {
	var (
		capture = &captureLogger{}
		logger  = NewPrefixedLogger(capture, "(pq)")
	)

	require.PanicsWithValue(t, "boom 42", func() { logger.Panicf("boom %d", 42) })
	require.Equal(t, []entry{{level: LevelPanic, message: "(pq) boom 42"}}, capture.entries)
}

func TestPrefixedLogger(t *testing.T) {
	var (
		capture = &captureLogger{}
		logger  = NewPrefixedLogger(capture, "(pq)")
	)

	logger.Infof("sorted %d items", 3)

	require.Equal(t, []entry{{level: LevelInfo, message: "(pq) sorted 3 items"}}, capture.entries)
}

func TestWrappedLoggerNil(t *testing.T) {
	logger := NewWrappedLogger(nil)
	require.NotPanics(t, func() { logger.Errorf("dropped") })

	var zero WrappedLogger
	require.NotPanics(t, func() { zero.Infof("dropped") })
}

func TestLoggerFunc(t *testing.T) {
	var got entry

	logger := NewWrappedLogger(LoggerFunc(func(level Level, format string, args ...any) {
		got = entry{level: level, message: fmt.Sprintf(format, args...)}
	}))

	logger.Warnf("x=%s", "y")

	require.Equal(t, entry{level: LevelWarning, message: "x=y"}, got)
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "TRAC", LevelTrace.String())
	require.Equal(t, "PNIC", LevelPanic.String())
	require.Equal(t, "UNKN", Level(42).String())
}
