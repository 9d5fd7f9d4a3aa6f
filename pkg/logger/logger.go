// Package logger provides the logging interface used across cookiesave.
// The console and file backends are logrus loggers. Nop and Mock
// implementations exist for callers that want silence or assertions.
package logger

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging surface every component depends on.
type Logger interface {
	// Info logs progress (e.g. "extracted 3 recognized cookies").
	Info(format string, args ...interface{})

	// Warning logs something that was tolerated (e.g. a malformed line).
	Warning(format string, args ...interface{})

	// Error logs a failure that ends the run.
	Error(format string, args ...interface{})

	// Close releases the backend. Safe to call more than once.
	Close() error
}

// LogrusLogger adapts a *logrus.Logger to Logger.
type LogrusLogger struct {
	entry  *logrus.Logger
	closer io.Closer
}

// NewLogrusLogger wraps an existing logrus logger.
func NewLogrusLogger(l *logrus.Logger) *LogrusLogger {
	return &LogrusLogger{entry: l}
}

// NewConsoleLogger returns a text-formatted logger on w. Only warnings and
// errors are shown unless verbose is set.
func NewConsoleLogger(w io.Writer, verbose bool) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	l.SetLevel(logrus.WarnLevel)
	if verbose {
		l.SetLevel(logrus.InfoLevel)
	}
	return NewLogrusLogger(l)
}

func (l *LogrusLogger) Info(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *LogrusLogger) Warning(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *LogrusLogger) Error(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// Close closes the underlying writer if the logger owns it.
func (l *LogrusLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	c := l.closer
	l.closer = nil
	return c.Close()
}

// NopLogger discards everything.
type NopLogger struct{}

func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (n *NopLogger) Info(format string, args ...interface{})    {}
func (n *NopLogger) Warning(format string, args ...interface{}) {}
func (n *NopLogger) Error(format string, args ...interface{})   {}
func (n *NopLogger) Close() error                               { return nil }

var (
	_ Logger = (*LogrusLogger)(nil)
	_ Logger = (*NopLogger)(nil)
)

// MockLogger records formatted messages for assertions in tests.
type MockLogger struct {
	InfoCalls    []string
	WarningCalls []string
	ErrorCalls   []string
	CloseCalled  bool
}

func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) Info(format string, args ...interface{}) {
	m.InfoCalls = append(m.InfoCalls, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Warning(format string, args ...interface{}) {
	m.WarningCalls = append(m.WarningCalls, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Error(format string, args ...interface{}) {
	m.ErrorCalls = append(m.ErrorCalls, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Close() error {
	m.CloseCalled = true
	return nil
}

var _ Logger = (*MockLogger)(nil)
