// Package logger provides a small logging interface for rammon components.
//
// Operator-facing status lives in the dashboard's event log; this package is
// for diagnostics. While the dashboard owns the terminal, the standard log
// output goes to a file under RAMMON_DEBUG and is discarded otherwise (see
// cli), so components can log freely.
package logger

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// DebugEnv is the environment variable that enables debug output.
const DebugEnv = "RAMMON_DEBUG"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// DebugEnabled reports whether RAMMON_DEBUG is set.
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// envLogger writes through the standard log package.
// Debug messages are only printed when RAMMON_DEBUG is set.
type envLogger struct {
	prefix string
}

// NewEnvLogger creates a logger that respects the RAMMON_DEBUG environment variable.
// The prefix is prepended to all log messages (e.g., "[helper]" or "[config]").
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if DebugEnabled() {
		log.Printf(l.prefix+" "+format, args...)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	log.Printf(l.prefix+" "+format, args...)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	log.Printf(l.prefix+" WARN: "+format, args...)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	log.Printf(l.prefix+" ERROR: "+format, args...)
}

type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for testing.
// Safe for use from the helper's background goroutines.
type BufferLogger struct {
	mu       sync.Mutex
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) record(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.record("debug", format, args...) }
func (l *BufferLogger) Info(format string, args ...interface{})  { l.record("info", format, args...) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.record("warn", format, args...) }
func (l *BufferLogger) Error(format string, args ...interface{}) { l.record("error", format, args...) }

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the captured messages.
func (l *BufferLogger) Snapshot() []LogMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogMessage, len(l.Messages))
	copy(out, l.Messages)
	return out
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = l.Messages[:0]
}

var defaultLogger = NewEnvLogger("[rammon]")

// Default returns the package-level default logger.
func Default() Logger {
	return defaultLogger
}

// SetDefault replaces the package-level default logger.
func SetDefault(l Logger) {
	defaultLogger = l
}
