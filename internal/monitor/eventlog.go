package monitor

import (
	"fmt"
	"time"
)

// DefaultLogCapacity is the number of entries the event log retains.
const DefaultLogCapacity = 100

// EventLog is a bounded, newest-first record of status and error messages.
// Adding at capacity evicts the oldest entry.
type EventLog struct {
	entries *ringBuffer[LogEntry]
	now     func() time.Time
}

// NewEventLog creates a log holding at most capacity entries, stamping
// each with now(). A nil clock uses time.Now.
func NewEventLog(capacity int, now func() time.Time) *EventLog {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	if now == nil {
		now = time.Now
	}
	return &EventLog{
		entries: newRingBuffer[LogEntry](capacity),
		now:     now,
	}
}

// Add appends a message as the newest entry.
func (l *EventLog) Add(message string, isError bool) {
	l.entries.push(LogEntry{
		Message:   message,
		Timestamp: l.now(),
		IsError:   isError,
	})
}

// Infof adds a formatted informational entry.
func (l *EventLog) Infof(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...), false)
}

// Errorf adds a formatted error entry.
func (l *EventLog) Errorf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...), true)
}

// Entries returns all entries, newest first.
func (l *EventLog) Entries() []LogEntry {
	return l.entries.newestFirst()
}

// Len returns the number of stored entries.
func (l *EventLog) Len() int {
	return l.entries.count
}

// Capacity returns the maximum number of entries kept.
func (l *EventLog) Capacity() int {
	return l.entries.size
}

// FormatAge renders an elapsed duration as seconds, minutes or hours,
// right-aligned to three digits.
func FormatAge(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	switch {
	case secs < 60:
		return fmt.Sprintf("%3ds ago", secs)
	case secs < 3600:
		return fmt.Sprintf("%3dm ago", secs/60)
	default:
		return fmt.Sprintf("%3dh ago", secs/3600)
	}
}
