package monitor

import (
	"fmt"
	"time"
)

// ActivityState classifies recent user input.
type ActivityState int

const (
	Active ActivityState = iota
	Idle
)

// String returns a human-readable label for the state.
func (s ActivityState) String() string {
	if s == Idle {
		return "idle"
	}
	return "active"
}

// ActivityTracker drives the tick cadence from time since the last key.
// It starts Active; Evaluate moves it to Idle once input has been absent
// for longer than idleAfter, and Touch moves it straight back.
type ActivityTracker struct {
	state      ActivityState
	lastInput  time.Time
	idleAfter  time.Duration
	activeTick time.Duration
	idleTick   time.Duration
}

// NewActivityTracker creates an Active tracker whose idle timer starts at now.
func NewActivityTracker(now time.Time, t Timings) *ActivityTracker {
	return &ActivityTracker{
		state:      Active,
		lastInput:  now,
		idleAfter:  t.IdleAfter,
		activeTick: t.ActiveTick,
		idleTick:   t.IdleTick,
	}
}

// State returns the current state.
func (a *ActivityTracker) State() ActivityState {
	return a.state
}

// Interval returns the tick interval for the current state.
func (a *ActivityTracker) Interval() time.Duration {
	if a.state == Idle {
		return a.idleTick
	}
	return a.activeTick
}

// Evaluate re-checks idleness at now. It returns the log message and true
// only on the tick where the tracker goes idle.
func (a *ActivityTracker) Evaluate(now time.Time) (string, bool) {
	if a.state == Active && now.Sub(a.lastInput) > a.idleAfter {
		a.state = Idle
		return fmt.Sprintf("Entering idle mode (tick rate: %dms)", a.idleTick.Milliseconds()), true
	}
	return "", false
}

// Touch records input at now. Every observed key counts, including keys
// that are later debounced away. It returns the log message and true only
// when the tracker was idle.
func (a *ActivityTracker) Touch(now time.Time) (string, bool) {
	a.lastInput = now
	if a.state == Idle {
		a.state = Active
		return fmt.Sprintf("Switching to active mode (tick rate: %dms)", a.activeTick.Milliseconds()), true
	}
	return "", false
}
