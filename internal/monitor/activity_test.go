package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActivityTracker_StartsActive(t *testing.T) {
	a := NewActivityTracker(newFakeClock().Now(), DefaultTimings())

	assert.Equal(t, Active, a.State())
	assert.Equal(t, 25*time.Millisecond, a.Interval())
}

func TestActivityTracker_IdleOnce(t *testing.T) {
	clock := newFakeClock()
	a := NewActivityTracker(clock.Now(), DefaultTimings())

	clock.Advance(30 * time.Second)
	_, changed := a.Evaluate(clock.Now())
	assert.False(t, changed, "exactly the idle threshold is still active")
	assert.Equal(t, Active, a.State())

	clock.Advance(time.Millisecond)
	text, changed := a.Evaluate(clock.Now())
	assert.True(t, changed)
	assert.Equal(t, "Entering idle mode (tick rate: 3000ms)", text)
	assert.Equal(t, Idle, a.State())
	assert.Equal(t, 3*time.Second, a.Interval())

	for i := 0; i < 5; i++ {
		clock.Advance(3 * time.Second)
		_, changed = a.Evaluate(clock.Now())
		assert.False(t, changed)
	}
}

func TestActivityTracker_Touch(t *testing.T) {
	clock := newFakeClock()
	a := NewActivityTracker(clock.Now(), DefaultTimings())

	_, changed := a.Touch(clock.Now())
	assert.False(t, changed, "touch while active is a no-op transition")

	clock.Advance(31 * time.Second)
	a.Evaluate(clock.Now())
	assert.Equal(t, Idle, a.State())

	text, changed := a.Touch(clock.Now())
	assert.True(t, changed)
	assert.Equal(t, "Switching to active mode (tick rate: 25ms)", text)
	assert.Equal(t, Active, a.State())

	// The idle timer restarted at the touch.
	clock.Advance(30 * time.Second)
	_, changed = a.Evaluate(clock.Now())
	assert.False(t, changed)
}

func TestActivityState_String(t *testing.T) {
	assert.Equal(t, "active", Active.String())
	assert.Equal(t, "idle", Idle.String())
}
