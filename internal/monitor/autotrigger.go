package monitor

import (
	"time"

	"github.com/rileyhilliard/rammon/internal/action"
	"github.com/rileyhilliard/rammon/internal/config"
)

// AutoTrigger fires the configured action when RAM usage reaches the
// threshold, at most once per cooldown window.
type AutoTrigger struct {
	threshold float64
	action    action.Action
	cooldown  time.Duration
	lastFired time.Time
	fired     bool
}

// NewAutoTrigger creates a trigger. Out-of-range thresholds and invalid
// actions are replaced with their defaults.
func NewAutoTrigger(threshold float64, a action.Action, cooldown time.Duration) *AutoTrigger {
	if !config.ValidThreshold(threshold) {
		threshold = config.DefaultThreshold
	}
	if !a.Valid() {
		a = action.Default
	}
	return &AutoTrigger{threshold: threshold, action: a, cooldown: cooldown}
}

// Threshold returns the firing threshold in percent.
func (t *AutoTrigger) Threshold() float64 {
	return t.threshold
}

// Action returns the action fired automatically.
func (t *AutoTrigger) Action() action.Action {
	return t.action
}

// Check returns the action to dispatch when percent is at or above the
// threshold and the cooldown has elapsed. Firing records now.
func (t *AutoTrigger) Check(percent float64, now time.Time) (action.Action, bool) {
	if percent < t.threshold {
		return 0, false
	}
	if t.fired && now.Sub(t.lastFired) <= t.cooldown {
		return 0, false
	}
	t.lastFired = now
	t.fired = true
	return t.action, true
}

// CoolingDown reports whether a check at now would be suppressed by the
// cooldown, and how long remains.
func (t *AutoTrigger) CoolingDown(now time.Time) (time.Duration, bool) {
	if !t.fired {
		return 0, false
	}
	remaining := t.cooldown - now.Sub(t.lastFired)
	if remaining < 0 {
		return 0, false
	}
	return remaining, true
}

// CycleThreshold steps the threshold up, wrapping to the minimum.
func (t *AutoTrigger) CycleThreshold() float64 {
	t.threshold = config.NextThreshold(t.threshold)
	return t.threshold
}

// CycleAction advances to the next action in catalog order.
func (t *AutoTrigger) CycleAction() action.Action {
	t.action = t.action.Next()
	return t.action
}
