package monitor

import "time"

// Debouncer gates one class of input. An event is accepted when nothing
// has been accepted yet or strictly more than the cooldown has passed
// since the last accepted event. Rejections change nothing.
type Debouncer struct {
	cooldown time.Duration
	last     time.Time
	seen     bool
}

// NewDebouncer creates a gate with the given cooldown.
func NewDebouncer(cooldown time.Duration) *Debouncer {
	return &Debouncer{cooldown: cooldown}
}

// Allow reports whether an event at now passes the gate, recording it if so.
func (d *Debouncer) Allow(now time.Time) bool {
	if d.seen && now.Sub(d.last) <= d.cooldown {
		return false
	}
	d.last = now
	d.seen = true
	return true
}
