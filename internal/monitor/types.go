package monitor

import "time"

// Usage is a used/total byte pair.
type Usage struct {
	Used  uint64
	Total uint64
}

// Percent returns used as a percentage of total, or 0 when total is 0.
func (u Usage) Percent() float64 {
	if u.Total == 0 {
		return 0
	}
	return float64(u.Used) / float64(u.Total) * 100
}

// UsedGB returns Used in GiB.
func (u Usage) UsedGB() float64 {
	return bytesToGB(u.Used)
}

// TotalGB returns Total in GiB.
func (u Usage) TotalGB() float64 {
	return bytesToGB(u.Total)
}

// Snapshot is one memory sample.
type Snapshot struct {
	RAM  Usage
	Swap Usage
	At   time.Time
}

// HasSwap reports whether the host has a page file or swap configured.
func (s Snapshot) HasSwap() bool {
	return s.Swap.Total > 0
}

// LogEntry is a single event log line. Entries are never modified once added.
type LogEntry struct {
	Message   string
	Timestamp time.Time
	IsError   bool
}

func bytesToGB(b uint64) float64 {
	return float64(b) / 1024 / 1024 / 1024
}
