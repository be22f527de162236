package monitor

import "sync"

// DefaultHistorySize is the default number of samples retained for the
// RAM and swap sparklines.
const DefaultHistorySize = 120

// History keeps recent usage percentages for sparkline rendering.
type History struct {
	mu   sync.RWMutex
	ram  *ringBuffer[float64]
	swap *ringBuffer[float64]
}

// ringBuffer is a fixed-size circular buffer.
type ringBuffer[T any] struct {
	data  []T
	head  int
	count int
	size  int
}

// NewHistory creates a history with the given capacity per series.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		ram:  newRingBuffer[float64](size),
		swap: newRingBuffer[float64](size),
	}
}

// Push records one snapshot. Swap is only recorded when present.
func (h *History) Push(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.ram.push(s.RAM.Percent())
	if s.HasSwap() {
		h.swap.push(s.Swap.Percent())
	}
}

// RAM returns up to count RAM percentages, oldest first.
func (h *History) RAM(count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ram.getLast(count)
}

// Swap returns up to count swap percentages, oldest first.
func (h *History) Swap(count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.swap.getLast(count)
}

// Count returns the number of RAM samples stored.
func (h *History) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ram.count
}

// newRingBuffer creates a new ring buffer with the specified capacity.
func newRingBuffer[T any](size int) *ringBuffer[T] {
	return &ringBuffer[T]{
		data: make([]T, size),
		size: size,
	}
}

// push adds a value, overwriting the oldest once full.
func (r *ringBuffer[T]) push(value T) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer[T]) getLast(count int) []T {
	if count <= 0 || r.count == 0 {
		return nil
	}

	if count > r.count {
		count = r.count
	}

	result := make([]T, count)

	// head points to the next write position, so the most recent value is at head-1
	start := (r.head - count + r.size) % r.size

	for i := 0; i < count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}

	return result
}

// newestFirst returns every stored value, most recent first.
func (r *ringBuffer[T]) newestFirst() []T {
	if r.count == 0 {
		return nil
	}

	result := make([]T, r.count)
	for i := 0; i < r.count; i++ {
		result[i] = r.data[(r.head-1-i+2*r.size)%r.size]
	}
	return result
}
