package services

import (
	"sync"

	"pimon/internal/models"
)

// History retains a bounded, oldest-first window of recent Samples.
// The sampler is the only writer; request handlers and the WebSocket
// hub read concurrently through Snapshot/Latest. The lock is held only
// for the append or the copy, never across metric reads.
type History struct {
	mu       sync.RWMutex
	samples  []models.Sample
	capacity int
}

// NewHistory creates a History holding at most capacity Samples.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		samples:  make([]models.Sample, 0, capacity),
		capacity: capacity,
	}
}

// Append adds a Sample to the back, evicting the oldest entry once the
// buffer is full.
func (h *History) Append(s models.Sample) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.samples) == h.capacity {
		copy(h.samples, h.samples[1:])
		h.samples[h.capacity-1] = s
		return
	}
	h.samples = append(h.samples, s)
}

// Snapshot returns a copy of the current contents, oldest first. The
// copy is independent of later appends and never nil.
func (h *History) Snapshot() []models.Sample {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]models.Sample, len(h.samples))
	copy(out, h.samples)
	return out
}

// Latest returns the most recent Sample, or false if nothing has been
// collected yet.
func (h *History) Latest() (models.Sample, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.samples) == 0 {
		return models.Sample{}, false
	}
	return h.samples[len(h.samples)-1], true
}

// Len returns the number of retained Samples.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.samples)
}

// Capacity returns the fixed maximum number of Samples.
func (h *History) Capacity() int {
	return h.capacity
}
