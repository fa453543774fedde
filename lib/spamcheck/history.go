package spamcheck

import (
	"container/ring"
	"sync"
)

// History keeps track of last N checks, thread-safe.
type History struct {
	checks *ring.Ring
	size   int
	lock   sync.RWMutex
}

// NewHistory creates new checks tracker
func NewHistory(size int) *History {
	// minimum size is 1
	if size < 1 {
		size = 1
	}
	return &History{checks: ring.New(size), size: size}
}

// Push adds new check to the history, overwriting the oldest one if full
func (h *History) Push(c Check) {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.checks.Value = c
	h.checks = h.checks.Next()
}

// Last returns up to n most recent checks in chronological order (oldest to newest)
func (h *History) Last(n int) []Check {
	if n < 1 {
		return []Check{}
	}

	h.lock.RLock()
	defer h.lock.RUnlock()

	result := make([]Check, 0, h.size)
	h.checks.Do(func(v any) {
		if c, ok := v.(Check); ok {
			result = append(result, c)
		}
	})

	if len(result) > n {
		result = result[len(result)-n:]
	}
	return result
}

// Size returns the capacity of the history
func (h *History) Size() int {
	return h.size
}
