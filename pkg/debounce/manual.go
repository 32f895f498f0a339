package debounce

import (
	"sync"
	"time"
)

// Manual is a Scheduler driven by explicit ticks instead of the wall clock.
// Tests use it to elapse or interrupt quiet windows deterministically.
type Manual struct {
	mu      sync.Mutex
	nextID  int
	pending map[int]func()
}

// NewManual builds an empty manual scheduler.
func NewManual() *Manual {
	return &Manual{pending: make(map[int]func())}
}

func (m *Manual) Schedule(_ time.Duration, fn func()) CancelFunc {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.pending[id] = fn
	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		if _, ok := m.pending[id]; !ok {
			return false
		}
		delete(m.pending, id)
		return true
	}
}

// Fire runs and clears every pending call, as if all quiet windows elapsed.
func (m *Manual) Fire() int {
	m.mu.Lock()
	fns := make([]func(), 0, len(m.pending))
	for id, fn := range m.pending {
		fns = append(fns, fn)
		delete(m.pending, id)
	}
	m.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// Pending reports how many calls are armed.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}
