// Package debounce provides cancellable delayed calls and a coalescing
// debouncer. Timers are always explicit handles owned by their component and
// cancelled before a replacement is armed, never ambient.
package debounce

import (
	"sync"
	"time"
)

// CancelFunc stops a scheduled call. It reports whether the call was
// prevented from running.
type CancelFunc func() bool

// Scheduler arms a single delayed call and returns its cancel handle.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) CancelFunc
}

// System returns the wall-clock Scheduler backed by time.AfterFunc.
func System() Scheduler {
	return systemScheduler{}
}

type systemScheduler struct{}

func (systemScheduler) Schedule(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return t.Stop
}

// Debouncer coalesces rapid triggers into one call: each Trigger cancels the
// pending handle and arms a new one, so only the quietest trigger's function
// runs, after the full delay of inactivity.
type Debouncer struct {
	sched Scheduler
	delay time.Duration

	mu     sync.Mutex
	cancel CancelFunc
}

// NewDebouncer builds a Debouncer with the given quiet window.
func NewDebouncer(sched Scheduler, delay time.Duration) *Debouncer {
	if sched == nil {
		sched = System()
	}
	return &Debouncer{sched: sched, delay: delay}
}

// Trigger schedules fn after the quiet window, cancelling any pending call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
	}
	d.cancel = d.sched.Schedule(d.delay, func() {
		d.mu.Lock()
		d.cancel = nil
		d.mu.Unlock()
		fn()
	})
}

// Cancel drops the pending call, if any. It reports whether one was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel == nil {
		return false
	}
	stopped := d.cancel()
	d.cancel = nil
	return stopped
}
