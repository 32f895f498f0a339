package api

import (
	"sync"
	"time"

	"tableflip.dev/gorev/pkg/debounce"
)

// noticeWindow is how long a transient notice stays visible before it is
// removed on its own.
const noticeWindow = 5 * time.Second

// Notice is a transient, auto-dismissing user notice raised by the gateway,
// currently only for rate limiting. RetryAfter is the server's hint in
// seconds.
type Notice struct {
	Message    string
	RetryAfter int
}

// NoticeCenter holds at most one visible notice. Showing a new notice
// replaces the current one rather than stacking, and every notice dismisses
// itself after the fixed display window.
type NoticeCenter struct {
	sched debounce.Scheduler

	mu      sync.Mutex
	current *Notice
	cancel  debounce.CancelFunc
	seq     int

	events chan struct{}
}

// NewNoticeCenter builds a center using the given scheduler for the
// auto-dismiss timer.
func NewNoticeCenter(sched debounce.Scheduler) *NoticeCenter {
	if sched == nil {
		sched = debounce.System()
	}
	return &NoticeCenter{sched: sched, events: make(chan struct{}, 8)}
}

// Show replaces the visible notice and restarts the dismiss timer.
func (n *NoticeCenter) Show(notice Notice) {
	n.mu.Lock()
	if n.cancel != nil {
		n.cancel()
	}
	n.seq++
	seq := n.seq
	copied := notice
	n.current = &copied
	n.cancel = n.sched.Schedule(noticeWindow, func() {
		n.dismiss(seq)
	})
	n.mu.Unlock()
	n.emit()
}

// Current returns the visible notice, or nil.
func (n *NoticeCenter) Current() *Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	copied := *n.current
	return &copied
}

// Events signals whenever the visible notice changes (shown or dismissed).
// The channel never blocks the center; slow consumers read Current.
func (n *NoticeCenter) Events() <-chan struct{} {
	return n.events
}

func (n *NoticeCenter) dismiss(seq int) {
	n.mu.Lock()
	// A newer notice may have replaced us between scheduling and firing.
	if n.seq != seq || n.current == nil {
		n.mu.Unlock()
		return
	}
	n.current = nil
	n.cancel = nil
	n.mu.Unlock()
	n.emit()
}

func (n *NoticeCenter) emit() {
	select {
	case n.events <- struct{}{}:
	default:
	}
}
