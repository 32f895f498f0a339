package api

import (
	"testing"

	"tableflip.dev/gorev/pkg/debounce"
)

func TestNoticeReplacesInsteadOfStacking(t *testing.T) {
	sched := debounce.NewManual()
	n := NewNoticeCenter(sched)

	n.Show(Notice{Message: "first", RetryAfter: 60})
	n.Show(Notice{Message: "second", RetryAfter: 30})

	current := n.Current()
	if current == nil || current.Message != "second" || current.RetryAfter != 30 {
		t.Fatalf("expected the newest notice only, got %+v", current)
	}
}

func TestNoticeAutoDismisses(t *testing.T) {
	sched := debounce.NewManual()
	n := NewNoticeCenter(sched)

	n.Show(Notice{Message: "rate limited", RetryAfter: 60})
	if n.Current() == nil {
		t.Fatalf("expected a visible notice")
	}

	sched.Fire()
	if n.Current() != nil {
		t.Fatalf("expected the notice to dismiss itself")
	}
}

func TestStaleDismissTimerDoesNotClearNewerNotice(t *testing.T) {
	sched := debounce.NewManual()
	n := NewNoticeCenter(sched)

	n.Show(Notice{Message: "first"})
	n.Show(Notice{Message: "second"})

	// A dismiss timer that escaped cancellation fires with the old sequence
	// number; the guard must ignore it.
	n.dismiss(1)

	current := n.Current()
	if current == nil || current.Message != "second" {
		t.Fatalf("stale dismissal cleared the newer notice: %+v", current)
	}
}

func TestNoticeEventsSignal(t *testing.T) {
	sched := debounce.NewManual()
	n := NewNoticeCenter(sched)

	n.Show(Notice{Message: "first"})
	select {
	case <-n.Events():
	default:
		t.Fatalf("expected an event after Show")
	}

	sched.Fire()
	select {
	case <-n.Events():
	default:
		t.Fatalf("expected an event after dismissal")
	}
}
