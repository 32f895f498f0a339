package editor

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tableflip.dev/gorev/pkg/debounce"
)

type commitRecorder struct {
	mu     sync.Mutex
	values []string
	err    error
}

func (c *commitRecorder) commit(_ context.Context, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = append(c.values, value)
	return c.err
}

func (c *commitRecorder) calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.values...)
}

func newTitleEditor(rec *commitRecorder, sched debounce.Scheduler) (*Editor, *[]string) {
	var errs []string
	e := New(Options{
		Debounce:  TitleDebounce,
		Scheduler: sched,
		Commit:    rec.commit,
		OnError:   func(m string) { errs = append(errs, m) },
	})
	return e, &errs
}

func TestDebouncedKeystrokesCoalesceIntoOneCommit(t *testing.T) {
	sched := debounce.NewManual()
	rec := &commitRecorder{}
	e, _ := newTitleEditor(rec, sched)

	e.StartEdit("Buy milk")
	for _, v := range []string{"Buy milk a", "Buy milk an", "Buy milk and bread"} {
		e.SetValue(v)
	}
	if sched.Pending() != 1 {
		t.Fatalf("expected one armed timer, got %d", sched.Pending())
	}

	sched.Fire()

	if got := rec.calls(); len(got) != 1 || got[0] != "Buy milk and bread" {
		t.Fatalf("expected one commit with the final value, got %v", got)
	}
	if e.State() != Viewing {
		t.Fatalf("expected Viewing after commit, got %v", e.State())
	}
	if e.Value() != "Buy milk and bread" {
		t.Fatalf("expected new baseline, got %q", e.Value())
	}
}

func TestImmediateCommitCancelsTimer(t *testing.T) {
	sched := debounce.NewManual()
	rec := &commitRecorder{}
	e, _ := newTitleEditor(rec, sched)

	e.StartEdit("old")
	e.SetValue("new value")
	e.Commit()

	if got := rec.calls(); len(got) != 1 || got[0] != "new value" {
		t.Fatalf("expected immediate commit, got %v", got)
	}
	// The debounce timer must not fire a second commit afterwards.
	if sched.Fire() != 0 {
		t.Fatalf("expected no armed timer after explicit commit")
	}
	if got := rec.calls(); len(got) != 1 {
		t.Fatalf("expected exactly one commit, got %v", got)
	}
}

func TestCancelRestoresBaselineWithoutCommit(t *testing.T) {
	sched := debounce.NewManual()
	rec := &commitRecorder{}
	e, _ := newTitleEditor(rec, sched)

	e.StartEdit("original")
	e.SetValue("half-typed edi")
	e.Cancel()

	if len(rec.calls()) != 0 {
		t.Fatalf("cancel must not commit, got %v", rec.calls())
	}
	if sched.Fire() != 0 {
		t.Fatalf("cancel must disarm the timer")
	}
	if e.State() != Viewing || e.Value() != "original" {
		t.Fatalf("expected rollback to baseline, got %v %q", e.State(), e.Value())
	}
}

func TestNoopCommitSkipsNetwork(t *testing.T) {
	sched := debounce.NewManual()
	rec := &commitRecorder{}
	e, _ := newTitleEditor(rec, sched)

	e.StartEdit("same title")
	e.SetValue("  same title  ")
	e.Commit()

	if len(rec.calls()) != 0 {
		t.Fatalf("unchanged value must not commit, got %v", rec.calls())
	}
	if e.State() != Viewing {
		t.Fatalf("expected Viewing, got %v", e.State())
	}
}

func TestValidationFailureRevertsWithoutCommit(t *testing.T) {
	sched := debounce.NewManual()
	rec := &commitRecorder{}
	var seen []string
	e := New(Options{
		Debounce:  TitleDebounce,
		Scheduler: sched,
		Commit:    rec.commit,
		Validate: func(value string) string {
			if len(value) < 3 {
				return "too short"
			}
			return ""
		},
		OnError: func(m string) { seen = append(seen, m) },
	})

	e.StartEdit("valid title")
	e.SetValue("ab")
	e.Commit()

	if len(rec.calls()) != 0 {
		t.Fatalf("invalid value must not commit, got %v", rec.calls())
	}
	if e.State() != Viewing || e.Value() != "valid title" {
		t.Fatalf("expected rollback, got %v %q", e.State(), e.Value())
	}
	if len(seen) != 1 || seen[0] != "too short" {
		t.Fatalf("expected surfaced validation message, got %v", seen)
	}
}

func TestCommitFailureRollsBack(t *testing.T) {
	sched := debounce.NewManual()
	rec := &commitRecorder{err: errors.New("boom")}
	e, errs := newTitleEditor(rec, sched)

	e.StartEdit("before")
	e.SetValue("after")
	e.Commit()

	if e.State() != Viewing || e.Value() != "before" {
		t.Fatalf("expected rollback on failure, got %v %q", e.State(), e.Value())
	}
	if len(*errs) != 1 {
		t.Fatalf("expected surfaced commit error, got %v", *errs)
	}

	// A later successful commit replaces the baseline.
	rec.err = nil
	e.StartEdit(e.Value())
	e.SetValue("after")
	e.Commit()
	if e.Value() != "after" {
		t.Fatalf("expected new baseline after success, got %q", e.Value())
	}
}

func TestSetValueIgnoredOutsideEditing(t *testing.T) {
	sched := debounce.NewManual()
	rec := &commitRecorder{}
	e, _ := newTitleEditor(rec, sched)

	e.SetValue("ignored")
	if sched.Pending() != 0 {
		t.Fatalf("no timer should arm while Viewing")
	}
	if e.Value() != "" {
		t.Fatalf("value must stay baseline, got %q", e.Value())
	}
}

func TestDateEditorHasNoKeystrokeCommits(t *testing.T) {
	rec := &commitRecorder{}
	e := New(Options{
		Commit: rec.commit,
	})

	e.StartEdit("2026-09-15")
	e.SetValue("2026-09-16")
	if len(rec.calls()) != 0 {
		t.Fatalf("no debounce configured, keystrokes must not commit")
	}
	e.Commit()
	if got := rec.calls(); len(got) != 1 || got[0] != "2026-09-16" {
		t.Fatalf("expected explicit commit only, got %v", got)
	}
}
