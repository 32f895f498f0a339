// Package editor implements the per-field inline editing state machine used
// for task titles and due dates: Viewing → Editing → Saving → Viewing, with
// keystroke-level changes debounced into a single commit, an immediate-commit
// override on blur/Enter, and rollback on Escape.
package editor

import (
	"context"
	"strings"
	"sync"
	"time"

	"tableflip.dev/gorev/pkg/debounce"
)

// State is the editing phase of one field instance.
type State int

const (
	Viewing State = iota
	Editing
	Saving
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Saving:
		return "saving"
	default:
		return "viewing"
	}
}

// TitleDebounce is the quiet window between a keystroke and the automatic
// commit of a title edit.
const TitleDebounce = 1000 * time.Millisecond

// CommitFunc persists a validated, changed value, typically through a store
// targeted update. It runs off the caller's goroutine when triggered by the
// debounce timer; the context is never cancelled mid-flight.
type CommitFunc func(ctx context.Context, value string) error

// ValidateFunc checks a trimmed candidate locally, returning a localized
// message when the value must be rejected without a network call.
type ValidateFunc func(value string) string

// Options configure an Editor.
type Options struct {
	// Debounce arms a quiet-window commit after every value change. Zero
	// disables keystroke commits (date fields commit only on Enter/blur).
	Debounce time.Duration

	Scheduler debounce.Scheduler
	Validate  ValidateFunc
	Commit    CommitFunc

	// OnError surfaces a validation or commit failure to the user. Errors are
	// never silently dropped; a nil OnError is replaced by a no-op only so
	// the zero value stays usable in tests.
	OnError func(message string)

	// OnChange fires after every state transition so a renderer can repaint.
	OnChange func()
}

// Editor is one editable field instance. A row owns one editor per editable
// field; instances are independent, but within one instance only a single
// commit can be in flight.
type Editor struct {
	opts Options
	deb  *debounce.Debouncer

	mu       sync.Mutex
	state    State
	baseline string
	pending  string
}

// New builds an Editor in the Viewing state.
func New(opts Options) *Editor {
	if opts.Scheduler == nil {
		opts.Scheduler = debounce.System()
	}
	if opts.OnError == nil {
		opts.OnError = func(string) {}
	}
	if opts.OnChange == nil {
		opts.OnChange = func() {}
	}
	e := &Editor{opts: opts}
	if opts.Debounce > 0 {
		e.deb = debounce.NewDebouncer(opts.Scheduler, opts.Debounce)
	}
	return e
}

// State returns the current phase.
func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Value returns the value to display: the pending edit while editing, the
// baseline otherwise.
func (e *Editor) Value() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == Viewing {
		return e.baseline
	}
	return e.pending
}

// Baseline returns the rollback value captured when editing started.
func (e *Editor) Baseline() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.baseline
}

// StartEdit enters Editing, capturing current as the rollback baseline. It is
// a no-op while a commit is in flight.
func (e *Editor) StartEdit(current string) {
	e.mu.Lock()
	if e.state == Saving {
		e.mu.Unlock()
		return
	}
	e.state = Editing
	e.baseline = current
	e.pending = current
	e.mu.Unlock()
	e.opts.OnChange()
}

// SetValue records a keystroke-level change and, for debounced fields,
// restarts the quiet-period timer. The previous timer is always cancelled
// before a new one is armed.
func (e *Editor) SetValue(value string) {
	e.mu.Lock()
	if e.state != Editing {
		e.mu.Unlock()
		return
	}
	e.pending = value
	e.mu.Unlock()
	if e.deb != nil {
		e.deb.Trigger(func() { e.commit() })
	}
	e.opts.OnChange()
}

// Commit cancels any pending quiet-period timer and runs the
// validate-and-commit sequence immediately. Blur and the commit key both land
// here.
func (e *Editor) Commit() {
	if e.deb != nil {
		e.deb.Cancel()
	}
	e.commit()
}

// Cancel discards the pending edit, restores the baseline, and returns to
// Viewing without any network call.
func (e *Editor) Cancel() {
	if e.deb != nil {
		e.deb.Cancel()
	}
	e.mu.Lock()
	if e.state != Editing {
		e.mu.Unlock()
		return
	}
	e.pending = e.baseline
	e.state = Viewing
	e.mu.Unlock()
	e.opts.OnChange()
}

func (e *Editor) commit() {
	e.mu.Lock()
	if e.state != Editing {
		// Either nothing is being edited or a commit is already in flight.
		e.mu.Unlock()
		return
	}
	trimmed := strings.TrimSpace(e.pending)

	// Unchanged after trimming: no network call, straight back to Viewing.
	if trimmed == strings.TrimSpace(e.baseline) {
		e.state = Viewing
		e.pending = e.baseline
		e.mu.Unlock()
		e.opts.OnChange()
		return
	}

	if e.opts.Validate != nil {
		if message := e.opts.Validate(trimmed); message != "" {
			e.pending = e.baseline
			e.state = Viewing
			e.mu.Unlock()
			e.opts.OnChange()
			e.opts.OnError(message)
			return
		}
	}

	e.state = Saving
	e.pending = trimmed
	e.mu.Unlock()
	e.opts.OnChange()

	err := e.opts.Commit(context.Background(), trimmed)

	e.mu.Lock()
	if err != nil {
		e.pending = e.baseline
	} else {
		e.baseline = trimmed
	}
	e.state = Viewing
	e.mu.Unlock()
	e.opts.OnChange()
	if err != nil {
		e.opts.OnError(err.Error())
	}
}
