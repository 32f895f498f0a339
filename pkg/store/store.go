// Package store is the single source of truth for the task listing: the
// current page of tasks, the aggregate counters, the active filter set, and
// the per-operation busy flags. All mutation flows through it; presentation
// layers only read snapshots and subscribe to change events.
package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"tableflip.dev/gorev/pkg/api"
	"tableflip.dev/gorev/pkg/msg"
	"tableflip.dev/gorev/pkg/task"
)

// DefaultPageSize matches the remote default.
const DefaultPageSize = 10

// Gateway is what the store needs from the API layer.
type Gateway interface {
	ListTasks(ctx context.Context, params api.ListParams) (*task.Page, error)
	CreateTask(ctx context.Context, req api.CreateTaskRequest) (int64, error)
	UpdateTaskTitle(ctx context.Context, id int64, title string) error
	UpdateTaskStatus(ctx context.Context, id int64, isCompleted bool) error
	UpdateTaskDueDate(ctx context.Context, id int64, dueDate *task.Date) error
	DeleteTask(ctx context.Context, id int64) error
}

// Snapshot is a point-in-time copy of the store state for rendering. The
// aggregate counters are whatever the last successful fetch reported; the
// store never recomputes them from the visible rows.
type Snapshot struct {
	Tasks      []task.Task
	TotalCount int64
	Page       int
	PageSize   int
	TotalPages int
	TotalTasks int64
	Completed  int64
	Pending    int64
	Progress   int

	Filters task.Filters

	Loading  bool
	Creating bool
	Updating bool
	Deleting bool

	Err string
}

// Store reconciles local state with the remote collection. Mutating
// operations take no filter parameters: every successful mutation is followed
// by a fetch using the latest filter snapshot, keeping ordering and aggregate
// counters authoritative instead of patching rows locally.
//
// Concurrent fetches are deliberately unsequenced: when two are in flight,
// whichever response resolves last wins and becomes the displayed state, even
// if its request was issued first. This mirrors the remote contract the
// surrounding UI was built against; see the race tests before changing it.
type Store struct {
	gw  Gateway
	loc *msg.Localizer
	log *zap.Logger

	mu    sync.RWMutex
	state Snapshot

	events chan Event
}

// New builds a store starting on page 1 with the default page size.
func New(gw Gateway, loc *msg.Localizer, log *zap.Logger) *Store {
	if loc == nil {
		loc = msg.NewLocalizer(msg.LanguageTr)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		gw:  gw,
		loc: loc,
		log: log,
		state: Snapshot{
			Page:     1,
			PageSize: DefaultPageSize,
		},
		events: make(chan Event, 64),
	}
}

// Events exposes the change notification channel.
func (s *Store) Events() <-chan Event {
	return s.events
}

// Snapshot returns a copy of the current state. The returned task slice is
// owned by the caller.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.state
	snap.Tasks = append([]task.Task(nil), s.state.Tasks...)
	return snap
}

// Params renders the current page/filter state as listing parameters.
func (s *Store) Params() api.ListParams {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paramsLocked()
}

func (s *Store) paramsLocked() api.ListParams {
	return api.ListParams{
		Page:       s.state.Page,
		PageSize:   s.state.PageSize,
		Status:     s.state.Filters.Status,
		SearchTerm: s.state.Filters.SearchTerm,
		EndDate:    s.state.Filters.EndDate,
	}
}

// FetchTasks loads the page described by the current filter/pagination state.
// On success the rows and every aggregate/pagination field are replaced
// atomically from the payload and any prior error is cleared. On failure the
// last successfully fetched page is preserved and the error recorded. A fetch
// may overlap another; no fencing is applied (last response wins).
func (s *Store) FetchTasks(ctx context.Context) error {
	s.mu.Lock()
	params := s.paramsLocked()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()
	s.emit()

	page, err := s.gw.ListTasks(ctx, params)

	s.mu.Lock()
	s.state.Loading = false
	if err != nil {
		s.state.Err = api.Message(err, s.loc.T(msg.FailListTasks))
		s.mu.Unlock()
		s.emit()
		s.log.Debug("fetch tasks failed", zap.Error(err))
		return err
	}
	s.applyPageLocked(page)
	s.mu.Unlock()
	s.emit()
	return nil
}

func (s *Store) applyPageLocked(page *task.Page) {
	s.state.Tasks = append([]task.Task(nil), page.Tasks...)
	s.state.TotalCount = page.TotalCount
	s.state.Page = page.Page
	s.state.PageSize = page.PageSize
	s.state.TotalPages = page.TotalPages
	s.state.TotalTasks = page.TotalTasks
	s.state.Completed = page.Completed
	s.state.Pending = page.Pending
	s.state.Progress = page.Progress
	s.state.Err = ""
}

// CreateTask submits a new task. The caller is responsible for having
// validated the input; the store performs no re-validation. On success the
// listing is refetched under the current filters — there is no optimistic
// insertion, because sort position and aggregates are server-computed.
func (s *Store) CreateTask(ctx context.Context, title string, dueDate *task.Date) error {
	s.mu.Lock()
	s.state.Creating = true
	s.state.Err = ""
	s.mu.Unlock()
	s.emit()

	_, err := s.gw.CreateTask(ctx, api.CreateTaskRequest{Title: title, DueDate: dueDate})

	s.mu.Lock()
	s.state.Creating = false
	if err != nil {
		s.state.Err = api.Message(err, s.loc.T(msg.FailCreateTask))
		s.mu.Unlock()
		s.emit()
		return err
	}
	s.mu.Unlock()
	s.emit()

	return s.FetchTasks(ctx)
}

// UpdateTaskTitle sends a targeted title update, then refetches.
func (s *Store) UpdateTaskTitle(ctx context.Context, id int64, title string) error {
	return s.update(ctx, func(ctx context.Context) error {
		return s.gw.UpdateTaskTitle(ctx, id, title)
	})
}

// ToggleTaskCompletion sends a targeted completion update, then refetches.
func (s *Store) ToggleTaskCompletion(ctx context.Context, id int64, isCompleted bool) error {
	return s.update(ctx, func(ctx context.Context) error {
		return s.gw.UpdateTaskStatus(ctx, id, isCompleted)
	})
}

// UpdateTaskDueDate sends a targeted due-date update, then refetches. A nil
// date removes the deadline.
func (s *Store) UpdateTaskDueDate(ctx context.Context, id int64, dueDate *task.Date) error {
	return s.update(ctx, func(ctx context.Context) error {
		return s.gw.UpdateTaskDueDate(ctx, id, dueDate)
	})
}

func (s *Store) update(ctx context.Context, op func(context.Context) error) error {
	s.mu.Lock()
	s.state.Updating = true
	s.state.Err = ""
	s.mu.Unlock()
	s.emit()

	err := op(ctx)

	s.mu.Lock()
	s.state.Updating = false
	if err != nil {
		s.state.Err = api.Message(err, s.loc.T(msg.FailUpdateTask))
		s.mu.Unlock()
		s.emit()
		return err
	}
	s.mu.Unlock()
	s.emit()

	return s.FetchTasks(ctx)
}

// DeleteTask removes the task, then refetches under the current filters.
// Deleting the last row of a trailing page can legitimately yield an empty
// page; the refetched payload is displayed as-is, whatever shape it has.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	s.mu.Lock()
	s.state.Deleting = true
	s.state.Err = ""
	s.mu.Unlock()
	s.emit()

	err := s.gw.DeleteTask(ctx, id)

	s.mu.Lock()
	s.state.Deleting = false
	if err != nil {
		s.state.Err = api.Message(err, s.loc.T(msg.FailDeleteTask))
		s.mu.Unlock()
		s.emit()
		return err
	}
	s.mu.Unlock()
	s.emit()

	return s.FetchTasks(ctx)
}

func (s *Store) emit() {
	select {
	case s.events <- Event{Type: EventStateChanged}:
	default:
	}
}
