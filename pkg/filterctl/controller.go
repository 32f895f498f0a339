// Package filterctl translates filter, search, and pagination interactions
// into store state changes and owns the follow-up fetches. Filter mutations
// apply synchronously through the store; the refetch they imply is a
// separate, asynchronous, unsequenced step, and free-text search is debounced
// so a burst of keystrokes becomes one query.
package filterctl

import (
	"context"
	"time"

	"tableflip.dev/gorev/pkg/debounce"
	"tableflip.dev/gorev/pkg/store"
	"tableflip.dev/gorev/pkg/task"
	"tableflip.dev/gorev/pkg/validate"
)

// SearchDebounce is the quiet window applied to free-text search input.
const SearchDebounce = 500 * time.Millisecond

// Options configure a Controller.
type Options struct {
	Store     *store.Store
	Validator *validate.Validator
	Scheduler debounce.Scheduler

	// OnError surfaces rejected parameter values (over-long search term,
	// out-of-range page size).
	OnError func(message string)

	// Async runs the follow-up fetch off the interaction path. The default
	// spawns a goroutine; tests substitute a synchronous runner.
	Async func(fn func())
}

// Controller drives the store's filter and pagination state.
type Controller struct {
	store  *store.Store
	val    *validate.Validator
	search *debounce.Debouncer

	onError func(string)
	async   func(func())
}

// New builds a Controller.
func New(opts Options) *Controller {
	if opts.OnError == nil {
		opts.OnError = func(string) {}
	}
	if opts.Async == nil {
		opts.Async = func(fn func()) { go fn() }
	}
	return &Controller{
		store:   opts.Store,
		val:     opts.Validator,
		search:  debounce.NewDebouncer(opts.Scheduler, SearchDebounce),
		onError: opts.OnError,
		async:   opts.Async,
	}
}

// Refresh triggers an asynchronous fetch under the latest filter snapshot.
func (c *Controller) Refresh() {
	c.async(func() {
		_ = c.store.FetchTasks(context.Background())
	})
}

// SetStatusFilter applies the tri-state completion filter and refetches.
func (c *Controller) SetStatusFilter(status task.StatusFilter) {
	c.store.SetStatusFilter(status)
	c.Refresh()
}

// SearchInput records a keystroke in the search box. The store is only
// touched once the quiet window elapses; every keystroke before that restarts
// the timer.
func (c *Controller) SearchInput(term string) {
	if c.val != nil {
		if errs := c.val.ListQuery(1, store.DefaultPageSize, term); !errs.OK() {
			c.onError(errs.First())
			return
		}
	}
	c.search.Trigger(func() {
		c.store.SetSearchTerm(term)
		c.Refresh()
	})
}

// SetEndDate applies the due-date upper bound and refetches. Nil removes the
// bound.
func (c *Controller) SetEndDate(date *task.Date) {
	c.store.SetEndDate(date)
	c.Refresh()
}

// SetPage moves to the given page and refetches.
func (c *Controller) SetPage(page int) {
	c.store.SetPage(page)
	c.Refresh()
}

// SetPageSize changes the window size and refetches. Out-of-range sizes are
// rejected locally.
func (c *Controller) SetPageSize(size int) {
	if c.val != nil {
		if errs := c.val.ListQuery(1, size, ""); !errs.OK() {
			c.onError(errs.First())
			return
		}
	}
	c.store.SetPageSize(size)
	c.Refresh()
}

// ClearFilters drops every filter, cancels any pending search commit, and
// refetches.
func (c *Controller) ClearFilters() {
	c.search.Cancel()
	c.store.ClearFilters()
	c.Refresh()
}
