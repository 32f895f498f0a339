package store

import (
	"strings"

	"tableflip.dev/gorev/pkg/task"
)

// Filter and pagination transitions. These are pure state changes: none of
// them calls the API. The layer that owns the user interaction triggers the
// follow-up fetch, so the refetch stays an explicit, separate step.
//
// Any change to a filter field or to the page size resets the page to 1 —
// stale pagination over a changed result set is never shown.

// SetPage moves to the given 1-based page.
func (s *Store) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	s.state.Page = page
	s.mu.Unlock()
	s.emit()
}

// SetPageSize changes the window size and resets to page 1.
func (s *Store) SetPageSize(size int) {
	if size < 1 {
		size = 1
	}
	s.mu.Lock()
	s.state.PageSize = size
	s.state.Page = 1
	s.mu.Unlock()
	s.emit()
}

// SetStatusFilter selects the tri-state completion filter and resets to
// page 1.
func (s *Store) SetStatusFilter(status task.StatusFilter) {
	s.mu.Lock()
	s.state.Filters.Status = status
	s.state.Page = 1
	s.mu.Unlock()
	s.emit()
}

// SetSearchTerm records the trimmed free-text search and resets to page 1.
func (s *Store) SetSearchTerm(term string) {
	s.mu.Lock()
	s.state.Filters.SearchTerm = strings.TrimSpace(term)
	s.state.Page = 1
	s.mu.Unlock()
	s.emit()
}

// SetEndDate bounds due dates from above and resets to page 1. A nil date
// removes the bound.
func (s *Store) SetEndDate(date *task.Date) {
	s.mu.Lock()
	s.state.Filters.EndDate = date
	s.state.Page = 1
	s.mu.Unlock()
	s.emit()
}

// ClearFilters drops every filter and returns to page 1.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	s.state.Filters = task.Filters{}
	s.state.Page = 1
	s.mu.Unlock()
	s.emit()
}

// ClearError drops the shared error message.
func (s *Store) ClearError() {
	s.mu.Lock()
	s.state.Err = ""
	s.mu.Unlock()
	s.emit()
}
