package task

import "time"

// Task is one remote to-do record. The local copy is a cache: the remote
// system owns ids, timestamps, and ordering, and the copy is only valid until
// the next refetch.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	IsCompleted bool       `json:"isCompleted"`
	DueDate     *Date      `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Overdue reports whether the task has a due date earlier than today and is
// still pending.
func (t Task) Overdue() bool {
	if t.DueDate == nil || t.IsCompleted {
		return false
	}
	return Today().After(*t.DueDate)
}

// Page is one server-computed window over the task collection together with
// the aggregate counters for the whole (filtered) collection. The counters
// are taken verbatim from the response; recomputing them from the visible
// rows would drift, since Tasks is only the current page.
type Page struct {
	Tasks      []Task `json:"tasks"`
	TotalCount int64  `json:"totalCount"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
	TotalTasks int64  `json:"totalTasks"`
	Completed  int64  `json:"completed"`
	Pending    int64  `json:"pending"`
	Progress   int    `json:"progress"`
}
