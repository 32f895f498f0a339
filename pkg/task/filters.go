package task

// StatusFilter narrows a listing to completed or pending tasks. The zero
// value means no status filtering; the non-zero values match the remote
// statusFilter query parameter.
type StatusFilter int

const (
	StatusAll       StatusFilter = 0
	StatusCompleted StatusFilter = 1
	StatusPending   StatusFilter = 2
)

func (s StatusFilter) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusPending:
		return "pending"
	default:
		return "all"
	}
}

// Filters is the active filter set for the task listing. EndDate is an upper
// bound on due dates; nil means unbounded.
type Filters struct {
	Status     StatusFilter
	SearchTerm string
	EndDate    *Date
}

// IsZero reports whether no filter is active.
func (f Filters) IsZero() bool {
	return f.Status == StatusAll && f.SearchTerm == "" && f.EndDate == nil
}
