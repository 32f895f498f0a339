package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/gorev/pkg/task"
)

// FilterOptions captures the listing filters and pagination flags.
type FilterOptions struct {
	Page     int
	PageSize int
	Status   string
	Search   string
	End      string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().IntVarP(&o.Page, "page", "p", 1,
		"Page to fetch.")
	cmd.Flags().IntVar(&o.PageSize, "page-size", 0,
		"Tasks per page.")
	cmd.Flags().StringVarP(&o.Status, "status", "s", "all",
		"Filter by status: all, pending, or completed.")
	cmd.Flags().StringVar(&o.Search, "search", "",
		"Filter by a title substring.")
	cmd.Flags().StringVar(&o.End, "due-before", "",
		`Only tasks due on or before a date, example: --due-before="2026-03-01".`)
}

// GetStatus resolves the status flag value.
func (o *FilterOptions) GetStatus() (task.StatusFilter, error) {
	switch o.Status {
	case "", "all":
		return task.StatusAll, nil
	case "pending", "open":
		return task.StatusPending, nil
	case "completed", "done":
		return task.StatusCompleted, nil
	}
	return task.StatusAll, fmt.Errorf("unknown status %q", o.Status)
}

// GetEnd parses the due-before bound. Empty means no bound.
func (o *FilterOptions) GetEnd() (*task.Date, error) {
	if o.End == "" {
		return nil, nil
	}
	return task.ParseDate(o.End)
}
