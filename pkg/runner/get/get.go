// Package get provides the runner logic for listing tasks.
package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/gorev/pkg/printers"
	"tableflip.dev/gorev/pkg/store"
	"tableflip.dev/gorev/pkg/task"
	"tableflip.dev/gorev/pkg/validate"
)

type Get struct {
	Page     int
	PageSize int
	Status   task.StatusFilter
	Search   string
	EndDate  *task.Date

	ShowID    bool
	Store     *store.Store
	Validator *validate.Validator
}

// Do applies the requested filters to the store, fetches one page, and prints
// it.
func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}
	page, size := n.Page, n.PageSize
	if page == 0 {
		page = 1
	}
	if size == 0 {
		size = store.DefaultPageSize
	}
	if errs := n.Validator.ListQuery(page, size, n.Search); !errs.OK() {
		return errors.New(errs.First())
	}

	n.Store.SetStatusFilter(n.Status)
	n.Store.SetSearchTerm(n.Search)
	n.Store.SetEndDate(n.EndDate)
	if n.PageSize > 0 {
		n.Store.SetPageSize(n.PageSize)
	}
	// Page last: every filter setter above resets it to 1.
	if n.Page > 0 {
		n.Store.SetPage(n.Page)
	}

	if err := n.Store.FetchTasks(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TaskPage(n.Store.Snapshot())
	return nil
}
