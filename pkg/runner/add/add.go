// Package add provides the runner logic for creating a task.
package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/gorev/pkg/printers"
	"tableflip.dev/gorev/pkg/store"
	"tableflip.dev/gorev/pkg/task"
	"tableflip.dev/gorev/pkg/validate"
)

type Add struct {
	Title string
	On    *task.Date

	ShowID    bool
	Store     *store.Store
	Validator *validate.Validator
}

// Do validates, creates the task, and prints the refetched first page.
func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}
	if errs := n.Validator.CreateTask(n.Title, n.On); !errs.OK() {
		return errors.New(errs.First())
	}

	if err := n.Store.CreateTask(ctx, n.Title, n.On); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TaskPage(n.Store.Snapshot())
	return nil
}
