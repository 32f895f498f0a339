// Package date provides the runner logic for setting or clearing a task's due
// date.
package date

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/gorev/pkg/printers"
	"tableflip.dev/gorev/pkg/store"
	"tableflip.dev/gorev/pkg/task"
	"tableflip.dev/gorev/pkg/validate"
)

// Date sets a task's due date. An empty On clears it.
type Date struct {
	ID int64
	On string

	ShowID    bool
	Store     *store.Store
	Validator *validate.Validator
}

func (n *Date) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not set date, no store")
	}
	if errs := n.Validator.UpdateTaskDueDate(n.ID, n.On); !errs.OK() {
		return errors.New(errs.First())
	}

	var due *task.Date
	if n.On != "" {
		d, err := task.ParseDate(n.On)
		if err != nil {
			return err
		}
		due = d
	}

	if err := n.Store.UpdateTaskDueDate(ctx, n.ID, due); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TaskPage(n.Store.Snapshot())
	return nil
}
