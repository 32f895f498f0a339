// Package title provides the runner logic for renaming a task.
package title

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/gorev/pkg/printers"
	"tableflip.dev/gorev/pkg/store"
	"tableflip.dev/gorev/pkg/validate"
)

type Title struct {
	ID    int64
	Title string

	ShowID    bool
	Store     *store.Store
	Validator *validate.Validator
}

func (n *Title) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not retitle, no store")
	}
	if errs := n.Validator.UpdateTaskTitle(n.ID, n.Title); !errs.OK() {
		return errors.New(errs.First())
	}

	if err := n.Store.UpdateTaskTitle(ctx, n.ID, n.Title); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TaskPage(n.Store.Snapshot())
	return nil
}
