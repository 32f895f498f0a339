// Package del provides the runner logic for deleting a task.
package del

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/gorev/pkg/printers"
	"tableflip.dev/gorev/pkg/store"
	"tableflip.dev/gorev/pkg/validate"
)

type Delete struct {
	ID int64

	ShowID    bool
	Store     *store.Store
	Validator *validate.Validator
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not delete, no store")
	}
	if errs := n.Validator.DeleteTask(n.ID); !errs.OK() {
		return errors.New(errs.First())
	}

	if err := n.Store.DeleteTask(ctx, n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TaskPage(n.Store.Snapshot())
	return nil
}
