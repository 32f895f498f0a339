// Package complete provides the runner logic for toggling task completion.
package complete

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/gorev/pkg/printers"
	"tableflip.dev/gorev/pkg/store"
	"tableflip.dev/gorev/pkg/validate"
)

// Complete flips a task's completion state. Undo marks a completed task open
// again.
type Complete struct {
	ID   int64
	Undo bool

	ShowID    bool
	Store     *store.Store
	Validator *validate.Validator
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not complete, no store")
	}
	if errs := n.Validator.UpdateTaskStatus(n.ID); !errs.OK() {
		return errors.New(errs.First())
	}

	if err := n.Store.ToggleTaskCompletion(ctx, n.ID, !n.Undo); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TaskPage(n.Store.Snapshot())
	return nil
}
