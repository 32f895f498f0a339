package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/gorev/pkg/commands/options"
	"tableflip.dev/gorev/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	undo := false

	cmd := &cobra.Command{
		Use:     "complete <task id>",
		Aliases: []string{"done", "x"},
		Short:   "Toggle a task's completion",
		Example: `
gorev complete 42
gorev complete 42 --undo
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			return io.ParseID(args[0])
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s := complete.Complete{
				ID:        io.ID,
				Undo:      undo,
				ShowID:    io.ShowID,
				Store:     e.store,
				Validator: e.val,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the task open again.")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
