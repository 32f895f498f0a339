package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/gorev/pkg/commands/options"
	"tableflip.dev/gorev/pkg/runner/del"
)

func addDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "delete <task id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Example: `
gorev delete 42
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
			s := del.Delete{
				ID:        io.ID,
				ShowID:    io.ShowID,
				Store:     e.store,
				Validator: e.val,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
