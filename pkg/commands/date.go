package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/gorev/pkg/commands/options"
	"tableflip.dev/gorev/pkg/runner/date"
)

func addDate(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "date <task id>",
		Short: "Set or clear a task's due date",
		Example: `
gorev date 42 --on="2026-09-15"
gorev date 42
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
			s := date.Date{
				ID:        io.ID,
				On:        on.OnString,
				ShowID:    io.ShowID,
				Store:     e.store,
				Validator: e.val,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
