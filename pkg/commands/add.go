package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/gorev/pkg/commands/options"
	"tableflip.dev/gorev/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}
	on := &options.OnOptions{}

	title := ""

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Example: `
gorev add Buy milk
gorev add "Dentist appointment" --on="2026-09-15"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			due, err := on.GetOn()
			if err != nil {
				return oo.HandleError(err)
			}
			s := add.Add{
				Title:     title,
				On:        due,
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
