package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/gorev/pkg/commands/options"
	"tableflip.dev/gorev/pkg/runner/title"
)

func addTitle(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	text := ""

	cmd := &cobra.Command{
		Use:     "title <task id> <new title>",
		Aliases: []string{"rename"},
		Short:   "Rename a task",
		Example: `
gorev title 42 Buy oat milk
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a task id and a new title")
			}
			if err := io.ParseID(args[0]); err != nil {
				return err
			}
			text = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s := title.Title{
				ID:        io.ID,
				Title:     text,
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
