package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gorev/pkg/commands/options"
	"tableflip.dev/gorev/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "ls"},
		Short:   "List tasks",
		Example: `
gorev get
gorev get --status pending --search milk
gorev get --page 2 --page-size 25
gorev get --due-before="2026-03-01"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			status, err := fo.GetStatus()
			if err != nil {
				return oo.HandleError(err)
			}
			end, err := fo.GetEnd()
			if err != nil {
				return oo.HandleError(err)
			}
			s := get.Get{
				Page:      fo.Page,
				PageSize:  fo.PageSize,
				Status:    status,
				Search:    fo.Search,
				EndDate:   end,
				ShowID:    io.ShowID,
				Store:     e.store,
				Validator: e.val,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
