package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gorev/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive dashboard",
		Example: `
gorev ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			i := ui.UI{
				Store:     e.store,
				Client:    e.client,
				Validator: e.val,
				Loc:       e.loc,
				Relay:     e.relay,
			}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
