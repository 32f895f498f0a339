package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gorev/pkg/commands/options"
	"tableflip.dev/gorev/pkg/runner/logout"
)

func addLogout(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the persisted session",
		Example: `
gorev logout
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s := logout.Logout{Sessions: e.sessions}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
