package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gorev/pkg/commands/options"
	"tableflip.dev/gorev/pkg/runner/login"
	"tableflip.dev/gorev/pkg/validate"
)

func addLogin(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		Example: `
gorev login -u ayse --password "S3cret!pass"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s := login.Login{
				Credentials: validate.Credentials{
					Username: ao.Username,
					Password: ao.Password,
				},
				Client:    e.client,
				Sessions:  e.sessions,
				Validator: e.val,
				Loc:       e.loc,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddLoginArgs(cmd, ao)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
