package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gorev/pkg/commands/options"
	"tableflip.dev/gorev/pkg/runner/register"
	"tableflip.dev/gorev/pkg/validate"
)

func addRegister(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Example: `
gorev register -u ayse -e ayse@example.com --password "S3cret!pass"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			confirm := ao.ConfirmPassword
			if confirm == "" {
				confirm = ao.Password
			}
			s := register.Register{
				Registration: validate.Registration{
					Username:        ao.Username,
					Email:           ao.Email,
					Password:        ao.Password,
					ConfirmPassword: confirm,
					FirstName:       ao.FirstName,
					LastName:        ao.LastName,
					PhoneNumber:     ao.PhoneNumber,
				},
				Client:    e.client,
				Validator: e.val,
				Loc:       e.loc,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddRegisterArgs(cmd, ao)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
