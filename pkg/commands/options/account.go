package options

import (
	"github.com/spf13/cobra"
)

// AccountOptions captures the registration and login flags.
type AccountOptions struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	PhoneNumber     string
}

func AddLoginArgs(cmd *cobra.Command, o *AccountOptions) {
	cmd.Flags().StringVarP(&o.Username, "username", "u", "",
		"Account username.")
	cmd.Flags().StringVar(&o.Password, "password", "",
		"Account password.")
}

func AddRegisterArgs(cmd *cobra.Command, o *AccountOptions) {
	AddLoginArgs(cmd, o)
	cmd.Flags().StringVarP(&o.Email, "email", "e", "",
		"Account email address.")
	cmd.Flags().StringVar(&o.ConfirmPassword, "confirm-password", "",
		"Password confirmation. Defaults to the password value.")
	cmd.Flags().StringVar(&o.FirstName, "first-name", "",
		"Optional first name.")
	cmd.Flags().StringVar(&o.LastName, "last-name", "",
		"Optional last name.")
	cmd.Flags().StringVar(&o.PhoneNumber, "phone", "",
		"Optional phone number.")
}
