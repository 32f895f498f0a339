// Package register provides the runner logic for creating a new account.
package register

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/gorev/pkg/api"
	"tableflip.dev/gorev/pkg/msg"
	"tableflip.dev/gorev/pkg/validate"
)

type Register struct {
	Registration validate.Registration

	Client    *api.Client
	Validator *validate.Validator
	Loc       *msg.Localizer
}

// Do validates the registration locally, then submits it.
func (n *Register) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not register, no client")
	}
	if errs := n.Validator.RegisterUser(n.Registration); !errs.OK() {
		return errors.New(errs.First())
	}

	req := api.RegisterRequest{
		Username:        n.Registration.Username,
		Email:           n.Registration.Email,
		Password:        n.Registration.Password,
		ConfirmPassword: n.Registration.ConfirmPassword,
		FirstName:       n.Registration.FirstName,
		LastName:        n.Registration.LastName,
		PhoneNumber:     n.Registration.PhoneNumber,
	}
	if err := n.Client.Register(ctx, req); err != nil {
		return errors.New(api.Message(err, n.Loc.T(msg.RegisterFailed)))
	}

	g := color.New(color.FgGreen)
	_, _ = g.Println(n.Loc.T(msg.RegisterDone))
	fmt.Println("")
	return nil
}
