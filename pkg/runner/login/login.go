// Package login provides the runner logic for signing in and persisting the
// resulting session.
package login

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/gorev/pkg/api"
	"tableflip.dev/gorev/pkg/msg"
	"tableflip.dev/gorev/pkg/session"
	"tableflip.dev/gorev/pkg/validate"
)

type Login struct {
	Credentials validate.Credentials

	Client    *api.Client
	Sessions  session.Keeper
	Validator *validate.Validator
	Loc       *msg.Localizer
}

func (n *Login) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not login, no client")
	}
	if n.Sessions == nil {
		return errors.New("can not login, no session store")
	}
	if errs := n.Validator.LoginUser(n.Credentials); !errs.OK() {
		return errors.New(errs.First())
	}

	s, err := n.Client.Login(ctx, n.Credentials.Username, n.Credentials.Password)
	if err != nil {
		return errors.New(api.Message(err, n.Loc.T(msg.LoginFailed)))
	}
	if err := n.Sessions.Save(s); err != nil {
		return err
	}

	g := color.New(color.FgGreen)
	_, _ = g.Printf("%s\n", s.User.Username)
	fmt.Println("")
	return nil
}
