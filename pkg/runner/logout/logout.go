// Package logout provides the runner logic for discarding the local session.
package logout

import (
	"context"
	"errors"

	"tableflip.dev/gorev/pkg/session"
)

type Logout struct {
	Sessions session.Keeper
}

// Do drops the persisted session record. The token is not revoked remotely;
// the bearer scheme has no server-side logout.
func (n *Logout) Do(ctx context.Context) error {
	if n.Sessions == nil {
		return errors.New("can not logout, no session store")
	}
	return n.Sessions.Clear()
}
