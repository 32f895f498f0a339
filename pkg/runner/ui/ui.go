// Package ui provides the runner that launches the interactive dashboard.
package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/gorev/pkg/api"
	"tableflip.dev/gorev/pkg/msg"
	"tableflip.dev/gorev/pkg/store"
	"tableflip.dev/gorev/pkg/tui"
	"tableflip.dev/gorev/pkg/validate"
)

type UI struct {
	Store     *store.Store
	Client    *api.Client
	Validator *validate.Validator
	Loc       *msg.Localizer

	// Relay must be the same one the client's unauthorized hook targets so a
	// 401 mid-session tears the dashboard down.
	Relay *tui.Relay
}

func (n *UI) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not open ui, no store")
	}
	if n.Relay == nil {
		n.Relay = &tui.Relay{}
	}

	m := tui.New(tui.Options{
		Store:     n.Store,
		Validator: n.Validator,
		Loc:       n.Loc,
		Notices:   n.Client.Notices(),
		Relay:     n.Relay,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	n.Relay.Bind(p.Send)

	_, err := p.Run()
	return err
}
