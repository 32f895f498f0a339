package commands

import (
	"go.uber.org/zap"

	"tableflip.dev/gorev/pkg/api"
	"tableflip.dev/gorev/pkg/config"
	"tableflip.dev/gorev/pkg/logging"
	"tableflip.dev/gorev/pkg/msg"
	"tableflip.dev/gorev/pkg/session"
	"tableflip.dev/gorev/pkg/store"
	"tableflip.dev/gorev/pkg/tui"
	"tableflip.dev/gorev/pkg/validate"
)

// env is the shared wiring behind every command: configuration, messages,
// session persistence, the API gateway, and the task store.
type env struct {
	cfg      *config.Config
	loc      *msg.Localizer
	log      *zap.Logger
	sessions session.Keeper
	client   *api.Client
	store    *store.Store
	val      *validate.Validator

	// relay carries the gateway's unauthorized signal into the dashboard when
	// the ui command is running. For one-shot commands nothing is bound and
	// the returned error already says the session expired.
	relay *tui.Relay
}

func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogPath)
	if err != nil {
		return nil, err
	}
	loc := msg.NewLocalizer(cfg.Language)

	sessions, err := session.Load(cfg)
	if err != nil {
		return nil, err
	}

	relay := &tui.Relay{}
	client := api.New(api.Options{
		BaseURL:        cfg.BaseURL,
		Sessions:       sessions,
		Localizer:      loc,
		Logger:         logger,
		OnUnauthorized: func() { relay.Send(tui.SessionExpired()) },
	})

	st := store.New(client, loc, logger)
	if cfg.PageSize > 0 && cfg.PageSize != store.DefaultPageSize {
		st.SetPageSize(cfg.PageSize)
	}

	return &env{
		cfg:      cfg,
		loc:      loc,
		log:      logger,
		sessions: sessions,
		client:   client,
		store:    st,
		val:      validate.New(loc),
		relay:    relay,
	}, nil
}
