package cli

import (
	"context"
	"errors"

	"stepify-cli/internal/api"
	"stepify-cli/internal/config"
	"stepify-cli/internal/localstate"
	"stepify-cli/internal/session"
)

// app is the per-invocation bootstrap: settings, token store, Gateway, and
// session store, constructed explicitly rather than at import time so tests
// can build the same stack against fixtures.
type app struct {
	configPath string
	settings   config.Settings
	tokens     *localstate.TokenStore
	client     *api.Client
	store      *session.Store
}

func newApp(configPath string) (*app, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	tokenPath := settings.TokenPath
	if tokenPath == "" {
		tokenPath, err = localstate.DefaultTokenPath()
		if err != nil {
			return nil, err
		}
	}
	tokens := localstate.NewTokenStore(tokenPath)

	client := api.NewClient(settings.APIBaseURL, tokens)
	client.SetTimeout(settings.RequestTimeout())

	return &app{
		configPath: configPath,
		settings:   settings,
		tokens:     tokens,
		client:     client,
		store:      session.NewStore(client, tokens),
	}, nil
}

func defaultConfigPath() string {
	path, err := config.DefaultSettingsPath()
	if err != nil {
		return ""
	}
	return path
}

var errNotLoggedIn = errors.New("not logged in (run: stepify-cli login)")

// requireAuth settles the session and guards a protected command. Initialize
// swallows an expired token on purpose; the guard then turns the settled
// unauthenticated state into the login redirect.
func (a *app) requireAuth(ctx context.Context) (session.Snapshot, error) {
	if err := a.store.Initialize(ctx); err != nil {
		return session.Snapshot{}, err
	}
	snap := a.store.Snapshot()
	if session.Evaluate(snap, session.RouteProtected) != session.DecisionAllow {
		return snap, errNotLoggedIn
	}
	return snap, nil
}
