// Package app wires configuration, storage, the session and the API client
// together so the CLI, the TUI and the MCP server share one setup path.
package app

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/advcontrol/pkg/api"
	"tableflip.dev/advcontrol/pkg/auth"
	"tableflip.dev/advcontrol/pkg/config"
	"tableflip.dev/advcontrol/pkg/logging"
	"tableflip.dev/advcontrol/pkg/screens"
	"tableflip.dev/advcontrol/pkg/session"
	"tableflip.dev/advcontrol/pkg/store"
)

// App is an opened advcontrol environment.
type App struct {
	Config   *config.Config
	Disk     *store.Disk
	Sessions *session.Store
	Auth     *auth.Service
	Client   *api.Client

	closeSlots func() error
}

// Open loads cfg (or the user's configuration when nil), opens storage and
// restores any persisted session.
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg == nil {
		var err error
		if cfg, err = config.Load(); err != nil {
			return nil, err
		}
	}
	logging.SetLevel(logging.ParseLevel(cfg.LogLevel))

	disk, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	slots, closeSlots, err := store.OpenSlots(ctx, cfg.SessionBackend, cfg.RedisURL, disk)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:     cfg,
		Disk:       disk,
		Sessions:   session.NewStore(slots),
		Client:     api.New(cfg.APIURL, api.WithTimeout(cfg.APITimeout)),
		closeSlots: closeSlots,
	}
	a.Auth = auth.NewService(a.Client, a.Sessions)
	if sess := a.Auth.Restore(ctx); sess != nil {
		logging.Debugf("app: restored session for %s", sess.User.Email)
	}
	return a, nil
}

// Close releases the session backend.
func (a *App) Close() error {
	if a.closeSlots == nil {
		return nil
	}
	return a.closeSlots()
}

// Screens builds the screen set for the signed-in user.
func (a *App) Screens() (*screens.Set, error) {
	sess, err := a.Auth.Require()
	if err != nil {
		return nil, err
	}
	return screens.NewSet(a.Client.WithToken(sess.Token), a.Disk), nil
}

// SignOut clears the session and every cached collection.
func (a *App) SignOut(ctx context.Context) error {
	var errs []error
	if err := a.Auth.SignOut(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := a.Disk.DropSnapshots(); err != nil {
		errs = append(errs, fmt.Errorf("app: drop cache: %w", err))
	}
	return errors.Join(errs...)
}

// Watch subscribes to storage change events.
func (a *App) Watch(ctx context.Context) (<-chan store.Event, error) {
	return a.Disk.Watch(ctx)
}
