package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-feed-board/internal/adapter"
	"github.com/MKhiriev/go-feed-board/internal/config"
	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/MKhiriev/go-feed-board/internal/service"
	"github.com/MKhiriev/go-feed-board/internal/store"
	"github.com/MKhiriev/go-feed-board/internal/tui"
	"github.com/MKhiriev/go-feed-board/internal/workers"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	refresh  *workers.Workers

	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	cache, err := store.NewFeedCache(cfg.Storage.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("create feed cache: %w", err)
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	svcs := service.NewClientServices(cache, serverAdapter, log)
	ui, err := tui.New(svcs, log)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	refresh := workers.NewWorkers(
		workers.NewRefreshWorker(svcs.RefreshJob, cfg.Workers.RefreshInterval),
	)

	return &App{services: svcs, tui: ui, refresh: refresh, logger: log}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	// a saved session from a previous run skips the login screens
	username := a.restoreSession(ctx)
	if username == "" {
		var err error
		username, err = a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	a.refresh.Run()
	defer a.services.RefreshJob.Stop()

	logout, err := a.tui.MainLoop(ctx, username)
	if err != nil {
		return err
	}
	if logout {
		a.services.RefreshJob.Stop()
		return a.Run()
	}

	return nil
}

// restoreSession asks the server who the held cookie belongs to. An empty
// username means the login flow must run.
func (a *App) restoreSession(ctx context.Context) string {
	session, err := a.services.AuthService.Session(ctx)
	if err != nil {
		a.logger.Debug().Err(err).Msg("session restore failed")
		return ""
	}
	if !session.IsLoggedIn {
		return ""
	}
	return session.Username
}
