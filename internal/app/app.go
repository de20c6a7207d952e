package app

import (
	"context"
	"log/slog"
	"time"

	msql "noko-client/internal/adapter/mysql"
	nk "noko-client/internal/adapter/noko"
	"noko-client/internal/config"
	"noko-client/internal/migrate"
	"noko-client/internal/usecase"
)

// App wires adapters and use cases.
type App struct {
	log *slog.Logger
	uc  *usecase.SyncUseCase
}

func New(log *slog.Logger, cfg config.Config) (*App, error) {
	source := nk.NewSource(cfg.Noko.BaseURL, cfg.Noko.AccessToken, log)
	// Run migrations before opening the sink for use
	if err := migrate.Run(context.Background(), cfg.MySQL.DSN, log); err != nil {
		return nil, err
	}
	sink, err := msql.NewClient(context.Background(), cfg.MySQL.DSN, log)
	if err != nil {
		return nil, err
	}

	uc := &usecase.SyncUseCase{
		Log:  log,
		Noko: source,
		Sink: sink,
	}

	return &App{log: log, uc: uc}, nil
}

func (a *App) RunOnce(ctx context.Context, from, to time.Time) error {
	return a.uc.Run(ctx, from, to)
}
