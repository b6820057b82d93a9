package main

import (
	"context"
	"log/slog"

	"brandcollab/internal/adapter/memory"
	"brandcollab/internal/adapter/postgres"
	"brandcollab/internal/config"
	"brandcollab/internal/config/configs"
	"brandcollab/internal/core/port"
	"brandcollab/internal/db"
)

// stores bundles the repositories selected by STORE_DRIVER.
type stores struct {
	campaigns    port.CampaignRepository
	applications port.ApplicationRepository
	close        func()
}

func openStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (stores, error) {
	if cfg.Store.DriverName() == configs.StoreDriverMemory {
		logger.Warn("using in-memory store; data is lost on exit")
		s := memory.NewStore()
		return stores{campaigns: s, applications: s, close: func() {}}, nil
	}

	var queryLogger *slog.Logger
	if cfg.Log.Queries {
		queryLogger = logger.With(slog.String("component", "pgx"))
	}
	pool, err := db.NewPostgresPool(ctx, cfg.Psql, queryLogger)
	if err != nil {
		return stores{}, err
	}
	return stores{
		campaigns:    postgres.NewCampaignRepository(pool),
		applications: postgres.NewApplicationRepository(pool),
		close:        pool.Close,
	}, nil
}
