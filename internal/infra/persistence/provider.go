// Package persistence selects the record store backend from configuration.
package persistence

import (
	"context"
	"log/slog"

	"library/config"
	"library/internal/domain/constants"
	"library/internal/domain/repository"
	"library/internal/infra/persistence/firestore"
	"library/internal/infra/persistence/memory"
	"library/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the record store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewRecordRepository creates the record store named by store.provider
func NewRecordRepository(params StoreParams) (repository.RecordRepository, error) {
	cfg := params.Config
	logger := params.Logger

	var store repository.RecordRepository

	switch cfg.Store.Provider {
	case "", constants.StoreProviderMemory:
		logger.Warn("Using in-memory record store; data is lost on restart")

		store = memory.NewRecordRepository()

	case constants.StoreProviderFirestore:
		var err error
		store, err = firestore.NewRecordRepository(params.Ctx, cfg.Firebase, logger)
		if err != nil {
			return nil, err
		}

	case constants.StoreProviderPostgres:
		db, err := postgres.New(params.Lc, cfg, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using PostgreSQL record store")

		store = postgres.NewRecordRepository(db)

	default:
		return nil, errors.Errorf("unknown store provider: %s", cfg.Store.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing record store")

			return store.Close()
		},
	})

	return store, nil
}
