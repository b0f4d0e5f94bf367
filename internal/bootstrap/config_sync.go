package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/enderryno/nuclearcraft-items/internal/config"
	"github.com/enderryno/nuclearcraft-items/internal/database"
	"github.com/enderryno/nuclearcraft-items/internal/database/postgres"
	"github.com/enderryno/nuclearcraft-items/internal/item"
	"github.com/enderryno/nuclearcraft-items/internal/repository"
)

// PoolConfig maps the service configuration onto database pool settings
func PoolConfig(cfg *config.Config) database.PoolConfig {
	return database.PoolConfig{
		ConnString:  cfg.GetDBConnString(),
		MaxConns:    cfg.DBMaxConns,
		MaxConnIdle: cfg.DBMaxConnIdle,
		MaxConnLife: cfg.DBMaxConnLife,
	}
}

// OpenDatabase connects to PostgreSQL and applies pending migrations.
// The caller owns the returned pool.
func OpenDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(ctx, PoolConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	return pool, nil
}

// SyncItems mirrors the sealed registry into the items table.
// Uses hash-based change detection to skip the sync when the catalog is unchanged.
func SyncItems(ctx context.Context, catalog *Catalog, repo repository.Item) (*item.SyncResult, error) {
	slog.Info(LogMsgSyncingItems)

	result, err := item.SyncToDatabase(ctx, catalog.Config, catalog.Registry, repo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncItems, err)
	}

	if result.Unchanged {
		slog.Info(LogMsgItemsUnchanged)
	} else {
		slog.Info(LogMsgItemsSynced,
			"inserted", result.ItemsInserted,
			"updated", result.ItemsUpdated,
			"skipped", result.ItemsSkipped,
			"stale", result.ItemsStale)
	}

	return result, nil
}

// StartMirror opens the database and syncs the catalog into it.
// It returns a nil pool when the mirror is disabled.
func StartMirror(ctx context.Context, cfg *config.Config, catalog *Catalog) (*pgxpool.Pool, error) {
	if !cfg.DBSyncEnabled {
		slog.Info(LogMsgMirrorDisabled)
		return nil, nil
	}

	pool, err := OpenDatabase(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if _, err := SyncItems(ctx, catalog, postgres.NewItemRepository(pool)); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
