package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/PetBot_Go/internal/config"
	"github.com/osse101/PetBot_Go/internal/database"
	"github.com/osse101/PetBot_Go/internal/database/migrations"
	"github.com/osse101/PetBot_Go/internal/database/sqlite"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply pending schema migrations to the configured store"
}

func (c *MigrateCommand) Run(ctx context.Context, cfg *config.Config, _ []string) error {
	PrintHeader("Migrating " + cfg.StoreDriver + " store")
	if cfg.StoreDriver == config.DriverMemory {
		PrintInfo("Memory store has no schema, nothing to do")
		return nil
	}
	if err := migrate(ctx, cfg); err != nil {
		return err
	}
	PrintSuccess("Schema is up to date")
	return nil
}

// migrate brings the configured store's schema up to date
func migrate(ctx context.Context, cfg *config.Config) error {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return nil

	case config.DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
		// Open applies the embedded migrations
		store, err := sqlite.Open(ctx, cfg.SQLitePath, nil)
		if err != nil {
			return err
		}
		return store.Close()

	case config.DriverPostgres:
		PrintInfo("Connecting to %s", redactPassword(cfg.GetDBConnString()))
		pool, err := database.NewPool(cfg.GetDBConnString(), 2, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
		if err != nil {
			return err
		}
		defer pool.Close()

		db := database.StdDB(pool)
		defer db.Close()
		version, err := migrations.Up(ctx, db, migrations.Postgres)
		if err != nil {
			return err
		}
		PrintInfo("Postgres schema version %d", version)
		return nil
	}
	return fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
