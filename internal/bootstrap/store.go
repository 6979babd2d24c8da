package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/PetBot_Go/internal/config"
	"github.com/osse101/PetBot_Go/internal/database"
	"github.com/osse101/PetBot_Go/internal/database/migrations"
	"github.com/osse101/PetBot_Go/internal/database/postgres"
	"github.com/osse101/PetBot_Go/internal/database/sqlite"
	"github.com/osse101/PetBot_Go/internal/repository"
	"github.com/osse101/PetBot_Go/internal/repository/memory"
)

// Store is a pet repository that can report its health
type Store interface {
	repository.PetRepository
	Ping(ctx context.Context) error
}

// OpenStore opens the pet store selected by cfg.StoreDriver and applies the
// schema. The returned func releases the store.
func OpenStore(ctx context.Context, cfg *config.Config) (Store, func() error, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver)
		return memory.NewStore(nil), func() error { return nil }, nil

	case config.DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), DirPermission); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgCreateSQLiteDir, err)
		}
		store, err := sqlite.Open(ctx, cfg.SQLitePath, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgOpenSQLite, err)
		}
		slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver, "path", cfg.SQLitePath)
		return store, store.Close, nil

	case config.DriverPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgConnectPostgres, err)
		}
		db := database.StdDB(pool)
		version, err := migrations.Up(ctx, db, migrations.Postgres)
		_ = db.Close()
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgMigratePostgres, err)
		}
		slog.Info(LogMsgMigrationsApplied, "dialect", migrations.Postgres, "version", version)
		slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver, "host", cfg.DBHost, "db", cfg.DBName)
		return postgres.NewPetRepository(pool, nil), func() error { pool.Close(); return nil }, nil
	}

	return nil, nil, fmt.Errorf(ErrMsgUnknownDriver, cfg.StoreDriver)
}
