// Package sqlite provides a SQLite-backed pet repository.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/osse101/PetBot_Go/internal/concurrency"
	"github.com/osse101/PetBot_Go/internal/database/migrations"
	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/repository"
)

// Store persists pets in a single SQLite file. Writers are serialized through
// one connection and per-key locks are held in process.
type Store struct {
	db    *sql.DB
	locks *concurrency.LockManager
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func millisPtr(value *time.Time) *int64 {
	if value == nil {
		return nil
	}
	ms := toMillis(*value)
	return &ms
}

// Open opens the database at path and applies embedded migrations. A nil
// clock defaults to time.Now.
func Open(ctx context.Context, path string, now func() time.Time) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(ErrMsgPathRequired)
	}
	dsn := "file:" + filepath.Clean(path) + dsnParams
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenDB, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgPingDB, err)
	}
	if _, err := migrations.Up(ctx, db, migrations.SQLite); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgRunMigrations, err)
	}
	return New(db, now), nil
}

// New wraps an already migrated database handle
func New(db *sql.DB, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{db: db, locks: concurrency.NewLockManager(), now: now}
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping checks the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// BeginTx locks every key in sorted order, then opens a transaction. The
// locks are released when the transaction commits or rolls back.
func (s *Store) BeginTx(ctx context.Context, keys ...domain.PetKey) (repository.PetTx, error) {
	sorted := domain.SortKeys(keys)
	names := make([]string, len(sorted))
	for i, k := range sorted {
		names[i] = k.String()
	}

	release := s.locks.LockKeys(names...)
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		release()
		return nil, storageErr(ErrMsgBeginTx, err)
	}

	return &petTx{
		tx:      sqlTx,
		keys:    repository.NewLockedKeys(sorted),
		release: release,
		now:     s.now(),
	}, nil
}

// GetPet reads a pet, persisting any pending decay
func (s *Store) GetPet(ctx context.Context, key domain.PetKey) (*domain.Pet, error) {
	var pet *domain.Pet
	err := repository.WithTx(ctx, s, func(tx repository.PetTx) error {
		var err error
		pet, err = tx.GetPet(ctx, key)
		return err
	}, key)
	return pet, err
}

// CreatePet inserts a new pet
func (s *Store) CreatePet(ctx context.Context, pet *domain.Pet) error {
	return repository.WithTx(ctx, s, func(tx repository.PetTx) error {
		return tx.CreatePet(ctx, pet)
	}, pet.Key())
}

// UpdatePet writes the set fields of update
func (s *Store) UpdatePet(ctx context.Context, key domain.PetKey, update domain.PetUpdate) error {
	return repository.WithTx(ctx, s, func(tx repository.PetTx) error {
		return tx.UpdatePet(ctx, key, update)
	}, key)
}

// GetInventory lists a pet's backpack sorted by item name
func (s *Store) GetInventory(ctx context.Context, key domain.PetKey) ([]domain.InventoryEntry, error) {
	var entries []domain.InventoryEntry
	err := repository.WithTx(ctx, s, func(tx repository.PetTx) error {
		var err error
		entries, err = tx.GetInventory(ctx, key)
		return err
	}, key)
	return entries, err
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageFailure, err)
}

func isPrimaryKeyViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}

var _ repository.PetRepository = (*Store)(nil)
