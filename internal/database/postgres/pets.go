package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/repository"
)

// PetRepository implements repository.PetRepository for PostgreSQL
type PetRepository struct {
	db  *pgxpool.Pool
	now func() time.Time
}

// NewPetRepository creates a new PetRepository. A nil clock defaults to
// time.Now.
func NewPetRepository(db *pgxpool.Pool, now func() time.Time) *PetRepository {
	if now == nil {
		now = time.Now
	}
	return &PetRepository{db: db, now: now}
}

// BeginTx opens a transaction and takes a transaction-scoped advisory lock
// for each key in sorted order.
func (r *PetRepository) BeginTx(ctx context.Context, keys ...domain.PetKey) (repository.PetTx, error) {
	sorted := domain.SortKeys(keys)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, storageErr(ErrMsgFailedToBeginTransaction, err)
	}

	for _, k := range sorted {
		if _, err := tx.Exec(ctx, queryAdvisoryLock, advisoryKey(k)); err != nil {
			SafeRollback(ctx, tx)
			return nil, storageErr(ErrMsgFailedToAcquireLock, err)
		}
	}

	return &petTx{
		tx:   tx,
		keys: repository.NewLockedKeys(sorted),
		now:  r.now(),
	}, nil
}

// GetPet reads a pet, persisting any pending decay
func (r *PetRepository) GetPet(ctx context.Context, key domain.PetKey) (*domain.Pet, error) {
	var pet *domain.Pet
	err := repository.WithTx(ctx, r, func(tx repository.PetTx) error {
		var err error
		pet, err = tx.GetPet(ctx, key)
		return err
	}, key)
	return pet, err
}

// CreatePet inserts a new pet
func (r *PetRepository) CreatePet(ctx context.Context, pet *domain.Pet) error {
	return repository.WithTx(ctx, r, func(tx repository.PetTx) error {
		return tx.CreatePet(ctx, pet)
	}, pet.Key())
}

// UpdatePet writes the set fields of update
func (r *PetRepository) UpdatePet(ctx context.Context, key domain.PetKey, update domain.PetUpdate) error {
	return repository.WithTx(ctx, r, func(tx repository.PetTx) error {
		return tx.UpdatePet(ctx, key, update)
	}, key)
}

// GetInventory lists a pet's backpack sorted by item name
func (r *PetRepository) GetInventory(ctx context.Context, key domain.PetKey) ([]domain.InventoryEntry, error) {
	var entries []domain.InventoryEntry
	err := repository.WithTx(ctx, r, func(tx repository.PetTx) error {
		var err error
		entries, err = tx.GetInventory(ctx, key)
		return err
	}, key)
	return entries, err
}

// Ping checks the pool is reachable
func (r *PetRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

var _ repository.PetRepository = (*PetRepository)(nil)
