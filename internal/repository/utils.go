package repository

import (
	"context"
	"errors"

	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		// Already committed or rolled back
		if !errors.Is(err, domain.ErrTxClosed) {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}

// WithTx runs fn inside a transaction over keys, committing when fn returns
// nil and rolling back otherwise.
func WithTx(ctx context.Context, repo PetRepository, fn func(tx PetTx) error, keys ...domain.PetKey) error {
	tx, err := repo.BeginTx(ctx, keys...)
	if err != nil {
		return err
	}
	defer SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// LockedKeys tracks the key set a transaction was opened with
type LockedKeys map[domain.PetKey]struct{}

// NewLockedKeys returns the set of keys
func NewLockedKeys(keys []domain.PetKey) LockedKeys {
	set := make(LockedKeys, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// Check returns domain.ErrKeyNotLocked when key is outside the set
func (s LockedKeys) Check(key domain.PetKey) error {
	if _, ok := s[key]; !ok {
		return domain.ErrKeyNotLocked
	}
	return nil
}
