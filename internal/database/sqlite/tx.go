package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/osse101/PetBot_Go/internal/decay"
	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/repository"
)

type petTx struct {
	tx      *sql.Tx
	keys    repository.LockedKeys
	release func()
	now     time.Time
}

func (t *petTx) GetPet(ctx context.Context, key domain.PetKey) (*domain.Pet, error) {
	if err := t.keys.Check(key); err != nil {
		return nil, err
	}

	var (
		p                                    domain.Pet
		fedAt, exploredAt, duelAt, decayedAt int64
		createdAt                            int64
	)
	err := t.tx.QueryRowContext(ctx, querySelectPet, key.OwnerID, key.CommunityID).Scan(
		&p.OwnerID, &p.CommunityID, &p.Name, &p.SpeciesID,
		&p.Level, &p.Experience, &p.Stage,
		&p.Mood, &p.Satiety, &p.Attack, &p.Defense, &p.Money,
		&fedAt, &exploredAt, &duelAt, &decayedAt, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPetNotFound
	}
	if err != nil {
		return nil, storageErr(ErrMsgGetPet, err)
	}
	p.LastFedAt = fromMillis(fedAt)
	p.LastExploredAt = fromMillis(exploredAt)
	p.LastDuelAt = fromMillis(duelAt)
	p.LastDecayAppliedAt = fromMillis(decayedAt)
	p.CreatedAt = fromMillis(createdAt)

	if hours := decay.Resolve(&p, t.now); hours > 0 {
		_, err := t.tx.ExecContext(ctx, queryPersistDecay,
			p.Satiety, p.Mood, toMillis(p.LastDecayAppliedAt),
			key.OwnerID, key.CommunityID)
		if err != nil {
			return nil, storageErr(ErrMsgPersistDecay, err)
		}
	}
	return &p, nil
}

func (t *petTx) CreatePet(ctx context.Context, p *domain.Pet) error {
	if err := t.keys.Check(p.Key()); err != nil {
		return err
	}
	_, err := t.tx.ExecContext(ctx, queryInsertPet,
		p.OwnerID, p.CommunityID, p.Name, p.SpeciesID,
		p.Level, p.Experience, p.Stage,
		p.Mood, p.Satiety, p.Attack, p.Defense, p.Money,
		toMillis(p.LastFedAt), toMillis(p.LastExploredAt), toMillis(p.LastDuelAt),
		toMillis(p.LastDecayAppliedAt), toMillis(p.CreatedAt),
	)
	if err != nil {
		if isPrimaryKeyViolation(err) {
			return domain.ErrPetAlreadyExists
		}
		return storageErr(ErrMsgCreatePet, err)
	}
	return nil
}

func (t *petTx) UpdatePet(ctx context.Context, key domain.PetKey, u domain.PetUpdate) error {
	if err := t.keys.Check(key); err != nil {
		return err
	}
	if u.IsEmpty() {
		return nil
	}
	res, err := t.tx.ExecContext(ctx, queryUpdatePet,
		u.Level, u.Experience, u.Stage,
		u.Mood, u.Satiety, u.Attack, u.Defense, u.Money,
		millisPtr(u.LastFedAt), millisPtr(u.LastExploredAt),
		millisPtr(u.LastDuelAt), millisPtr(u.LastDecayAppliedAt),
		key.OwnerID, key.CommunityID,
	)
	if err != nil {
		return storageErr(ErrMsgUpdatePet, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr(ErrMsgUpdatePet, err)
	}
	if n == 0 {
		return domain.ErrPetNotFound
	}
	return nil
}

func (t *petTx) GetInventory(ctx context.Context, key domain.PetKey) ([]domain.InventoryEntry, error) {
	if err := t.keys.Check(key); err != nil {
		return nil, err
	}
	rows, err := t.tx.QueryContext(ctx, querySelectInventory, key.OwnerID, key.CommunityID)
	if err != nil {
		return nil, storageErr(ErrMsgGetInventory, err)
	}
	defer rows.Close()

	entries := []domain.InventoryEntry{}
	for rows.Next() {
		var e domain.InventoryEntry
		if err := rows.Scan(&e.ItemName, &e.Quantity); err != nil {
			return nil, storageErr(ErrMsgGetInventory, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(ErrMsgGetInventory, err)
	}
	return entries, nil
}

func (t *petTx) GetInventoryQuantity(ctx context.Context, key domain.PetKey, itemName string) (int, error) {
	if err := t.keys.Check(key); err != nil {
		return 0, err
	}
	var qty int
	err := t.tx.QueryRowContext(ctx, querySelectQuantity, key.OwnerID, key.CommunityID, itemName).Scan(&qty)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, storageErr(ErrMsgGetItemQuantity, err)
	}
	return qty, nil
}

func (t *petTx) AddInventory(ctx context.Context, key domain.PetKey, itemName string, delta int) (int, error) {
	current, err := t.GetInventoryQuantity(ctx, key, itemName)
	if err != nil {
		return 0, err
	}

	next := current + delta
	switch {
	case next < 0:
		return current, domain.ErrOutOfStock
	case delta == 0:
		return current, nil
	case next == 0:
		_, err = t.tx.ExecContext(ctx, queryDeleteItem, key.OwnerID, key.CommunityID, itemName)
	case current == 0:
		_, err = t.tx.ExecContext(ctx, queryInsertItem, key.OwnerID, key.CommunityID, itemName, next)
	default:
		_, err = t.tx.ExecContext(ctx, queryUpdateItem, next, key.OwnerID, key.CommunityID, itemName)
	}
	if err != nil {
		return 0, storageErr(ErrMsgWriteInventory, err)
	}
	return next, nil
}

func (t *petTx) Commit(ctx context.Context) error {
	defer t.release()
	if err := t.tx.Commit(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return domain.ErrTxClosed
		}
		return storageErr(ErrMsgCommit, err)
	}
	return nil
}

func (t *petTx) Rollback(ctx context.Context) error {
	defer t.release()
	if err := t.tx.Rollback(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return domain.ErrTxClosed
		}
		return storageErr(ErrMsgRollback, err)
	}
	return nil
}
