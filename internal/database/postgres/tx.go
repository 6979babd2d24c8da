package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/PetBot_Go/internal/decay"
	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/repository"
)

type petTx struct {
	tx   pgx.Tx
	keys repository.LockedKeys
	now  time.Time
}

func (t *petTx) GetPet(ctx context.Context, key domain.PetKey) (*domain.Pet, error) {
	if err := t.keys.Check(key); err != nil {
		return nil, err
	}

	var p domain.Pet
	err := t.tx.QueryRow(ctx, querySelectPet, key.OwnerID, key.CommunityID).Scan(
		&p.OwnerID, &p.CommunityID, &p.Name, &p.SpeciesID,
		&p.Level, &p.Experience, &p.Stage,
		&p.Mood, &p.Satiety, &p.Attack, &p.Defense, &p.Money,
		&p.LastFedAt, &p.LastExploredAt, &p.LastDuelAt, &p.LastDecayAppliedAt, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPetNotFound
	}
	if err != nil {
		return nil, storageErr(ErrMsgFailedToGetPet, err)
	}

	if hours := decay.Resolve(&p, t.now); hours > 0 {
		_, err := t.tx.Exec(ctx, queryPersistDecay,
			key.OwnerID, key.CommunityID, p.Satiety, p.Mood, p.LastDecayAppliedAt)
		if err != nil {
			return nil, storageErr(ErrMsgFailedToPersistDecay, err)
		}
	}
	return &p, nil
}

func (t *petTx) CreatePet(ctx context.Context, p *domain.Pet) error {
	if err := t.keys.Check(p.Key()); err != nil {
		return err
	}
	_, err := t.tx.Exec(ctx, queryInsertPet,
		p.OwnerID, p.CommunityID, p.Name, p.SpeciesID,
		p.Level, p.Experience, p.Stage,
		p.Mood, p.Satiety, p.Attack, p.Defense, p.Money,
		p.LastFedAt, p.LastExploredAt, p.LastDuelAt, p.LastDecayAppliedAt, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPetAlreadyExists
		}
		return storageErr(ErrMsgFailedToCreatePet, err)
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
	tag, err := t.tx.Exec(ctx, queryUpdatePet,
		key.OwnerID, key.CommunityID,
		u.Level, u.Experience, u.Stage,
		u.Mood, u.Satiety, u.Attack,
		u.Defense, u.Money,
		u.LastFedAt, u.LastExploredAt, u.LastDuelAt, u.LastDecayAppliedAt,
	)
	if err != nil {
		return storageErr(ErrMsgFailedToUpdatePet, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPetNotFound
	}
	return nil
}

func (t *petTx) GetInventory(ctx context.Context, key domain.PetKey) ([]domain.InventoryEntry, error) {
	if err := t.keys.Check(key); err != nil {
		return nil, err
	}
	rows, err := t.tx.Query(ctx, querySelectInventory, key.OwnerID, key.CommunityID)
	if err != nil {
		return nil, storageErr(ErrMsgFailedToGetInventory, err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InventoryEntry, error) {
		var e domain.InventoryEntry
		err := row.Scan(&e.ItemName, &e.Quantity)
		return e, err
	})
	if err != nil {
		return nil, storageErr(ErrMsgFailedToGetInventory, err)
	}
	if entries == nil {
		entries = []domain.InventoryEntry{}
	}
	return entries, nil
}

func (t *petTx) GetInventoryQuantity(ctx context.Context, key domain.PetKey, itemName string) (int, error) {
	if err := t.keys.Check(key); err != nil {
		return 0, err
	}
	var qty int
	err := t.tx.QueryRow(ctx, querySelectQuantity, key.OwnerID, key.CommunityID, itemName).Scan(&qty)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, storageErr(ErrMsgFailedToGetItemQuantity, err)
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
		_, err = t.tx.Exec(ctx, queryDeleteItem, key.OwnerID, key.CommunityID, itemName)
	case current == 0:
		_, err = t.tx.Exec(ctx, queryInsertItem, key.OwnerID, key.CommunityID, itemName, next)
	default:
		_, err = t.tx.Exec(ctx, queryUpdateItem, key.OwnerID, key.CommunityID, itemName, next)
	}
	if err != nil {
		return 0, storageErr(ErrMsgFailedToWriteInventory, err)
	}
	return next, nil
}

func (t *petTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return domain.ErrTxClosed
		}
		return storageErr(ErrMsgFailedToCommit, err)
	}
	return nil
}

func (t *petTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return domain.ErrTxClosed
		}
		return storageErr(ErrMsgFailedToRollback, err)
	}
	return nil
}
