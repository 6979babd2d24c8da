package repository

import (
	"context"

	"github.com/osse101/PetBot_Go/internal/domain"
)

// Pets defines the read and write operations on pets and their backpacks
type Pets interface {
	GetPet(ctx context.Context, key domain.PetKey) (*domain.Pet, error)
	CreatePet(ctx context.Context, pet *domain.Pet) error
	UpdatePet(ctx context.Context, key domain.PetKey, update domain.PetUpdate) error
	GetInventory(ctx context.Context, key domain.PetKey) ([]domain.InventoryEntry, error)
}

// PetRepository is the persistent store for pets
type PetRepository interface {
	Pets

	// BeginTx opens a transaction holding exclusive access to every key.
	// Keys are locked in sorted order.
	BeginTx(ctx context.Context, keys ...domain.PetKey) (PetTx, error)
}

// PetTx is a transaction over a fixed set of locked pet keys. Operations on
// any other key fail with domain.ErrKeyNotLocked.
type PetTx interface {
	Tx
	Pets

	GetInventoryQuantity(ctx context.Context, key domain.PetKey, itemName string) (int, error)
	// AddInventory adds delta to an item stack and returns the new quantity.
	// A stack that reaches zero is removed.
	AddInventory(ctx context.Context, key domain.PetKey, itemName string, delta int) (int, error)
}
