// Package memory provides an in-process PetRepository. It backs tests and
// the "memory" storage driver; nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/osse101/PetBot_Go/internal/concurrency"
	"github.com/osse101/PetBot_Go/internal/decay"
	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/repository"
)

// Store keeps pets and backpacks in maps guarded by per-key locks
type Store struct {
	mu        sync.Mutex
	pets      map[domain.PetKey]*domain.Pet
	inventory map[domain.PetKey]map[string]int
	locks     *concurrency.LockManager
	now       func() time.Time
}

// NewStore creates an empty Store. A nil clock defaults to time.Now.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		pets:      make(map[domain.PetKey]*domain.Pet),
		inventory: make(map[domain.PetKey]map[string]int),
		locks:     concurrency.NewLockManager(),
		now:       now,
	}
}

// BeginTx locks keys in sorted order and stages writes until Commit
func (s *Store) BeginTx(ctx context.Context, keys ...domain.PetKey) (repository.PetTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sorted := domain.SortKeys(keys)
	names := make([]string, len(sorted))
	for i, k := range sorted {
		names[i] = k.String()
	}

	return &tx{
		store:     s,
		keys:      repository.NewLockedKeys(sorted),
		release:   s.locks.LockKeys(names...),
		now:       s.now(),
		pets:      make(map[domain.PetKey]*domain.Pet),
		inventory: make(map[domain.PetKey]map[string]int),
	}, nil
}

// GetPet reads a pet, persisting any pending decay
func (s *Store) GetPet(ctx context.Context, key domain.PetKey) (*domain.Pet, error) {
	var pet *domain.Pet
	err := repository.WithTx(ctx, s, func(t repository.PetTx) error {
		var err error
		pet, err = t.GetPet(ctx, key)
		return err
	}, key)
	return pet, err
}

// CreatePet inserts a new pet
func (s *Store) CreatePet(ctx context.Context, pet *domain.Pet) error {
	return repository.WithTx(ctx, s, func(t repository.PetTx) error {
		return t.CreatePet(ctx, pet)
	}, pet.Key())
}

// UpdatePet writes the set fields of update
func (s *Store) UpdatePet(ctx context.Context, key domain.PetKey, update domain.PetUpdate) error {
	return repository.WithTx(ctx, s, func(t repository.PetTx) error {
		return t.UpdatePet(ctx, key, update)
	}, key)
}

// GetInventory lists a pet's backpack sorted by item name
func (s *Store) GetInventory(ctx context.Context, key domain.PetKey) ([]domain.InventoryEntry, error) {
	var entries []domain.InventoryEntry
	err := repository.WithTx(ctx, s, func(t repository.PetTx) error {
		var err error
		entries, err = t.GetInventory(ctx, key)
		return err
	}, key)
	return entries, err
}

// Ping always succeeds
func (s *Store) Ping(context.Context) error {
	return nil
}

func (s *Store) loadPet(key domain.PetKey) (*domain.Pet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pets[key]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

func (s *Store) loadInventory(key domain.PetKey) map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.inventory[key]))
	for name, qty := range s.inventory[key] {
		out[name] = qty
	}
	return out
}

type tx struct {
	store   *Store
	keys    repository.LockedKeys
	release func()
	now     time.Time
	done    bool

	pets      map[domain.PetKey]*domain.Pet
	inventory map[domain.PetKey]map[string]int
}

func (t *tx) check(key domain.PetKey) error {
	if t.done {
		return domain.ErrTxClosed
	}
	return t.keys.Check(key)
}

func (t *tx) pet(key domain.PetKey) (*domain.Pet, bool) {
	if p, ok := t.pets[key]; ok {
		return p, true
	}
	p, ok := t.store.loadPet(key)
	if ok {
		t.pets[key] = p
	}
	return p, ok
}

func (t *tx) bag(key domain.PetKey) map[string]int {
	if b, ok := t.inventory[key]; ok {
		return b
	}
	b := t.store.loadInventory(key)
	t.inventory[key] = b
	return b
}

func (t *tx) GetPet(_ context.Context, key domain.PetKey) (*domain.Pet, error) {
	if err := t.check(key); err != nil {
		return nil, err
	}
	p, ok := t.pet(key)
	if !ok {
		return nil, domain.ErrPetNotFound
	}
	decay.Resolve(p, t.now)
	return p.Clone(), nil
}

func (t *tx) CreatePet(_ context.Context, p *domain.Pet) error {
	if err := t.check(p.Key()); err != nil {
		return err
	}
	if _, ok := t.pet(p.Key()); ok {
		return domain.ErrPetAlreadyExists
	}
	if err := p.Validate(); err != nil {
		return err
	}
	t.pets[p.Key()] = p.Clone()
	return nil
}

func (t *tx) UpdatePet(_ context.Context, key domain.PetKey, u domain.PetUpdate) error {
	if err := t.check(key); err != nil {
		return err
	}
	p, ok := t.pet(key)
	if !ok {
		return domain.ErrPetNotFound
	}
	next := p.Clone()
	u.Apply(next)
	if err := next.Validate(); err != nil {
		return err
	}
	t.pets[key] = next
	return nil
}

func (t *tx) GetInventory(_ context.Context, key domain.PetKey) ([]domain.InventoryEntry, error) {
	if err := t.check(key); err != nil {
		return nil, err
	}
	b := t.bag(key)
	entries := make([]domain.InventoryEntry, 0, len(b))
	for name, qty := range b {
		entries = append(entries, domain.InventoryEntry{ItemName: name, Quantity: qty})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ItemName < entries[j].ItemName })
	return entries, nil
}

func (t *tx) GetInventoryQuantity(_ context.Context, key domain.PetKey, itemName string) (int, error) {
	if err := t.check(key); err != nil {
		return 0, err
	}
	return t.bag(key)[itemName], nil
}

func (t *tx) AddInventory(_ context.Context, key domain.PetKey, itemName string, delta int) (int, error) {
	if err := t.check(key); err != nil {
		return 0, err
	}
	b := t.bag(key)
	current := b[itemName]
	next := current + delta
	switch {
	case next < 0:
		return current, domain.ErrOutOfStock
	case next == 0:
		delete(b, itemName)
	default:
		b[itemName] = next
	}
	return next, nil
}

func (t *tx) Commit(context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	t.done = true
	defer t.release()

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for key, p := range t.pets {
		t.store.pets[key] = p
	}
	for key, b := range t.inventory {
		t.store.inventory[key] = b
	}
	return nil
}

func (t *tx) Rollback(context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	t.done = true
	t.release()
	return nil
}

var _ repository.PetRepository = (*Store)(nil)
