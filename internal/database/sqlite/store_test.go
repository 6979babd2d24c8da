package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/repository"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: baseTime}
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "pets.db"), clock.Now)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, clock
}

func newPet(owner, community string) *domain.Pet {
	return &domain.Pet{
		OwnerID:            owner,
		CommunityID:        community,
		Name:               "Bubbles",
		SpeciesID:          "water_sprite",
		Level:              domain.StartingLevel,
		Stage:              domain.StartingStage,
		Mood:               domain.DefaultMood,
		Satiety:            domain.DefaultSatiety,
		Attack:             8,
		Defense:            12,
		Money:              domain.DefaultMoney,
		LastFedAt:          baseTime,
		LastExploredAt:     baseTime,
		LastDuelAt:         baseTime,
		LastDecayAppliedAt: baseTime,
		CreatedAt:          baseTime,
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	pet := newPet("u1", "g1")

	require.NoError(t, store.CreatePet(ctx, pet))

	got, err := store.GetPet(ctx, pet.Key())
	require.NoError(t, err)
	assert.Equal(t, pet.Name, got.Name)
	assert.Equal(t, pet.Attack, got.Attack)
	assert.Equal(t, pet.Money, got.Money)
	assert.True(t, baseTime.Equal(got.LastDecayAppliedAt))
	assert.True(t, baseTime.Equal(got.CreatedAt))
}

func TestStore_CreateDuplicate(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreatePet(ctx, newPet("u1", "g1")))
	err := store.CreatePet(ctx, newPet("u1", "g1"))
	assert.ErrorIs(t, err, domain.ErrPetAlreadyExists)

	// Same owner in another community is a different pet
	assert.NoError(t, store.CreatePet(ctx, newPet("u1", "g2")))
}

func TestStore_GetMissing(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.GetPet(context.Background(), domain.NewPetKey("nobody", "g1"))
	assert.ErrorIs(t, err, domain.ErrPetNotFound)
}

func TestStore_DecayPersistedOnRead(t *testing.T) {
	store, clock := newTestStore(t)
	ctx := context.Background()
	pet := newPet("u1", "g1")
	require.NoError(t, store.CreatePet(ctx, pet))

	clock.Advance(5*time.Hour + 30*time.Minute)

	got, err := store.GetPet(ctx, pet.Key())
	require.NoError(t, err)
	assert.Equal(t, 65, got.Satiety)
	assert.Equal(t, 90, got.Mood)
	assert.True(t, baseTime.Add(5*time.Hour).Equal(got.LastDecayAppliedAt))

	// A second read inside the same hour decays nothing more
	again, err := store.GetPet(ctx, pet.Key())
	require.NoError(t, err)
	assert.Equal(t, 65, again.Satiety)
	assert.Equal(t, 90, again.Mood)

	// The leftover 30 minutes carry into the next hour
	clock.Advance(30 * time.Minute)
	later, err := store.GetPet(ctx, pet.Key())
	require.NoError(t, err)
	assert.Equal(t, 62, later.Satiety)
	assert.Equal(t, 88, later.Mood)
}

func TestStore_UpdatePartial(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	pet := newPet("u1", "g1")
	require.NoError(t, store.CreatePet(ctx, pet))

	fedAt := baseTime.Add(10 * time.Minute)
	err := store.UpdatePet(ctx, pet.Key(), domain.PetUpdate{
		Money:     domain.Int(7),
		LastFedAt: domain.Time(fedAt),
	})
	require.NoError(t, err)

	got, err := store.GetPet(ctx, pet.Key())
	require.NoError(t, err)
	assert.Equal(t, 7, got.Money)
	assert.True(t, fedAt.Equal(got.LastFedAt))
	assert.Equal(t, pet.Satiety, got.Satiety)
	assert.Equal(t, pet.Level, got.Level)
}

func TestStore_UpdateMissing(t *testing.T) {
	store, _ := newTestStore(t)
	err := store.UpdatePet(context.Background(), domain.NewPetKey("x", "y"), domain.PetUpdate{Money: domain.Int(1)})
	assert.ErrorIs(t, err, domain.ErrPetNotFound)
}

func TestStore_UpdateViolatingCheckFails(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	pet := newPet("u1", "g1")
	require.NoError(t, store.CreatePet(ctx, pet))

	err := store.UpdatePet(ctx, pet.Key(), domain.PetUpdate{Money: domain.Int(-1)})
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
}

func TestTx_InventoryLifecycle(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	pet := newPet("u1", "g1")
	key := pet.Key()
	require.NoError(t, store.CreatePet(ctx, pet))

	err := repository.WithTx(ctx, store, func(tx repository.PetTx) error {
		qty, err := tx.AddInventory(ctx, key, "basic ration", 3)
		require.NoError(t, err)
		assert.Equal(t, 3, qty)

		qty, err = tx.AddInventory(ctx, key, "basic ration", -1)
		require.NoError(t, err)
		assert.Equal(t, 2, qty)

		_, err = tx.AddInventory(ctx, key, "tasty can", 1)
		require.NoError(t, err)
		return nil
	}, key)
	require.NoError(t, err)

	entries, err := store.GetInventory(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []domain.InventoryEntry{
		{ItemName: "basic ration", Quantity: 2},
		{ItemName: "tasty can", Quantity: 1},
	}, entries)

	err = repository.WithTx(ctx, store, func(tx repository.PetTx) error {
		qty, err := tx.AddInventory(ctx, key, "tasty can", -1)
		require.NoError(t, err)
		assert.Equal(t, 0, qty)

		_, err = tx.AddInventory(ctx, key, "tasty can", -1)
		assert.ErrorIs(t, err, domain.ErrOutOfStock)
		return nil
	}, key)
	require.NoError(t, err)

	entries, err = store.GetInventory(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []domain.InventoryEntry{{ItemName: "basic ration", Quantity: 2}}, entries)
}

func TestTx_EmptyInventory(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	pet := newPet("u1", "g1")
	require.NoError(t, store.CreatePet(ctx, pet))

	entries, err := store.GetInventory(ctx, pet.Key())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTx_RejectsUnlockedKey(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.CreatePet(ctx, newPet("u1", "g1")))
	require.NoError(t, store.CreatePet(ctx, newPet("u2", "g1")))

	tx, err := store.BeginTx(ctx, domain.NewPetKey("u1", "g1"))
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	_, err = tx.GetPet(ctx, domain.NewPetKey("u2", "g1"))
	assert.ErrorIs(t, err, domain.ErrKeyNotLocked)

	_, err = tx.AddInventory(ctx, domain.NewPetKey("u2", "g1"), "basic ration", 1)
	assert.ErrorIs(t, err, domain.ErrKeyNotLocked)
}

func TestTx_RollbackDiscardsWrites(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	pet := newPet("u1", "g1")
	require.NoError(t, store.CreatePet(ctx, pet))

	tx, err := store.BeginTx(ctx, pet.Key())
	require.NoError(t, err)
	require.NoError(t, tx.UpdatePet(ctx, pet.Key(), domain.PetUpdate{Money: domain.Int(0)}))
	_, err = tx.AddInventory(ctx, pet.Key(), "basic ration", 1)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))

	got, err := store.GetPet(ctx, pet.Key())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMoney, got.Money)

	entries, err := store.GetInventory(ctx, pet.Key())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTx_RollbackAfterCommitIsClosed(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	tx, err := store.BeginTx(ctx, domain.NewPetKey("u1", "g1"))
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
	assert.ErrorIs(t, tx.Rollback(ctx), domain.ErrTxClosed)
}

func TestTx_ConcurrentIncrementsAreSerialized(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	pet := newPet("u1", "g1")
	require.NoError(t, store.CreatePet(ctx, pet))

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repository.WithTx(ctx, store, func(tx repository.PetTx) error {
				p, err := tx.GetPet(ctx, pet.Key())
				if err != nil {
					return err
				}
				return tx.UpdatePet(ctx, pet.Key(), domain.PetUpdate{Money: domain.Int(p.Money + 1)})
			}, pet.Key())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := store.GetPet(ctx, pet.Key())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMoney+workers, got.Money)
}

func TestTx_OppositeKeyOrderDoesNotDeadlock(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	a := newPet("a", "g1")
	b := newPet("b", "g1")
	require.NoError(t, store.CreatePet(ctx, a))
	require.NoError(t, store.CreatePet(ctx, b))

	transfer := func(from, to domain.PetKey) error {
		return repository.WithTx(ctx, store, func(tx repository.PetTx) error {
			pf, err := tx.GetPet(ctx, from)
			if err != nil {
				return err
			}
			pt, err := tx.GetPet(ctx, to)
			if err != nil {
				return err
			}
			if err := tx.UpdatePet(ctx, from, domain.PetUpdate{Money: domain.Int(pf.Money - 1)}); err != nil {
				return err
			}
			return tx.UpdatePet(ctx, to, domain.PetUpdate{Money: domain.Int(pt.Money + 1)})
		}, from, to)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, transfer(a.Key(), b.Key()))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, transfer(b.Key(), a.Key()))
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("transfers deadlocked")
	}

	ga, err := store.GetPet(ctx, a.Key())
	require.NoError(t, err)
	gb, err := store.GetPet(ctx, b.Key())
	require.NoError(t, err)
	assert.Equal(t, 2*domain.DefaultMoney, ga.Money+gb.Money)
	assert.Equal(t, domain.DefaultMoney, ga.Money)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open(context.Background(), "  ", nil)
	assert.Error(t, err)
}
