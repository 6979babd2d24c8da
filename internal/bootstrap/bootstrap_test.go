package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PetBot_Go/internal/config"
	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/event"
)

func testConfig(t *testing.T, vars map[string]string) *config.Config {
	t.Helper()
	cfg, err := config.FromMap(vars)
	require.NoError(t, err)
	return cfg
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		store, closeFn, err := OpenStore(ctx, testConfig(t, map[string]string{"STORE_DRIVER": "memory"}))
		require.NoError(t, err)
		assert.NoError(t, store.Ping(ctx))
		assert.NoError(t, closeFn())
	})

	t.Run("sqlite creates parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "pets.db")
		store, closeFn, err := OpenStore(ctx, testConfig(t, map[string]string{"SQLITE_PATH": path}))
		require.NoError(t, err)
		t.Cleanup(func() { _ = closeFn() })

		assert.NoError(t, store.Ping(ctx))
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := testConfig(t, nil)
		cfg.StoreDriver = "mongo"
		_, _, err := OpenStore(ctx, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mongo")
	})
}

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog(testConfig(t, nil))
	require.NoError(t, err)
	assert.NotEmpty(t, cat.SpeciesIDs())

	_, err = LoadCatalog(testConfig(t, map[string]string{"CATALOG_PATH": filepath.Join(t.TempDir(), "missing.yaml")}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgLoadCatalog)
}

func TestWiring_AdoptPublishesThroughBus(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, map[string]string{
		"STORE_DRIVER":     "memory",
		"DEAD_LETTER_PATH": filepath.Join(t.TempDir(), "logs", "deadletter.jsonl"),
	})

	store, closeFn, err := OpenStore(ctx, cfg)
	require.NoError(t, err)
	cat, err := LoadCatalog(cfg)
	require.NoError(t, err)
	bus, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	require.NoError(t, RegisterEventHandlers(bus))

	var adopted atomic.Int32
	bus.Subscribe(event.PetAdopted, func(context.Context, event.Event) error {
		adopted.Add(1)
		return nil
	})

	svcs := BuildServices(cfg, store, cat, publisher)
	_, err = svcs.Pets.Adopt(ctx, domain.NewPetKey("u1", "c1"), "Ripple", "")
	require.NoError(t, err)

	snap, err := svcs.Pets.Status(ctx, domain.NewPetKey("u1", "c1"))
	require.NoError(t, err)
	assert.Equal(t, "Ripple", snap.Name)
	assert.Equal(t, int32(1), adopted.Load())

	var closed bool
	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	GracefulShutdown(shutdownCtx, ShutdownComponents{
		ResilientPublisher: publisher,
		CloseStore: func() error {
			closed = true
			return closeFn()
		},
	})
	assert.True(t, closed)
}
