package pet

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PetBot_Go/internal/catalog"
	"github.com/osse101/PetBot_Go/internal/cooldown"
	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/event"
	"github.com/osse101/PetBot_Go/internal/progression"
	"github.com/osse101/PetBot_Go/internal/repository/memory"
	"github.com/osse101/PetBot_Go/internal/status"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	events []event.Event
}

func (p *recordingPublisher) PublishWithRetry(_ context.Context, evt event.Event) {
	p.events = append(p.events, evt)
}

type testEnv struct {
	svc   *service
	store *memory.Store
	pub   *recordingPublisher
	clock time.Time
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{clock: testNow, pub: &recordingPublisher{}}
	now := func() time.Time { return env.clock }
	env.store = memory.NewStore(now)
	env.svc = NewService(env.store, catalog.Default(), cooldown.NewGate(cooldown.Config{}), nil, env.pub).(*service)
	env.svc.now = now
	env.svc.engine = progression.NewEngine(func(min, _ int) int { return min })
	return env
}

func TestAdopt_RippleThenDuplicate(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	env := newEnv(t)
	key := domain.NewPetKey("u1", "g1")

	// ACT
	p, err := env.svc.Adopt(ctx, key, "Ripple", "water_sprite")

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, "Ripple", p.Name)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 8, p.Attack)
	assert.Equal(t, 12, p.Defense)
	assert.Equal(t, 50, p.Money)
	assert.Equal(t, 100, p.Mood)
	assert.Equal(t, 80, p.Satiety)
	assert.True(t, p.LastDecayAppliedAt.Equal(testNow))
	assert.Equal(t, int64(0), p.LastExploredAt.Unix())

	stored, err := env.store.GetPet(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, p, stored)

	_, err = env.svc.Adopt(ctx, key, "Ripple", "water_sprite")
	assert.ErrorIs(t, err, domain.ErrPetAlreadyExists)

	require.Len(t, env.pub.events, 1)
	assert.Equal(t, event.PetAdopted, env.pub.events[0].Type)
}

func TestAdopt_Defaults(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)
	env.svc.rnd = func() float64 { return 0.99 }

	p, err := env.svc.Adopt(ctx, domain.NewPetKey("u2", "g1"), "  ", "")

	require.NoError(t, err)
	assert.Equal(t, "leafy_cat", p.SpeciesID)
	assert.Equal(t, "Leafy Cat", p.Name)
}

func TestAdopt_Rejections(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		key     domain.PetKey
		petName string
		species string
		wantErr error
	}{
		{"unknown species", domain.NewPetKey("u1", "g1"), "x", "dragon", domain.ErrSpeciesNotFound},
		{"missing owner", domain.NewPetKey("", "g1"), "x", "", domain.ErrInvalidInput},
		{"missing community", domain.NewPetKey("u1", " "), "x", "", domain.ErrInvalidInput},
		{"long name", domain.NewPetKey("u1", "g1"), strings.Repeat("a", MaxNameLength+1), "", domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.Adopt(ctx, tt.key, tt.petName, tt.species)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Empty(t, env.pub.events)
}

func TestStatus_ResolvesDecay(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)
	key := domain.NewPetKey("u1", "g1")
	_, err := env.svc.Adopt(ctx, key, "Ripple", "water_sprite")
	require.NoError(t, err)

	env.clock = testNow.Add(5 * time.Hour)
	snap, err := env.svc.Status(ctx, key)

	require.NoError(t, err)
	assert.Equal(t, 65, snap.Satiety)
	assert.Equal(t, 90, snap.Mood)
	assert.Equal(t, "Water Sprite", snap.StageName)
	assert.Zero(t, snap.ExploreReadyIn)

	_, err = env.svc.Status(ctx, domain.NewPetKey("nobody", "g1"))
	assert.ErrorIs(t, err, domain.ErrPetNotFound)
}

func TestCard_UsesRenderer(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)
	key := domain.NewPetKey("u1", "g1")
	_, err := env.svc.Adopt(ctx, key, "Ripple", "water_sprite")
	require.NoError(t, err)

	out, err := env.svc.Card(ctx, key, "Ash")

	require.NoError(t, err)
	assert.Equal(t, status.ContentTypeText, out.ContentType)
	assert.Contains(t, string(out.Body), "Owner: Ash")
}

func TestEvolve(t *testing.T) {
	ctx := context.Background()
	key := domain.NewPetKey("u1", "g1")

	tests := []struct {
		name    string
		level   int
		stage   int
		wantErr error
	}{
		{"level 29 is too low", 29, 1, domain.ErrLevelTooLow},
		{"level 30 evolves", 30, 1, nil},
		{"final form", 40, 2, domain.ErrAlreadyFinalForm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newEnv(t)
			_, err := env.svc.Adopt(ctx, key, "Ripple", "water_sprite")
			require.NoError(t, err)
			require.NoError(t, env.store.UpdatePet(ctx, key, domain.PetUpdate{
				Level: domain.Int(tt.level), Stage: domain.Int(tt.stage), Experience: domain.Int(7),
			}))

			res, err := env.svc.Evolve(ctx, key)

			stored, getErr := env.store.GetPet(ctx, key)
			require.NoError(t, getErr)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.stage, stored.Stage)
				assert.Equal(t, 8, stored.Attack)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Wellspring Spirit", res.Evolution.ToName)
			assert.Equal(t, 2, stored.Stage)
			assert.Equal(t, 8+progression.EvolveMinGain, stored.Attack)
			assert.Equal(t, 12+progression.EvolveMinGain, stored.Defense)
			assert.Equal(t, tt.level, stored.Level)
			assert.Equal(t, 7, stored.Experience)
			assert.Equal(t, event.PetEvolved, env.pub.events[len(env.pub.events)-1].Type)
		})
	}
}
