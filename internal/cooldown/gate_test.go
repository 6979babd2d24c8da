package cooldown

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PetBot_Go/internal/domain"
)

func TestAllowed(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	duration := 5 * time.Minute

	tests := []struct {
		name     string
		last     time.Time
		expected bool
	}{
		{"never used", time.Unix(0, 0), true},
		{"exactly at boundary", now.Add(-duration), true},
		{"one second short", now.Add(-duration + time.Second), false},
		{"just used", now, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Allowed(tt.last, now, duration))
		})
	}
}

func TestConfig_GetCooldownDuration(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 5*time.Minute, cfg.GetCooldownDuration(ActionExplore))
	assert.Equal(t, 30*time.Minute, cfg.GetCooldownDuration(ActionDuel))
	assert.Equal(t, DefaultCooldownDuration, cfg.GetCooldownDuration("unknown"))

	cfg.Cooldowns = map[string]time.Duration{ActionDuel: time.Hour}
	assert.Equal(t, time.Hour, cfg.GetCooldownDuration(ActionDuel))
}

func TestGate_Check(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	gate := NewGate(Config{})

	t.Run("fresh pet is allowed", func(t *testing.T) {
		pet := &domain.Pet{LastExploredAt: time.Unix(0, 0), LastDuelAt: time.Unix(0, 0)}
		assert.NoError(t, gate.Check(ctx, pet, ActionExplore, now))
		assert.NoError(t, gate.Check(ctx, pet, ActionDuel, now))
	})

	t.Run("recent duel is rejected with remaining time", func(t *testing.T) {
		pet := &domain.Pet{LastDuelAt: now.Add(-10 * time.Minute)}

		err := gate.Check(ctx, pet, ActionDuel, now)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrOnCooldown))
		var cdErr ErrOnCooldown
		require.True(t, errors.As(err, &cdErr))
		assert.Equal(t, 20*time.Minute, cdErr.Remaining)
		assert.Equal(t, "action 'duel' on cooldown: 20m 0s remaining", cdErr.Error())
	})

	t.Run("dev mode bypasses", func(t *testing.T) {
		pet := &domain.Pet{LastExploredAt: now}
		assert.NoError(t, NewGate(Config{DevMode: true}).Check(ctx, pet, ActionExplore, now))
	})
}

func TestGate_Remaining(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	pet := &domain.Pet{LastExploredAt: now.Add(-2 * time.Minute), LastDuelAt: time.Unix(0, 0)}

	gate := NewGate(Config{})
	assert.Equal(t, 3*time.Minute, gate.Remaining(pet, ActionExplore, now))
	assert.Zero(t, gate.Remaining(pet, ActionDuel, now))

	assert.Zero(t, NewGate(Config{DevMode: true}).Remaining(pet, ActionExplore, now))
}

func TestStamp(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	var u domain.PetUpdate
	Stamp(&u, ActionExplore, now)
	require.NotNil(t, u.LastExploredAt)
	assert.Equal(t, now, *u.LastExploredAt)
	assert.Nil(t, u.LastDuelAt)

	Stamp(&u, ActionDuel, now)
	require.NotNil(t, u.LastDuelAt)
}

func TestErrOnCooldown_SecondsOnly(t *testing.T) {
	err := ErrOnCooldown{Action: ActionExplore, Remaining: 42 * time.Second}
	assert.Equal(t, "action 'explore' on cooldown: 42s remaining", err.Error())
}
