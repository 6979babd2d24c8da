// Package cooldown gates rate-limited actions on timestamps stored on the pet.
package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/logger"
)

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % SecondsPerMinute

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is allows errors.Is() to match both ErrOnCooldown values and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}

// Allowed reports whether duration has fully elapsed since last
func Allowed(last, now time.Time, duration time.Duration) bool {
	return now.Sub(last) >= duration
}

// Remaining returns how long until the action is allowed again
func Remaining(last, now time.Time, duration time.Duration) time.Duration {
	left := duration - now.Sub(last)
	if left < 0 {
		return 0
	}
	return left
}

// LastActionAt returns the timestamp the pet stores for action
func LastActionAt(p *domain.Pet, action string) time.Time {
	switch action {
	case ActionExplore:
		return p.LastExploredAt
	case ActionDuel:
		return p.LastDuelAt
	default:
		return time.Time{}
	}
}

// Stamp writes now into the update field that backs action, so the new
// timestamp commits with the rest of the action's effects.
func Stamp(u *domain.PetUpdate, action string, now time.Time) {
	switch action {
	case ActionExplore:
		u.LastExploredAt = domain.Time(now)
	case ActionDuel:
		u.LastDuelAt = domain.Time(now)
	}
}

// Gate checks cooldowns against the canonical durations
type Gate struct {
	config Config
}

// NewGate creates a Gate
func NewGate(config Config) *Gate {
	return &Gate{config: config}
}

// Duration returns the configured cooldown for action
func (g *Gate) Duration(action string) time.Duration {
	return g.config.GetCooldownDuration(action)
}

// Remaining returns how long p must wait before action passes Check.
// Dev mode reports no wait.
func (g *Gate) Remaining(p *domain.Pet, action string, now time.Time) time.Duration {
	if g.config.DevMode {
		return 0
	}
	return Remaining(LastActionAt(p, action), now, g.Duration(action))
}

// Check returns ErrOnCooldown if p used action too recently
func (g *Gate) Check(ctx context.Context, p *domain.Pet, action string, now time.Time) error {
	if g.config.DevMode {
		logger.FromContext(ctx).Debug(LogMsgDevModeBypass, "action", action, "pet", p.Key().String())
		return nil
	}

	duration := g.Duration(action)
	last := LastActionAt(p, action)
	if Allowed(last, now, duration) {
		return nil
	}

	remaining := Remaining(last, now, duration)
	logger.FromContext(ctx).Debug(LogMsgOnCooldown, "action", action, "pet", p.Key().String(), "remaining", remaining)
	return ErrOnCooldown{Action: action, Remaining: remaining}
}
