package cooldown

import (
	"time"
)

// Config holds cooldown gate configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool

	// Cooldowns maps action names to their durations
	// If not specified, the canonical defaults are used
	Cooldowns map[string]time.Duration
}

// GetCooldownDuration returns the cooldown duration for an action
func (c *Config) GetCooldownDuration(action string) time.Duration {
	// Check custom overrides first
	if c.Cooldowns != nil {
		if duration, ok := c.Cooldowns[action]; ok {
			return duration
		}
	}

	switch action {
	case ActionExplore:
		return ExploreCooldownDuration
	case ActionDuel:
		return DuelCooldownDuration
	default:
		return DefaultCooldownDuration
	}
}
