package cooldown

import "time"

// =============================================================================
// Actions
// =============================================================================

const (
	// ActionExplore guards the exploration walk
	ActionExplore = "explore"

	// ActionDuel guards player-versus-player duels
	ActionDuel = "duel"
)

// =============================================================================
// Duration Constants
// =============================================================================

const (
	// ExploreCooldownDuration is the canonical exploration cooldown
	ExploreCooldownDuration = 5 * time.Minute

	// DuelCooldownDuration is the canonical duel cooldown
	DuelCooldownDuration = 30 * time.Minute

	// DefaultCooldownDuration is the fallback cooldown when no specific duration is configured
	DefaultCooldownDuration = 5 * time.Minute
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	// LogMsgDevModeBypass is logged when dev mode bypasses cooldown enforcement
	LogMsgDevModeBypass = "DEV_MODE: Bypassing cooldown enforcement"

	// LogMsgOnCooldown is logged when a gated action is rejected
	LogMsgOnCooldown = "Action rejected, still on cooldown"
)

// =============================================================================
// Error Message Format Strings (for ErrOnCooldown.Error())
// =============================================================================

const (
	// ErrFmtCooldownWithMinutes formats cooldown error with minutes and seconds
	ErrFmtCooldownWithMinutes = "action '%s' on cooldown: %dm %ds remaining"

	// ErrFmtCooldownSecondsOnly formats cooldown error with seconds only
	ErrFmtCooldownSecondsOnly = "action '%s' on cooldown: %ds remaining"

	// SecondsPerMinute is used for time duration calculations
	SecondsPerMinute = 60
)
