package status

import "time"

// Render formats
const (
	ContentTypeText = "text/plain; charset=utf-8"

	DefaultOwnerName = "Trainer"
	ExpBarWidth      = 20
	ExpBarFilled     = "#"
	ExpBarEmpty      = "-"
)

// Cache defaults
const (
	DefaultCacheSize = 512
	DefaultCacheTTL  = 5 * time.Minute
)

// Text card lines
const (
	LineFmtTitle    = "%s's status"
	LineFmtOwner    = "Owner: %s"
	LineFmtSpecies  = "Species: %s (%s, %s)"
	LineFmtLevel    = "Level: %d"
	LineFmtExp      = "Exp: %d / %d [%s]"
	LineFmtCombat   = "Attack: %d  Defense: %d"
	LineFmtMood     = "Mood: %d/100"
	LineFmtSatiety  = "Satiety: %d/100"
	LineFmtMoney    = "Money: %d"
	LineFmtEvolveAt = "Evolves at level %d"
	LineFinalForm   = "Final form"
	LineFmtReady    = "%s: ready"
	LineFmtWaiting  = "%s: %s"
)

const (
	LogMsgRenderCacheHit  = "Status card served from cache"
	LogMsgRenderCacheMiss = "Status card rendered"
)
