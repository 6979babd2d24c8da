package battle

// Combat formula constants
const (
	HPPerLevel    = 10
	MinVariance   = 0.8
	MaxVariance   = 1.2
	DefenseFactor = 0.5

	AdvantageMultiplier    = 1.5
	DisadvantageMultiplier = 0.5
	NeutralMultiplier      = 1.0
)

// Battle log formats
const (
	LineFmtStart        = "%s (HP %d) faces %s (HP %d)!"
	LineFmtStrike       = "Round %d: %s hits %s for %d damage (%d HP left)"
	LineSuffixEffective = " It's super effective!"
	LineSuffixResisted  = " It's not very effective..."
	LineFmtWinner       = "%s wins the battle!"
)
