package progression

// Level formula constants: threshold(level) = floor(BaseExp * level^LevelExponent)
const (
	BaseExp       = 10.0
	LevelExponent = 1.5
)

// Stat growth ranges (inclusive)
const (
	LevelUpMinGain = 1
	LevelUpMaxGain = 2

	EvolveMinGain = 8
	EvolveMaxGain = 15
)
