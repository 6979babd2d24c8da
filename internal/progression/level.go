package progression

import (
	"math"

	"github.com/osse101/PetBot_Go/internal/domain"
)

// LevelUp records one level gained
type LevelUp struct {
	OldLevel    int `json:"old_level"`
	NewLevel    int `json:"new_level"`
	AttackGain  int `json:"attack_gain"`
	DefenseGain int `json:"defense_gain"`
}

// ExpThreshold returns the experience needed to leave the given level
func ExpThreshold(level int) int {
	if level < domain.StartingLevel {
		level = domain.StartingLevel
	}
	return int(math.Floor(BaseExp * math.Pow(float64(level), LevelExponent)))
}

// ApplyLevelUps consumes experience into levels until the pet sits below
// its current threshold. A single large gain may level several times.
func (e *Engine) ApplyLevelUps(p *domain.Pet) []LevelUp {
	var ups []LevelUp
	for p.Experience >= ExpThreshold(p.Level) {
		p.Experience -= ExpThreshold(p.Level)
		up := LevelUp{
			OldLevel:    p.Level,
			NewLevel:    p.Level + 1,
			AttackGain:  e.randInt(LevelUpMinGain, LevelUpMaxGain),
			DefenseGain: e.randInt(LevelUpMinGain, LevelUpMaxGain),
		}
		p.Level = up.NewLevel
		p.Attack += up.AttackGain
		p.Defense += up.DefenseGain
		ups = append(ups, up)
	}
	return ups
}

// GainExperience adds exp and then applies any resulting level-ups
func (e *Engine) GainExperience(p *domain.Pet, exp int) []LevelUp {
	if exp > 0 {
		p.Experience += exp
	}
	return e.ApplyLevelUps(p)
}
