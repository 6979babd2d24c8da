package progression

import (
	"fmt"

	"github.com/osse101/PetBot_Go/internal/catalog"
	"github.com/osse101/PetBot_Go/internal/domain"
)

// Evolution records a stage transition
type Evolution struct {
	FromStage   int    `json:"from_stage"`
	ToStage     int    `json:"to_stage"`
	FromName    string `json:"from_name"`
	ToName      string `json:"to_name"`
	AttackGain  int    `json:"attack_gain"`
	DefenseGain int    `json:"defense_gain"`
}

// Evolve advances p to the next stage of species. It is gated only by level;
// experience and level are left untouched.
func (e *Engine) Evolve(p *domain.Pet, species catalog.Species) (*Evolution, error) {
	current, ok := species.StageAt(p.Stage)
	if !ok {
		return nil, fmt.Errorf("%w: stage %d of %s", domain.ErrInvalidStage, p.Stage, species.ID)
	}
	next, hasNext := species.StageAt(p.Stage + 1)
	if current.IsFinal() || !hasNext {
		return nil, domain.ErrAlreadyFinalForm
	}
	if p.Level < *current.EvolveLevel {
		return nil, fmt.Errorf("%w: need level %d, have %d", domain.ErrLevelTooLow, *current.EvolveLevel, p.Level)
	}

	evo := &Evolution{
		FromStage:   p.Stage,
		ToStage:     p.Stage + 1,
		FromName:    current.Name,
		ToName:      next.Name,
		AttackGain:  e.randInt(EvolveMinGain, EvolveMaxGain),
		DefenseGain: e.randInt(EvolveMinGain, EvolveMaxGain),
	}
	p.Stage = evo.ToStage
	p.Attack += evo.AttackGain
	p.Defense += evo.DefenseGain
	return evo, nil
}
