// Package battle resolves turn-based fights between two combatant snapshots.
// It never touches storage and never mutates its inputs.
package battle

import (
	"fmt"
	"math"

	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/utils"
)

// Side identifies a combatant slot. SideA always strikes first.
type Side int

const (
	SideA Side = iota
	SideB
)

// Combatant is the read-only battle view of a pet or wild creature
type Combatant struct {
	Name      string           `json:"name"`
	Level     int              `json:"level"`
	Attack    int              `json:"attack"`
	Defense   int              `json:"defense"`
	Satiety   int              `json:"satiety"`
	Attribute domain.Attribute `json:"attribute"`
}

// NewCombatant builds a combatant from a decay-resolved pet
func NewCombatant(p *domain.Pet, attr domain.Attribute) Combatant {
	return Combatant{
		Name:      p.Name,
		Level:     p.Level,
		Attack:    p.Attack,
		Defense:   p.Defense,
		Satiety:   p.Satiety,
		Attribute: attr,
	}
}

// InitialHP is level*10 + satiety
func (c Combatant) InitialHP() int {
	return c.Level*HPPerLevel + c.Satiety
}

// Turn is one strike in the battle log
type Turn struct {
	Round      int     `json:"round"`
	Attacker   Side    `json:"attacker"`
	Damage     int     `json:"damage"`
	Multiplier float64 `json:"multiplier"`
	DefenderHP int     `json:"defender_hp"`
}

// Result is the outcome of Run
type Result struct {
	A        Combatant `json:"a"`
	B        Combatant `json:"b"`
	Turns    []Turn    `json:"turns"`
	Rounds   int       `json:"rounds"`
	Winner   Side      `json:"winner"`
	FinalHPA int       `json:"final_hp_a"`
	FinalHPB int       `json:"final_hp_b"`
}

// WinnerName returns the name of the winning combatant
func (r Result) WinnerName() string {
	if r.Winner == SideA {
		return r.A.Name
	}
	return r.B.Name
}

// AWon reports whether the first combatant won
func (r Result) AWon() bool {
	return r.Winner == SideA
}

// Lines renders the turn log as human-readable text
func (r Result) Lines() []string {
	lines := make([]string, 0, len(r.Turns)+2)
	lines = append(lines, fmt.Sprintf(LineFmtStart, r.A.Name, r.A.InitialHP(), r.B.Name, r.B.InitialHP()))
	for _, t := range r.Turns {
		attacker, defender := r.A.Name, r.B.Name
		if t.Attacker == SideB {
			attacker, defender = defender, attacker
		}
		line := fmt.Sprintf(LineFmtStrike, t.Round, attacker, defender, t.Damage, t.DefenderHP)
		switch {
		case t.Multiplier > NeutralMultiplier:
			line += LineSuffixEffective
		case t.Multiplier < NeutralMultiplier:
			line += LineSuffixResisted
		}
		lines = append(lines, line)
	}
	lines = append(lines, fmt.Sprintf(LineFmtWinner, r.WinnerName()))
	return lines
}

// Engine runs battles with an injectable random source
type Engine struct {
	rnd func() float64
}

// NewEngine creates an Engine. A nil rnd uses utils.RandomFloat.
func NewEngine(rnd func() float64) *Engine {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return &Engine{rnd: rnd}
}

// Run fights a against b. A strikes first every round and the fight stops
// as soon as the defender of a strike drops to zero HP, so an exact-lethal
// first strike always wins for A.
func (e *Engine) Run(a, b Combatant) Result {
	hpA, hpB := a.InitialHP(), b.InitialHP()
	res := Result{A: a, B: b}

	for round := 1; hpA > 0 && hpB > 0; round++ {
		res.Rounds = round

		dmg, mult := e.Damage(a, b)
		hpB -= dmg
		res.Turns = append(res.Turns, Turn{Round: round, Attacker: SideA, Damage: dmg, Multiplier: mult, DefenderHP: max(0, hpB)})
		if hpB <= 0 {
			break
		}

		dmg, mult = e.Damage(b, a)
		hpA -= dmg
		res.Turns = append(res.Turns, Turn{Round: round, Attacker: SideB, Damage: dmg, Multiplier: mult, DefenderHP: max(0, hpA)})
	}

	res.FinalHPA, res.FinalHPB = max(0, hpA), max(0, hpB)
	if hpA > 0 {
		res.Winner = SideA
	} else {
		res.Winner = SideB
	}
	return res
}

// Damage rolls one strike: max(1, floor(atk*U(0.8,1.2) - def*0.5)) scaled by
// the attribute multiplier and truncated.
func (e *Engine) Damage(attacker, defender Combatant) (int, float64) {
	roll := utils.Uniform(MinVariance, MaxVariance, e.rnd)
	base := math.Floor(float64(attacker.Attack)*roll - float64(defender.Defense)*DefenseFactor)
	if base < 1 {
		base = 1
	}
	mult := Effectiveness(attacker.Attribute, defender.Attribute)
	return int(base * mult), mult
}

// beats maps each attribute to the one it is strong against
var beats = map[domain.Attribute]domain.Attribute{
	domain.AttributeWater: domain.AttributeFire,
	domain.AttributeFire:  domain.AttributeGrass,
	domain.AttributeGrass: domain.AttributeWater,
}

// Effectiveness returns the damage multiplier of attacker against defender
func Effectiveness(attacker, defender domain.Attribute) float64 {
	if target, ok := beats[attacker]; ok && target == defender {
		return AdvantageMultiplier
	}
	if target, ok := beats[defender]; ok && target == attacker {
		return DisadvantageMultiplier
	}
	return NeutralMultiplier
}
