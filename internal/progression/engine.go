// Package progression holds the leveling and evolution rules.
package progression

import "github.com/osse101/PetBot_Go/internal/utils"

// Engine applies progression rules with an injectable integer source
type Engine struct {
	randInt func(min, max int) int
}

// NewEngine creates an Engine. A nil randInt uses utils.RandomInt.
func NewEngine(randInt func(min, max int) int) *Engine {
	if randInt == nil {
		randInt = utils.RandomInt
	}
	return &Engine{randInt: randInt}
}
