package explore

import (
	"errors"
	"strings"

	"github.com/osse101/PetBot_Go/internal/catalog"
	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/utils"
)

// ErrNoEvents is returned by a library with nothing to offer
var ErrNoEvents = errors.New(ErrMsgNoEvents)

// EventLibrary produces the non-battle outcomes of a walk. Flavor-text
// generators outside this module plug in here.
type EventLibrary interface {
	RandomEvent(petName string) (domain.RandomEvent, error)
}

// StaticLibrary rolls events from a fixed set of templates
type StaticLibrary struct {
	templates []catalog.EventTemplate
	rnd       func() float64
}

// NewStaticLibrary creates a library over templates. A nil rnd uses
// utils.RandomFloat.
func NewStaticLibrary(templates []catalog.EventTemplate, rnd func() float64) *StaticLibrary {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return &StaticLibrary{templates: templates, rnd: rnd}
}

func (l *StaticLibrary) RandomEvent(petName string) (domain.RandomEvent, error) {
	idx := utils.PickIndex(len(l.templates), l.rnd)
	if idx < 0 {
		return domain.RandomEvent{}, ErrNoEvents
	}
	tpl := l.templates[idx]
	roll := utils.IntFromFloat(l.rnd)

	return domain.RandomEvent{
		Description: strings.ReplaceAll(tpl.Description, PetNamePlaceholder, petName),
		RewardType:  tpl.RewardType,
		RewardValue: roll(tpl.RewardMin, tpl.RewardMax),
		MoneyGain:   roll(tpl.MoneyMin, tpl.MoneyMax),
	}, nil
}
