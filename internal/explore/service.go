// Package explore runs the cooldown-gated walk: a random event or a fight
// against a wild creature, settled in one transaction.
package explore

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/PetBot_Go/internal/battle"
	"github.com/osse101/PetBot_Go/internal/catalog"
	"github.com/osse101/PetBot_Go/internal/cooldown"
	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/event"
	"github.com/osse101/PetBot_Go/internal/logger"
	"github.com/osse101/PetBot_Go/internal/progression"
	"github.com/osse101/PetBot_Go/internal/repository"
	"github.com/osse101/PetBot_Go/internal/utils"
)

// Result is a settled walk
type Result struct {
	Outcome   domain.ExploreOutcome `json:"outcome"`
	Event     *domain.RandomEvent   `json:"event,omitempty"`
	Battle    *battle.Result        `json:"battle,omitempty"`
	Won       bool                  `json:"won"`
	ExpGain   int                   `json:"exp_gain"`
	MoneyGain int                   `json:"money_gain"`
	LevelUps  []progression.LevelUp `json:"level_ups,omitempty"`
	Pet       *domain.Pet           `json:"pet"`
}

// Service defines the exploration operation
type Service interface {
	Explore(ctx context.Context, key domain.PetKey) (*Result, error)
}

type service struct {
	repo        repository.PetRepository
	catalog     *catalog.Catalog
	gate        *cooldown.Gate
	library     EventLibrary
	publisher   event.Publisher
	battle      *battle.Engine
	progression *progression.Engine
	rnd         func() float64
	now         func() time.Time
}

// NewService creates a new explore service. A nil library uses the catalog
// events; publisher may be nil.
func NewService(repo repository.PetRepository, cat *catalog.Catalog, gate *cooldown.Gate, library EventLibrary, publisher event.Publisher) Service {
	if library == nil {
		library = NewStaticLibrary(cat.Events(), nil)
	}
	return &service{
		repo:        repo,
		catalog:     cat,
		gate:        gate,
		library:     library,
		publisher:   publisher,
		battle:      battle.NewEngine(nil),
		progression: progression.NewEngine(nil),
		rnd:         utils.RandomFloat,
		now:         time.Now,
	}
}

func (s *service) Explore(ctx context.Context, key domain.PetKey) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgExploreCalled, "pet", key.String())

	tx, err := s.repo.BeginTx(ctx, key)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	before, err := tx.GetPet(ctx, key)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if err := s.gate.Check(ctx, before, cooldown.ActionExplore, now); err != nil {
		return nil, err
	}

	after := before.Clone()
	var res *Result
	if s.rnd() < EventChance {
		res = s.randomEvent(ctx, after)
	} else {
		res, err = s.wildBattle(after)
		if err != nil {
			return nil, err
		}
	}
	res.ExpGain = max(0, res.ExpGain)
	res.LevelUps = s.progression.GainExperience(after, res.ExpGain)
	money := max(0, after.Money+res.MoneyGain)
	res.MoneyGain = money - after.Money
	after.Money = money

	update := domain.DiffPet(before, after)
	cooldown.Stamp(&update, cooldown.ActionExplore, now)
	if err := tx.UpdatePet(ctx, key, update); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		log.Error(LogMsgExploreFailed, "pet", key.String(), "error", err)
		return nil, err
	}

	update.Apply(after)
	res.Pet = after

	s.publish(ctx, event.NewExploreCompletedEvent(key, res.Outcome, res.Won, res.ExpGain, res.MoneyGain, now))
	for _, up := range res.LevelUps {
		s.publish(ctx, event.NewPetLeveledUpEvent(key, up.OldLevel, up.NewLevel, up.AttackGain, up.DefenseGain, cooldown.ActionExplore, now))
	}
	log.Info(LogMsgExploreSettled, "pet", key.String(), "outcome", res.Outcome, "exp", res.ExpGain, "money", res.MoneyGain, "levels", len(res.LevelUps))
	return res, nil
}

// randomEvent applies a library event to p. Mood and satiety rewards are
// clamped; exp and money are left for the caller to settle, money floored at 0.
func (s *service) randomEvent(ctx context.Context, p *domain.Pet) *Result {
	res := &Result{Outcome: domain.ExploreOutcomeEvent}
	ev, err := s.library.RandomEvent(p.Name)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventFailed, "pet", p.Key().String(), "error", err)
		return res
	}
	res.Event = &ev
	res.MoneyGain = max(0, ev.MoneyGain)

	switch ev.RewardType {
	case domain.RewardMood:
		p.Mood = domain.ClampStat(p.Mood + ev.RewardValue)
	case domain.RewardSatiety:
		p.Satiety = domain.ClampStat(p.Satiety + ev.RewardValue)
	case domain.RewardExp:
		res.ExpGain = ev.RewardValue
	case domain.RewardMoney:
		res.MoneyGain += ev.RewardValue
	default:
		logger.FromContext(ctx).Warn(LogMsgEventFailed, "pet", p.Key().String(), "error", fmt.Sprintf(ErrMsgUnknownReward, ev.RewardType))
	}
	return res
}

// wildBattle fights p against a wild creature near its level
func (s *service) wildBattle(p *domain.Pet) (*Result, error) {
	mine, err := s.species(p.SpeciesID)
	if err != nil {
		return nil, err
	}
	roll := utils.IntFromFloat(s.rnd)

	npcLevel := max(domain.StartingLevel, p.Level+roll(-NPCLevelSpread, NPCLevelSpread))
	ids := s.catalog.SpeciesIDs()
	wild, err := s.species(ids[utils.PickIndex(len(ids), s.rnd)])
	if err != nil {
		return nil, err
	}
	npc := battle.Combatant{
		Name:      NPCNamePrefix + wild.DisplayName(domain.StartingStage),
		Level:     npcLevel,
		Attack:    wild.BaseStats.Attack + npcLevel,
		Defense:   wild.BaseStats.Defense + npcLevel,
		Satiety:   NPCSatiety,
		Attribute: wild.Attribute,
	}

	fight := s.battle.Run(battle.NewCombatant(p, mine.Attribute), npc)
	res := &Result{Outcome: domain.ExploreOutcomeBattle, Battle: &fight, Won: fight.AWon()}
	if res.Won {
		res.ExpGain = npcLevel*WinExpPerLevel + roll(WinExpBonusMin, WinExpBonusMax)
		res.MoneyGain = roll(WinMoneyMin, WinMoneyMax)
	} else {
		res.ExpGain = LossExp
	}
	return res, nil
}

func (s *service) species(id string) (catalog.Species, error) {
	sp, ok := s.catalog.Species(id)
	if !ok {
		return catalog.Species{}, fmt.Errorf("species %q: %w", id, domain.ErrSpeciesNotFound)
	}
	return sp, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}
