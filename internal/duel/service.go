// Package duel settles player-versus-player fights between two pets of the
// same community. Both sides are locked, fought and written in one
// transaction.
package duel

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/PetBot_Go/internal/battle"
	"github.com/osse101/PetBot_Go/internal/catalog"
	"github.com/osse101/PetBot_Go/internal/cooldown"
	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/event"
	"github.com/osse101/PetBot_Go/internal/logger"
	"github.com/osse101/PetBot_Go/internal/progression"
	"github.com/osse101/PetBot_Go/internal/repository"
)

// Side is one participant's settlement
type Side struct {
	Pet       *domain.Pet           `json:"pet"`
	Won       bool                  `json:"won"`
	ExpGain   int                   `json:"exp_gain"`
	MoneyGain int                   `json:"money_gain"`
	LevelUps  []progression.LevelUp `json:"level_ups,omitempty"`
}

// Result is a settled duel. The challenger is always side A of the battle.
type Result struct {
	Battle     battle.Result `json:"battle"`
	Challenger Side          `json:"challenger"`
	Opponent   Side          `json:"opponent"`
}

// Winner returns the winning side
func (r *Result) Winner() Side {
	if r.Challenger.Won {
		return r.Challenger
	}
	return r.Opponent
}

// Service defines the interface for duel operations
type Service interface {
	Duel(ctx context.Context, challenger domain.PetKey, opponentOwnerID string) (*Result, error)
}

type service struct {
	repo        repository.PetRepository
	catalog     *catalog.Catalog
	gate        *cooldown.Gate
	publisher   event.Publisher
	battle      *battle.Engine
	progression *progression.Engine
	now         func() time.Time
}

// NewService creates a new duel service. publisher may be nil.
func NewService(repo repository.PetRepository, cat *catalog.Catalog, gate *cooldown.Gate, publisher event.Publisher) Service {
	return &service{
		repo:        repo,
		catalog:     cat,
		gate:        gate,
		publisher:   publisher,
		battle:      battle.NewEngine(nil),
		progression: progression.NewEngine(nil),
		now:         time.Now,
	}
}

func (s *service) Duel(ctx context.Context, challengerKey domain.PetKey, opponentOwnerID string) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDuelCalled, "challenger", challengerKey.String(), "opponent", opponentOwnerID)

	if strings.TrimSpace(opponentOwnerID) == "" {
		return nil, fmt.Errorf(ErrMsgMissingOpponent, domain.ErrInvalidInput)
	}
	if opponentOwnerID == challengerKey.OwnerID {
		return nil, domain.ErrSelfDuel
	}
	opponentKey := domain.NewPetKey(opponentOwnerID, challengerKey.CommunityID)

	tx, err := s.repo.BeginTx(ctx, challengerKey, opponentKey)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	challenger, err := tx.GetPet(ctx, challengerKey)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgChallengerFmt, err)
	}
	opponent, err := tx.GetPet(ctx, opponentKey)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpponentFmt, err)
	}

	now := s.now()
	if err := s.gate.Check(ctx, challenger, cooldown.ActionDuel, now); err != nil {
		return nil, fmt.Errorf(ErrMsgChallengerFmt, err)
	}
	if err := s.gate.Check(ctx, opponent, cooldown.ActionDuel, now); err != nil {
		return nil, fmt.Errorf(ErrMsgOpponentFmt, err)
	}

	a, err := s.combatant(challenger)
	if err != nil {
		return nil, err
	}
	b, err := s.combatant(opponent)
	if err != nil {
		return nil, err
	}
	fight := s.battle.Run(a, b)

	res := &Result{Battle: fight}
	res.Challenger, res.Opponent = s.settle(challenger, opponent, fight.AWon())

	if err := s.write(ctx, tx, challenger, &res.Challenger, now); err != nil {
		return nil, err
	}
	if err := s.write(ctx, tx, opponent, &res.Opponent, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(LogMsgDuelFailed, "challenger", challengerKey.String(), "opponent", opponentKey.String(), "error", err)
		return nil, err
	}

	s.publishSettlement(ctx, res, now)
	log.Info(LogMsgDuelSettled, "winner", res.Winner().Pet.Key().String(), "rounds", fight.Rounds)
	return res, nil
}

// settle computes both sides' rewards from pre-battle levels and applies
// them, with level-ups, to copies of the pets.
func (s *service) settle(challenger, opponent *domain.Pet, challengerWon bool) (Side, Side) {
	winner, loser := challenger, opponent
	if !challengerWon {
		winner, loser = opponent, challenger
	}

	w := Side{
		Pet:       winner.Clone(),
		Won:       true,
		ExpGain:   WinnerBaseExp + loser.Level*WinnerExpPerLevel,
		MoneyGain: WinnerMoney,
	}
	l := Side{
		Pet:     loser.Clone(),
		ExpGain: LoserBaseExp + winner.Level,
	}
	for _, side := range []*Side{&w, &l} {
		side.Pet.Money += side.MoneyGain
		side.LevelUps = s.progression.GainExperience(side.Pet, side.ExpGain)
	}

	if challengerWon {
		return w, l
	}
	return l, w
}

// write stores one side's settlement together with its duel cooldown stamp
func (s *service) write(ctx context.Context, tx repository.PetTx, before *domain.Pet, side *Side, now time.Time) error {
	update := domain.DiffPet(before, side.Pet)
	cooldown.Stamp(&update, cooldown.ActionDuel, now)
	if err := tx.UpdatePet(ctx, before.Key(), update); err != nil {
		return err
	}
	update.Apply(side.Pet)
	return nil
}

func (s *service) combatant(p *domain.Pet) (battle.Combatant, error) {
	sp, ok := s.catalog.Species(p.SpeciesID)
	if !ok {
		return battle.Combatant{}, fmt.Errorf(ErrMsgSpeciesFmt, p.SpeciesID, domain.ErrSpeciesNotFound)
	}
	return battle.NewCombatant(p, sp.Attribute), nil
}

func (s *service) publishSettlement(ctx context.Context, res *Result, at time.Time) {
	if s.publisher == nil {
		return
	}
	winner, loser := res.Challenger, res.Opponent
	if !winner.Won {
		winner, loser = loser, winner
	}
	s.publisher.PublishWithRetry(ctx, event.NewDuelCompletedEvent(winner.Pet.Key(), loser.Pet.Key(), res.Battle.Rounds, at))
	for _, side := range []Side{res.Challenger, res.Opponent} {
		for _, up := range side.LevelUps {
			s.publisher.PublishWithRetry(ctx, event.NewPetLeveledUpEvent(side.Pet.Key(), up.OldLevel, up.NewLevel, up.AttackGain, up.DefenseGain, LevelUpSource, at))
		}
	}
}
