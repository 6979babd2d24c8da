package pet

import (
	"context"

	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/event"
	"github.com/osse101/PetBot_Go/internal/logger"
	"github.com/osse101/PetBot_Go/internal/repository"
)

// Evolve advances the pet one stage when its level allows
func (s *service) Evolve(ctx context.Context, key domain.PetKey) (*EvolveResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgEvolveCalled, "pet", key.String())

	tx, err := s.repo.BeginTx(ctx, key)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	before, err := tx.GetPet(ctx, key)
	if err != nil {
		return nil, err
	}
	sp, err := s.species(before.SpeciesID)
	if err != nil {
		return nil, err
	}

	after := before.Clone()
	evo, err := s.engine.Evolve(after, sp)
	if err != nil {
		return nil, err
	}

	if err := tx.UpdatePet(ctx, key, domain.DiffPet(before, after)); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		log.Error(LogMsgEvolveFailed, "pet", key.String(), "error", err)
		return nil, err
	}

	s.publish(ctx, event.NewPetEvolvedEvent(key, evo.FromStage, evo.ToStage, evo.ToName, s.now()))
	log.Info(LogMsgPetEvolved, "pet", key.String(), "stage", evo.ToStage, "name", evo.ToName)
	return &EvolveResult{Evolution: *evo, Pet: after}, nil
}
