package pet

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/event"
	"github.com/osse101/PetBot_Go/internal/logger"
	"github.com/osse101/PetBot_Go/internal/utils"
)

// Adopt creates the pet for key. An empty speciesID picks a random species
// and an empty name takes the species' first stage name.
func (s *service) Adopt(ctx context.Context, key domain.PetKey, name, speciesID string) (*domain.Pet, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAdoptCalled, "pet", key.String(), "species", speciesID)

	if strings.TrimSpace(key.OwnerID) == "" || strings.TrimSpace(key.CommunityID) == "" {
		return nil, fmt.Errorf(ErrMsgMissingKeyFmt, domain.ErrInvalidInput)
	}
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, fmt.Errorf(ErrMsgNameTooLongFmt, MaxNameLength, domain.ErrInvalidInput)
	}

	if speciesID == "" {
		ids := s.catalog.SpeciesIDs()
		idx := utils.PickIndex(len(ids), s.rnd)
		if idx < 0 {
			return nil, fmt.Errorf(ErrMsgEmptyCatalog, domain.ErrSpeciesNotFound)
		}
		speciesID = ids[idx]
	}
	sp, err := s.species(speciesID)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = sp.DisplayName(domain.StartingStage)
	}

	now := s.now()
	epoch := time.Unix(0, 0).UTC()
	p := &domain.Pet{
		OwnerID:            key.OwnerID,
		CommunityID:        key.CommunityID,
		Name:               name,
		SpeciesID:          sp.ID,
		Level:              domain.StartingLevel,
		Stage:              domain.StartingStage,
		Mood:               domain.DefaultMood,
		Satiety:            domain.DefaultSatiety,
		Attack:             sp.BaseStats.Attack,
		Defense:            sp.BaseStats.Defense,
		Money:              domain.DefaultMoney,
		LastFedAt:          epoch,
		LastExploredAt:     epoch,
		LastDuelAt:         epoch,
		LastDecayAppliedAt: now,
		CreatedAt:          now,
	}

	if err := s.repo.CreatePet(ctx, p); err != nil {
		log.Warn(LogMsgAdoptFailed, "pet", key.String(), "error", err)
		return nil, err
	}

	s.publish(ctx, event.NewPetAdoptedEvent(p))
	log.Info(LogMsgPetAdopted, "pet", key.String(), "species", sp.ID, "name", name)
	return p, nil
}
