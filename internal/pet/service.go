// Package pet orchestrates the adoption, status and evolution flows of a
// single pet.
package pet

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/PetBot_Go/internal/catalog"
	"github.com/osse101/PetBot_Go/internal/cooldown"
	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/event"
	"github.com/osse101/PetBot_Go/internal/progression"
	"github.com/osse101/PetBot_Go/internal/repository"
	"github.com/osse101/PetBot_Go/internal/status"
	"github.com/osse101/PetBot_Go/internal/utils"
)

// EvolveResult is a committed evolution together with the updated pet
type EvolveResult struct {
	Evolution progression.Evolution `json:"evolution"`
	Pet       *domain.Pet           `json:"pet"`
}

// Service defines the pet lifecycle operations
type Service interface {
	Adopt(ctx context.Context, key domain.PetKey, name, speciesID string) (*domain.Pet, error)
	Status(ctx context.Context, key domain.PetKey) (*status.Snapshot, error)
	Card(ctx context.Context, key domain.PetKey, ownerDisplayName string) (status.Rendered, error)
	Evolve(ctx context.Context, key domain.PetKey) (*EvolveResult, error)
}

type service struct {
	repo      repository.PetRepository
	catalog   *catalog.Catalog
	gate      *cooldown.Gate
	renderer  status.Renderer
	publisher event.Publisher
	engine    *progression.Engine
	rnd       func() float64
	now       func() time.Time
}

// NewService creates a new pet service. renderer and publisher may be nil.
func NewService(repo repository.PetRepository, cat *catalog.Catalog, gate *cooldown.Gate, renderer status.Renderer, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		catalog:   cat,
		gate:      gate,
		renderer:  renderer,
		publisher: publisher,
		engine:    progression.NewEngine(nil),
		rnd:       utils.RandomFloat,
		now:       time.Now,
	}
}

// Status returns the decay-resolved view of the pet
func (s *service) Status(ctx context.Context, key domain.PetKey) (*status.Snapshot, error) {
	p, err := s.repo.GetPet(ctx, key)
	if err != nil {
		return nil, err
	}
	sp, err := s.species(p.SpeciesID)
	if err != nil {
		return nil, err
	}
	return status.NewSnapshot(p, sp, s.gate, s.now()), nil
}

// Card renders the status snapshot through the configured renderer
func (s *service) Card(ctx context.Context, key domain.PetKey, ownerDisplayName string) (status.Rendered, error) {
	snap, err := s.Status(ctx, key)
	if err != nil {
		return status.Rendered{}, err
	}
	r := s.renderer
	if r == nil {
		r = status.NewTextRenderer("en")
	}
	return r.RenderStatus(ctx, *snap, ownerDisplayName)
}

func (s *service) species(id string) (catalog.Species, error) {
	sp, ok := s.catalog.Species(id)
	if !ok {
		return catalog.Species{}, fmt.Errorf(ErrMsgSpeciesNotFoundFmt, id, domain.ErrSpeciesNotFound)
	}
	return sp, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}
