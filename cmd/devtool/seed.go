package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/PetBot_Go/internal/bootstrap"
	"github.com/osse101/PetBot_Go/internal/config"
	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/event"
)

const seedCommunity = "dev-community"

var seedPets = []struct {
	owner   string
	name    string
	species string
}{
	{"alice", "Ripple", "water_sprite"},
	{"bob", "Cinder", "fire_pup"},
	{"carol", "Moss", "leafy_cat"},
}

// discardPublisher drops events; seeding should not feed live metrics
type discardPublisher struct{}

func (discardPublisher) PublishWithRetry(context.Context, event.Event) {}

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Adopt a few demo pets into the configured store [community]"
}

func (c *SeedCommand) Run(ctx context.Context, cfg *config.Config, args []string) error {
	community := seedCommunity
	if len(args) > 0 {
		community = args[0]
	}
	PrintHeader("Seeding pets into " + community)

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return err
	}
	svcs := bootstrap.BuildServices(cfg, store, cat, discardPublisher{})

	for _, p := range seedPets {
		key := domain.NewPetKey(p.owner, community)
		pet, err := svcs.Pets.Adopt(ctx, key, p.name, p.species)
		switch {
		case errors.Is(err, domain.ErrPetAlreadyExists):
			PrintInfo("%s already has a pet", key)
		case err != nil:
			return fmt.Errorf("adopt %s: %w", key, err)
		default:
			PrintSuccess("%s adopted %s the %s", p.owner, pet.Name, pet.SpeciesID)
		}
	}
	return nil
}
