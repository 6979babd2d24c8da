package bootstrap

import (
	"github.com/osse101/PetBot_Go/internal/catalog"
	"github.com/osse101/PetBot_Go/internal/config"
	"github.com/osse101/PetBot_Go/internal/cooldown"
	"github.com/osse101/PetBot_Go/internal/duel"
	"github.com/osse101/PetBot_Go/internal/economy"
	"github.com/osse101/PetBot_Go/internal/event"
	"github.com/osse101/PetBot_Go/internal/explore"
	"github.com/osse101/PetBot_Go/internal/pet"
	"github.com/osse101/PetBot_Go/internal/repository"
	"github.com/osse101/PetBot_Go/internal/server"
	"github.com/osse101/PetBot_Go/internal/status"
)

// BuildServices wires the domain services over one store, catalog and
// publisher. Status cards are rendered as localized text behind an LRU cache.
func BuildServices(cfg *config.Config, store repository.PetRepository, cat *catalog.Catalog, publisher event.Publisher) server.Services {
	gate := cooldown.NewGate(cooldown.Config{
		DevMode:   cfg.DevMode,
		Cooldowns: cfg.Cooldowns(),
	})
	renderer := status.NewCachingRenderer(status.NewTextRenderer(cfg.Locale), cfg.RenderCacheSize, cfg.RenderCacheTTL)

	return server.Services{
		Pets:    pet.NewService(store, cat, gate, renderer, publisher),
		Explore: explore.NewService(store, cat, gate, explore.NewStaticLibrary(cat.Events(), nil), publisher),
		Duel:    duel.NewService(store, cat, gate, publisher),
		Economy: economy.NewService(store, cat, publisher),
	}
}
