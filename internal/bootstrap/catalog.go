package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/PetBot_Go/internal/catalog"
	"github.com/osse101/PetBot_Go/internal/config"
)

// LoadCatalog returns the built-in catalog, or the YAML file at
// cfg.CatalogPath when one is configured
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	source := "built-in"
	cat := catalog.Default()

	if cfg.CatalogPath != "" {
		loaded, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgLoadCatalog, err)
		}
		cat = loaded
		source = cfg.CatalogPath
	}

	slog.Info(LogMsgCatalogLoaded,
		"source", source,
		"species", len(cat.SpeciesIDs()),
		"shop_items", len(cat.Items()),
		"events", len(cat.Events()))
	return cat, nil
}
