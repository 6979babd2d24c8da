package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/PetBot_Go/internal/domain"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// BaseStats are the starting combat stats of a species
type BaseStats struct {
	Attack  int `yaml:"attack" json:"attack" validate:"gt=0"`
	Defense int `yaml:"defense" json:"defense" validate:"gt=0"`
}

// Stage is one form in a species' evolution chain. A nil EvolveLevel marks
// the final form.
type Stage struct {
	Name        string `yaml:"name" json:"name" validate:"required"`
	Asset       string `yaml:"asset" json:"asset"`
	EvolveLevel *int   `yaml:"evolve_level,omitempty" json:"evolve_level,omitempty" validate:"omitempty,gt=1"`
}

// IsFinal reports whether no further evolution exists from this stage
func (s Stage) IsFinal() bool {
	return s.EvolveLevel == nil
}

// Species is a static creature definition
type Species struct {
	ID          string           `yaml:"id" json:"id" validate:"required"`
	Attribute   domain.Attribute `yaml:"attribute" json:"attribute" validate:"required,oneof=water fire grass"`
	Description string           `yaml:"description" json:"description"`
	BaseStats   BaseStats        `yaml:"base_stats" json:"base_stats"`
	Stages      []Stage          `yaml:"stages" json:"stages" validate:"required,min=1,dive"`
}

// StageAt returns the 1-based stage of the chain
func (s Species) StageAt(stage int) (Stage, bool) {
	if stage < 1 || stage > len(s.Stages) {
		return Stage{}, false
	}
	return s.Stages[stage-1], true
}

// DisplayName returns the stage name, falling back to the species id
func (s Species) DisplayName(stage int) string {
	if st, ok := s.StageAt(stage); ok {
		return st.Name
	}
	return s.ID
}

// ShopItem is a purchasable catalog entry
type ShopItem struct {
	Name        string `yaml:"name" json:"name" validate:"required"`
	Price       int    `yaml:"price" json:"price" validate:"gt=0"`
	Category    string `yaml:"category" json:"category" validate:"required"`
	SatietyGain int    `yaml:"satiety_gain" json:"satiety_gain" validate:"gte=0"`
	MoodGain    int    `yaml:"mood_gain" json:"mood_gain" validate:"gte=0"`
	Description string `yaml:"description" json:"description"`
}

// IsFood reports whether the item can be fed to a pet
func (i ShopItem) IsFood() bool {
	return i.Category == CategoryFood
}

// EventTemplate is an exploration event with reward ranges
type EventTemplate struct {
	Description string            `yaml:"description" validate:"required"`
	RewardType  domain.RewardType `yaml:"reward_type" validate:"required,oneof=mood satiety exp money"`
	RewardMin   int               `yaml:"reward_min" validate:"gte=0"`
	RewardMax   int               `yaml:"reward_max" validate:"gtefield=RewardMin"`
	MoneyMin    int               `yaml:"money_min" validate:"gte=0"`
	MoneyMax    int               `yaml:"money_max" validate:"gtefield=MoneyMin"`
}

// File is the on-disk catalog layout
type File struct {
	Species   []Species       `yaml:"species" validate:"required,min=1,dive"`
	ShopItems []ShopItem      `yaml:"shop_items" validate:"dive"`
	Events    []EventTemplate `yaml:"events" validate:"dive"`
}

// Catalog is the immutable registry of species, shop items and events.
// It is built once at startup and shared without locking.
type Catalog struct {
	species      map[string]Species
	speciesOrder []string
	items        map[string]ShopItem
	itemOrder    []string
	events       []EventTemplate
}

// New validates f and builds a Catalog from it
func New(f File) (*Catalog, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(f); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidCatalog, err)
	}

	c := &Catalog{
		species: make(map[string]Species, len(f.Species)),
		items:   make(map[string]ShopItem, len(f.ShopItems)),
		events:  append([]EventTemplate(nil), f.Events...),
	}

	for _, sp := range f.Species {
		if _, dup := c.species[sp.ID]; dup {
			return nil, fmt.Errorf(ErrMsgDuplicateSpecies, sp.ID)
		}
		if err := validateChain(sp); err != nil {
			return nil, err
		}
		sp.Stages = append([]Stage(nil), sp.Stages...)
		c.species[sp.ID] = sp
		c.speciesOrder = append(c.speciesOrder, sp.ID)
	}

	for _, item := range f.ShopItems {
		if _, dup := c.items[item.Name]; dup {
			return nil, fmt.Errorf(ErrMsgDuplicateItem, item.Name)
		}
		c.items[item.Name] = item
		c.itemOrder = append(c.itemOrder, item.Name)
	}

	return c, nil
}

// validateChain requires every stage but the last to name its evolve level,
// and the last to have none.
func validateChain(sp Species) error {
	last := len(sp.Stages) - 1
	for i, st := range sp.Stages {
		if i < last && st.IsFinal() {
			return fmt.Errorf(ErrMsgUnreachableStage, sp.ID, i+2)
		}
		if i == last && !st.IsFinal() {
			return fmt.Errorf(ErrMsgMissingNextStage, sp.ID, i+1)
		}
	}
	return nil
}

// Parse decodes YAML catalog data
func Parse(raw []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeCatalog, err)
	}
	return New(f)
}

// Load reads a YAML catalog from path
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalog, path, err)
	}
	return Parse(raw)
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := Parse(defaultsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Species looks up a species by id
func (c *Catalog) Species(id string) (Species, bool) {
	sp, ok := c.species[id]
	return sp, ok
}

// SpeciesIDs lists species ids in catalog order
func (c *Catalog) SpeciesIDs() []string {
	return append([]string(nil), c.speciesOrder...)
}

// Item looks up a shop item by name
func (c *Catalog) Item(name string) (ShopItem, bool) {
	item, ok := c.items[name]
	return item, ok
}

// Items lists shop items in catalog order
func (c *Catalog) Items() []ShopItem {
	out := make([]ShopItem, 0, len(c.itemOrder))
	for _, name := range c.itemOrder {
		out = append(out, c.items[name])
	}
	return out
}

// Events lists the exploration event templates
func (c *Catalog) Events() []EventTemplate {
	return append([]EventTemplate(nil), c.events...)
}
