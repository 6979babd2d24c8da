package economy

import (
	"context"
	"time"

	"github.com/osse101/PetBot_Go/internal/catalog"
	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/event"
	"github.com/osse101/PetBot_Go/internal/repository"
)

// PurchaseResult describes a committed purchase
type PurchaseResult struct {
	Item           catalog.ShopItem `json:"item"`
	Quantity       int              `json:"quantity"`
	TotalCost      int              `json:"total_cost"`
	RemainingMoney int              `json:"remaining_money"`
	Owned          int              `json:"owned"`
}

// FeedResult describes a committed feeding
type FeedResult struct {
	Item        catalog.ShopItem `json:"item"`
	SatietyGain int              `json:"satiety_gain"`
	MoodGain    int              `json:"mood_gain"`
	Satiety     int              `json:"satiety"`
	Mood        int              `json:"mood"`
	Remaining   int              `json:"remaining"`
}

// Service defines the interface for shop and backpack operations
type Service interface {
	Purchase(ctx context.Context, key domain.PetKey, itemName string, quantity int) (*PurchaseResult, error)
	Feed(ctx context.Context, key domain.PetKey, itemName string) (*FeedResult, error)
	ListShop() []catalog.ShopItem
	Backpack(ctx context.Context, key domain.PetKey) ([]domain.InventoryEntry, error)
}

type service struct {
	repo      repository.PetRepository
	catalog   *catalog.Catalog
	publisher event.Publisher
	now       func() time.Time
}

// NewService creates a new economy service. publisher may be nil.
func NewService(repo repository.PetRepository, cat *catalog.Catalog, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		catalog:   cat,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *service) ListShop() []catalog.ShopItem {
	return s.catalog.Items()
}

func (s *service) Backpack(ctx context.Context, key domain.PetKey) ([]domain.InventoryEntry, error) {
	if _, err := s.repo.GetPet(ctx, key); err != nil {
		return nil, err
	}
	return s.repo.GetInventory(ctx, key)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}
