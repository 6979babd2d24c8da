package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/PetBot_Go/internal/catalog"
	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/duel"
	"github.com/osse101/PetBot_Go/internal/economy"
	"github.com/osse101/PetBot_Go/internal/explore"
	"github.com/osse101/PetBot_Go/internal/pet"
	"github.com/osse101/PetBot_Go/internal/status"
)

type MockPetService struct {
	mock.Mock
}

func (m *MockPetService) Adopt(ctx context.Context, key domain.PetKey, name, speciesID string) (*domain.Pet, error) {
	args := m.Called(ctx, key, name, speciesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pet), args.Error(1)
}

func (m *MockPetService) Status(ctx context.Context, key domain.PetKey) (*status.Snapshot, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*status.Snapshot), args.Error(1)
}

func (m *MockPetService) Card(ctx context.Context, key domain.PetKey, ownerDisplayName string) (status.Rendered, error) {
	args := m.Called(ctx, key, ownerDisplayName)
	return args.Get(0).(status.Rendered), args.Error(1)
}

func (m *MockPetService) Evolve(ctx context.Context, key domain.PetKey) (*pet.EvolveResult, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pet.EvolveResult), args.Error(1)
}

type MockExploreService struct {
	mock.Mock
}

func (m *MockExploreService) Explore(ctx context.Context, key domain.PetKey) (*explore.Result, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*explore.Result), args.Error(1)
}

type MockDuelService struct {
	mock.Mock
}

func (m *MockDuelService) Duel(ctx context.Context, challenger domain.PetKey, opponentOwnerID string) (*duel.Result, error) {
	args := m.Called(ctx, challenger, opponentOwnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*duel.Result), args.Error(1)
}

type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) Purchase(ctx context.Context, key domain.PetKey, itemName string, quantity int) (*economy.PurchaseResult, error) {
	args := m.Called(ctx, key, itemName, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.PurchaseResult), args.Error(1)
}

func (m *MockEconomyService) Feed(ctx context.Context, key domain.PetKey, itemName string) (*economy.FeedResult, error) {
	args := m.Called(ctx, key, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.FeedResult), args.Error(1)
}

func (m *MockEconomyService) ListShop() []catalog.ShopItem {
	args := m.Called()
	return args.Get(0).([]catalog.ShopItem)
}

func (m *MockEconomyService) Backpack(ctx context.Context, key domain.PetKey) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}
