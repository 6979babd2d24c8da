package economy

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/event"
	"github.com/osse101/PetBot_Go/internal/repository"
)

// MockRepository implements repository.PetRepository for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetPet(ctx context.Context, key domain.PetKey) (*domain.Pet, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pet), args.Error(1)
}

func (m *MockRepository) CreatePet(ctx context.Context, pet *domain.Pet) error {
	return m.Called(ctx, pet).Error(0)
}

func (m *MockRepository) UpdatePet(ctx context.Context, key domain.PetKey, update domain.PetUpdate) error {
	return m.Called(ctx, key, update).Error(0)
}

func (m *MockRepository) GetInventory(ctx context.Context, key domain.PetKey) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context, keys ...domain.PetKey) (repository.PetTx, error) {
	args := m.Called(ctx, keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.PetTx), args.Error(1)
}

// MockTx implements repository.PetTx for testing
type MockTx struct {
	MockRepository
}

func (m *MockTx) GetInventoryQuantity(ctx context.Context, key domain.PetKey, itemName string) (int, error) {
	args := m.Called(ctx, key, itemName)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) AddInventory(ctx context.Context, key domain.PetKey, itemName string, delta int) (int, error) {
	args := m.Called(ctx, key, itemName, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// recordingPublisher captures published events
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) PublishWithRetry(_ context.Context, evt event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) Types() []event.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Type, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}
