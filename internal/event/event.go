package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/PetBot_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Pet event types
const (
	PetAdopted       Type = domain.EventTypePetAdopted
	PetLeveledUp     Type = domain.EventTypePetLeveledUp
	PetEvolved       Type = domain.EventTypePetEvolved
	ItemPurchased    Type = domain.EventTypeItemPurchased
	PetFed           Type = domain.EventTypePetFed
	ExploreCompleted Type = domain.EventTypeExploreCompleted
	DuelCompleted    Type = domain.EventTypeDuelCompleted
)

// AllPetTypes lists every event type published by the pet services
var AllPetTypes = []Type{
	PetAdopted, PetLeveledUp, PetEvolved, ItemPurchased, PetFed, ExploreCompleted, DuelCompleted,
}

// Typed event payloads for type safety

// PetRef identifies the pet an event is about
type PetRef struct {
	OwnerID     string `json:"owner_id"`
	CommunityID string `json:"community_id"`
}

func refOf(key domain.PetKey) PetRef {
	return PetRef{OwnerID: key.OwnerID, CommunityID: key.CommunityID}
}

// PetAdoptedPayloadV1 is the typed payload for pet.adopted
type PetAdoptedPayloadV1 struct {
	Pet       PetRef `json:"pet"`
	Name      string `json:"name"`
	SpeciesID string `json:"species_id"`
	Timestamp int64  `json:"timestamp"`
}

// PetLeveledUpPayloadV1 is the typed payload for pet.leveled_up
type PetLeveledUpPayloadV1 struct {
	Pet         PetRef `json:"pet"`
	OldLevel    int    `json:"old_level"`
	NewLevel    int    `json:"new_level"`
	AttackGain  int    `json:"attack_gain"`
	DefenseGain int    `json:"defense_gain"`
	Source      string `json:"source"`
	Timestamp   int64  `json:"timestamp"`
}

// PetEvolvedPayloadV1 is the typed payload for pet.evolved
type PetEvolvedPayloadV1 struct {
	Pet       PetRef `json:"pet"`
	FromStage int    `json:"from_stage"`
	ToStage   int    `json:"to_stage"`
	ToName    string `json:"to_name"`
	Timestamp int64  `json:"timestamp"`
}

// ItemPurchasedPayloadV1 is the typed payload for shop.item_purchased
type ItemPurchasedPayloadV1 struct {
	Pet       PetRef `json:"pet"`
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	TotalCost int    `json:"total_cost"`
	Timestamp int64  `json:"timestamp"`
}

// PetFedPayloadV1 is the typed payload for pet.fed
type PetFedPayloadV1 struct {
	Pet        PetRef `json:"pet"`
	ItemName   string `json:"item_name"`
	NewSatiety int    `json:"new_satiety"`
	NewMood    int    `json:"new_mood"`
	Timestamp  int64  `json:"timestamp"`
}

// ExploreCompletedPayloadV1 is the typed payload for explore.completed
type ExploreCompletedPayloadV1 struct {
	Pet       PetRef `json:"pet"`
	Outcome   string `json:"outcome"`
	Won       bool   `json:"won"`
	ExpGain   int    `json:"exp_gain"`
	MoneyGain int    `json:"money_gain"`
	Timestamp int64  `json:"timestamp"`
}

// DuelCompletedPayloadV1 is the typed payload for duel.completed
type DuelCompletedPayloadV1 struct {
	Winner    PetRef `json:"winner"`
	Loser     PetRef `json:"loser"`
	Rounds    int    `json:"rounds"`
	Timestamp int64  `json:"timestamp"`
}

func newEvent(t Type, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
	}
}

// NewPetAdoptedEvent creates a pet.adopted event
func NewPetAdoptedEvent(p *domain.Pet) Event {
	return newEvent(PetAdopted, PetAdoptedPayloadV1{
		Pet:       refOf(p.Key()),
		Name:      p.Name,
		SpeciesID: p.SpeciesID,
		Timestamp: p.CreatedAt.Unix(),
	})
}

// NewPetLeveledUpEvent creates a pet.leveled_up event
func NewPetLeveledUpEvent(key domain.PetKey, oldLevel, newLevel, attackGain, defenseGain int, source string, at time.Time) Event {
	return newEvent(PetLeveledUp, PetLeveledUpPayloadV1{
		Pet:         refOf(key),
		OldLevel:    oldLevel,
		NewLevel:    newLevel,
		AttackGain:  attackGain,
		DefenseGain: defenseGain,
		Source:      source,
		Timestamp:   at.Unix(),
	})
}

// NewPetEvolvedEvent creates a pet.evolved event
func NewPetEvolvedEvent(key domain.PetKey, fromStage, toStage int, toName string, at time.Time) Event {
	return newEvent(PetEvolved, PetEvolvedPayloadV1{
		Pet:       refOf(key),
		FromStage: fromStage,
		ToStage:   toStage,
		ToName:    toName,
		Timestamp: at.Unix(),
	})
}

// NewItemPurchasedEvent creates a shop.item_purchased event
func NewItemPurchasedEvent(key domain.PetKey, itemName string, quantity, totalCost int, at time.Time) Event {
	return newEvent(ItemPurchased, ItemPurchasedPayloadV1{
		Pet:       refOf(key),
		ItemName:  itemName,
		Quantity:  quantity,
		TotalCost: totalCost,
		Timestamp: at.Unix(),
	})
}

// NewPetFedEvent creates a pet.fed event
func NewPetFedEvent(key domain.PetKey, itemName string, satiety, mood int, at time.Time) Event {
	return newEvent(PetFed, PetFedPayloadV1{
		Pet:        refOf(key),
		ItemName:   itemName,
		NewSatiety: satiety,
		NewMood:    mood,
		Timestamp:  at.Unix(),
	})
}

// NewExploreCompletedEvent creates an explore.completed event
func NewExploreCompletedEvent(key domain.PetKey, outcome domain.ExploreOutcome, won bool, expGain, moneyGain int, at time.Time) Event {
	return newEvent(ExploreCompleted, ExploreCompletedPayloadV1{
		Pet:       refOf(key),
		Outcome:   string(outcome),
		Won:       won,
		ExpGain:   expGain,
		MoneyGain: moneyGain,
		Timestamp: at.Unix(),
	})
}

// NewDuelCompletedEvent creates a duel.completed event
func NewDuelCompletedEvent(winner, loser domain.PetKey, rounds int, at time.Time) Event {
	return newEvent(DuelCompleted, DuelCompletedPayloadV1{
		Winner:    refOf(winner),
		Loser:     refOf(loser),
		Rounds:    rounds,
		Timestamp: at.Unix(),
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// For now, we execute handlers synchronously.
	// In the future, or with configuration, we could dispatch these to a worker pool
	// or run them in goroutines.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
