package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PetBot_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: PetFed}))
}

func TestNewPetEvents(t *testing.T) {
	key := domain.NewPetKey("u1", "g1")
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	evt := NewPetLeveledUpEvent(key, 1, 2, 1, 2, "explore", at)
	assert.Equal(t, PetLeveledUp, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)

	payload, err := DecodePayload[PetLeveledUpPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, "u1", payload.Pet.OwnerID)
	assert.Equal(t, 2, payload.NewLevel)
	assert.Equal(t, at.Unix(), payload.Timestamp)

	duel := NewDuelCompletedEvent(key, domain.NewPetKey("u2", "g1"), 4, at)
	dp, err := DecodePayload[DuelCompletedPayloadV1](duel.Payload)
	require.NoError(t, err)
	assert.Equal(t, "u2", dp.Loser.OwnerID)
	assert.Equal(t, 4, dp.Rounds)
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{
		"pet":       map[string]interface{}{"owner_id": "u9", "community_id": "g9"},
		"item_name": "tasty can",
		"quantity":  2,
	}
	p, err := DecodePayload[ItemPurchasedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "u9", p.Pet.OwnerID)
	assert.Equal(t, 2, p.Quantity)
}

func TestGetMetadataValue(t *testing.T) {
	evt := Event{Metadata: map[string]interface{}{"source": "duel"}}
	assert.Equal(t, "duel", evt.GetMetadataValue("source"))
	assert.Nil(t, Event{}.GetMetadataValue("source"))
}
