package metrics

import (
	"context"
	"fmt"
	"strconv"

	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/duel"
	"github.com/osse101/PetBot_Go/internal/event"
	"github.com/osse101/PetBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all pet events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllPetTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case event.PetAdoptedPayloadV1:
		PetsAdopted.WithLabelValues(p.SpeciesID).Inc()

	case event.PetLeveledUpPayloadV1:
		PetLevelUps.WithLabelValues(p.Source).Inc()

	case event.PetEvolvedPayloadV1:
		PetEvolutions.WithLabelValues(strconv.Itoa(p.ToStage)).Inc()

	case event.ItemPurchasedPayloadV1:
		ItemsPurchased.WithLabelValues(p.ItemName).Add(float64(p.Quantity))
		MoneySpent.Add(float64(p.TotalCost))

	case event.PetFedPayloadV1:
		PetsFed.WithLabelValues(p.ItemName).Inc()

	case event.ExploreCompletedPayloadV1:
		Explorations.WithLabelValues(p.Outcome, exploreResult(p)).Inc()
		if p.MoneyGain > 0 {
			MoneyEarned.WithLabelValues(SourceExplore).Add(float64(p.MoneyGain))
		}

	case event.DuelCompletedPayloadV1:
		Duels.Inc()
		DuelRounds.Observe(float64(p.Rounds))
		MoneyEarned.WithLabelValues(SourceDuel).Add(duel.WinnerMoney)

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "payload", fmt.Sprintf("%T", evt.Payload))
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func exploreResult(p event.ExploreCompletedPayloadV1) string {
	switch {
	case p.Outcome != string(domain.ExploreOutcomeBattle):
		return ResultNone
	case p.Won:
		return ResultWon
	default:
		return ResultLost
	}
}
