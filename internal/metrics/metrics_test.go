package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/duel"
	"github.com/osse101/PetBot_Go/internal/event"
)

func TestEventMetricsCollector_RecordsPetEvents(t *testing.T) {
	ctx := context.Background()
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	key := domain.NewPetKey("metrics-u1", "g1")
	now := time.Now()

	boughtBefore := testutil.ToFloat64(ItemsPurchased.WithLabelValues("metrics ration"))
	spentBefore := testutil.ToFloat64(MoneySpent)
	wonBefore := testutil.ToFloat64(Explorations.WithLabelValues("battle", ResultWon))
	eventBefore := testutil.ToFloat64(Explorations.WithLabelValues("event", ResultNone))
	duelsBefore := testutil.ToFloat64(Duels)
	duelMoneyBefore := testutil.ToFloat64(MoneyEarned.WithLabelValues(SourceDuel))
	levelsBefore := testutil.ToFloat64(PetLevelUps.WithLabelValues(SourceExplore))

	require.NoError(t, bus.Publish(ctx, event.NewItemPurchasedEvent(key, "metrics ration", 3, 30, now)))
	require.NoError(t, bus.Publish(ctx, event.NewExploreCompletedEvent(key, domain.ExploreOutcomeBattle, true, 25, 13, now)))
	require.NoError(t, bus.Publish(ctx, event.NewExploreCompletedEvent(key, domain.ExploreOutcomeEvent, false, 0, 0, now)))
	require.NoError(t, bus.Publish(ctx, event.NewDuelCompletedEvent(key, domain.NewPetKey("metrics-u2", "g1"), 3, now)))
	require.NoError(t, bus.Publish(ctx, event.NewPetLeveledUpEvent(key, 1, 2, 1, 2, SourceExplore, now)))

	assert.Equal(t, boughtBefore+3, testutil.ToFloat64(ItemsPurchased.WithLabelValues("metrics ration")))
	assert.Equal(t, spentBefore+30, testutil.ToFloat64(MoneySpent))
	assert.Equal(t, wonBefore+1, testutil.ToFloat64(Explorations.WithLabelValues("battle", ResultWon)))
	assert.Equal(t, eventBefore+1, testutil.ToFloat64(Explorations.WithLabelValues("event", ResultNone)))
	assert.Equal(t, duelsBefore+1, testutil.ToFloat64(Duels))
	assert.Equal(t, duelMoneyBefore+duel.WinnerMoney, testutil.ToFloat64(MoneyEarned.WithLabelValues(SourceDuel)))
	assert.Equal(t, levelsBefore+1, testutil.ToFloat64(PetLevelUps.WithLabelValues(SourceExplore)))
}

func TestEventMetricsCollector_UnknownPayload(t *testing.T) {
	before := testutil.ToFloat64(EventsPublished.WithLabelValues("custom.thing"))
	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{Type: "custom.thing", Payload: 42})
	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(EventsPublished.WithLabelValues("custom.thing")))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/pets/{owner}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/pets/{owner}", "418"))

	for _, owner := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pets/"+owner, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/pets/{owner}", "418")))
	assert.Zero(t, testutil.ToFloat64(HTTPRequestsInFlight))
}
