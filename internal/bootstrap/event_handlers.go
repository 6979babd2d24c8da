package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/PetBot_Go/internal/event"
	"github.com/osse101/PetBot_Go/internal/logger"
	"github.com/osse101/PetBot_Go/internal/metrics"
)

// RegisterEventHandlers subscribes the metrics collector and the debug
// event logger to every pet event
func RegisterEventHandlers(bus event.Bus) error {
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsRegistered)

	for _, t := range event.AllPetTypes {
		bus.Subscribe(t, logEvent)
	}
	return nil
}

func logEvent(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Debug(LogMsgEventReceived, "type", evt.Type, "version", evt.Version, "payload", evt.Payload)
	return nil
}
