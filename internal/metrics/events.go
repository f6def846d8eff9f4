package metrics

import (
	"context"

	"github.com/osse101/potioncraft/internal/event"
	"github.com/osse101/potioncraft/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to the crafting events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	bus.Subscribe(event.PotionCrafted, e.HandleEvent)
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.PotionCrafted:
		payload, err := event.DecodePayload[event.PotionCraftedPayloadV1](evt.Payload)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			log.Warn(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}

		PotionsCrafted.WithLabelValues(payload.RecipeName, payload.Grade).Inc()
		for _, c := range payload.Consumed {
			if used := c.Before - c.After; used > 0 {
				IngredientsConsumed.WithLabelValues(c.Name).Add(float64(used))
			}
			if c.Shortfall > 0 {
				IngredientShortfalls.WithLabelValues(c.Name).Add(float64(c.Shortfall))
			}
		}
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
