package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/potioncraft/internal/domain"
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

// Event types
const (
	PotionCrafted Type = Type(domain.EventTypePotionCrafted)
)

// ConsumedIngredientV1 describes one inventory entry drawn down by a craft
type ConsumedIngredientV1 struct {
	Name      string `json:"name"`
	Before    int    `json:"before"`
	Required  int    `json:"required"`
	After     int    `json:"after"`
	Shortfall int    `json:"shortfall,omitempty"`
}

// PotionCraftedPayloadV1 is the typed payload for potion crafted events
type PotionCraftedPayloadV1 struct {
	ActorID    string                 `json:"actor_id"`
	RecipeName string                 `json:"recipe_name"`
	Grade      string                 `json:"grade"`
	ItemID     string                 `json:"item_id"`
	Consumed   []ConsumedIngredientV1 `json:"consumed"`
	Timestamp  int64                  `json:"timestamp"`
}

// NewPotionCraftedEvent creates a new potion crafted event
func NewPotionCraftedEvent(actorID string, recipe domain.Recipe, itemID string, deltas []domain.QuantityDelta, source string) Event {
	consumed := make([]ConsumedIngredientV1, 0, len(deltas))
	for _, d := range deltas {
		consumed = append(consumed, ConsumedIngredientV1{
			Name:      d.Name,
			Before:    d.Before,
			Required:  d.Required,
			After:     d.After,
			Shortfall: d.Shortfall,
		})
	}

	return Event{
		Version: EventSchemaVersion,
		Type:    PotionCrafted,
		Payload: PotionCraftedPayloadV1{
			ActorID:    actorID,
			RecipeName: recipe.Name,
			Grade:      recipe.Grade.String(),
			ItemID:     itemID,
			Consumed:   consumed,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			domain.MetadataKeyRecipeName: recipe.Name,
			domain.MetadataKeyGrade:      recipe.Grade.String(),
			domain.MetadataKeySource:     source,
		},
	}
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

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

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
