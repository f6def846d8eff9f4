package repository

import (
	"context"

	"github.com/osse101/potioncraft/internal/domain"
)

// ItemStore is the host's item storage for actors.
// Implementations must serialize mutations to the same actor's items.
type ItemStore interface {
	// ListItems returns the actor's items in a stable order.
	// Returns domain.ErrActorNotFound when the actor does not exist.
	ListItems(ctx context.Context, actorID string) ([]domain.Item, error)

	// UpdateItems applies all updates as one batch
	UpdateItems(ctx context.Context, actorID string, updates []domain.ItemUpdate) error

	// CreateItems creates new items on the actor and returns the stored records
	CreateItems(ctx context.Context, actorID string, items []domain.ItemDescriptor) ([]domain.Item, error)
}

// ActorStore resolves actor references. Stores used by the HTTP surface implement it.
type ActorStore interface {
	GetActor(ctx context.Context, actorID string) (*domain.Actor, error)
}
