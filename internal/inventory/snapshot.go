package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/potioncraft/internal/domain"
	"github.com/osse101/potioncraft/internal/logger"
	"github.com/osse101/potioncraft/internal/repository"
)

// Snapshot reads the actor's items and normalizes them into inventory entries.
//
// An absent actor, an actor without an id, or an actor unknown to the store yields an
// empty snapshot together with an error wrapping domain.ErrInvalidActor; callers should
// treat that as "nothing craftable". Other store failures wrap
// domain.ErrStoreOperationFailed.
func Snapshot(ctx context.Context, store repository.ItemStore, actor *domain.Actor) ([]domain.InventoryEntry, error) {
	log := logger.FromContext(ctx)

	if actor == nil {
		log.Warn(LogMsgInvalidActor, "reason", "nil actor")
		return []domain.InventoryEntry{}, fmt.Errorf(ErrMsgNilActorFmt, domain.ErrInvalidActor)
	}
	if actor.ID == "" {
		log.Warn(LogMsgInvalidActor, "reason", "empty id", "actor", actor.Name)
		return []domain.InventoryEntry{}, fmt.Errorf(ErrMsgEmptyActorIDFmt, domain.ErrInvalidActor)
	}

	items, err := store.ListItems(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrActorNotFound) {
			log.Warn(LogMsgInvalidActor, "reason", "unknown actor", "actorID", actor.ID)
			return []domain.InventoryEntry{}, fmt.Errorf(ErrMsgUnknownActorFmt, domain.ErrInvalidActor, actor.ID)
		}
		return []domain.InventoryEntry{}, fmt.Errorf(ErrMsgWrapStoreFailureFmt, domain.ErrStoreOperationFailed, fmt.Errorf(ErrMsgListItemsFailed, err))
	}

	return Entries(items), nil
}

// Entries normalizes raw item records. Missing or negative quantities become 0.
func Entries(items []domain.Item) []domain.InventoryEntry {
	entries := make([]domain.InventoryEntry, 0, len(items))
	for _, item := range items {
		qty := 0
		if item.Quantity != nil && *item.Quantity > 0 {
			qty = *item.Quantity
		}
		entries = append(entries, domain.InventoryEntry{
			ID:       item.ID,
			Name:     item.Name,
			Quantity: qty,
			Type:     item.Type,
		})
	}
	return entries
}
