package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/potioncraft/internal/domain"
	"github.com/osse101/potioncraft/internal/logger"
	"github.com/osse101/potioncraft/internal/repository"
)

// Consumer deducts ingredient quantities from an actor's items
type Consumer struct {
	store  repository.ItemStore
	lookup Lookup
}

// NewConsumer creates a Consumer. A nil lookup falls back to name matching.
func NewConsumer(store repository.ItemStore, lookup Lookup) *Consumer {
	return &Consumer{
		store:  store,
		lookup: lookupOrDefault(lookup),
	}
}

// Consume deducts the requirements from a fresh snapshot of the actor's items and
// writes the new quantities in a single UpdateItems call.
//
// Craftability is not re-verified: quantities are floored at zero and any amount that
// could not be deducted is reported in QuantityDelta.Shortfall. Requirements with no
// matching entry are skipped. Every requirement is computed against the snapshot
// quantity, so repeated requirements for the same entry do not stack: they share a
// single update and the last one wins.
//
// Store failures are returned wrapped in domain.ErrStoreOperationFailed; nothing is
// retried or rolled back.
func (c *Consumer) Consume(ctx context.Context, actor *domain.Actor, requirements []domain.IngredientRequirement) ([]domain.QuantityDelta, error) {
	log := logger.FromContext(ctx)

	entries, err := Snapshot(ctx, c.store, actor)
	if err != nil {
		return nil, err
	}

	deltas, updates := Plan(c.lookup, requirements, entries)
	if len(updates) == 0 {
		log.Debug(LogMsgNothingToConsume, "actorID", actor.ID)
		return deltas, nil
	}

	if err := c.store.UpdateItems(ctx, actor.ID, updates); err != nil {
		return nil, fmt.Errorf(ErrMsgWrapStoreFailureFmt, domain.ErrStoreOperationFailed, fmt.Errorf(ErrMsgUpdateItemsFailed, err))
	}

	log.Debug(LogMsgIngredientsUpdated, "actorID", actor.ID, "updates", len(updates))
	return deltas, nil
}

// Consume is a convenience wrapper using name matching
func Consume(ctx context.Context, store repository.ItemStore, actor *domain.Actor, requirements []domain.IngredientRequirement) ([]domain.QuantityDelta, error) {
	return NewConsumer(store, nil).Consume(ctx, actor, requirements)
}

// Plan computes the deltas and the batched item updates for consuming requirements
// from entries. It performs no I/O.
func Plan(lookup Lookup, requirements []domain.IngredientRequirement, entries []domain.InventoryEntry) ([]domain.QuantityDelta, []domain.ItemUpdate) {
	lookup = lookupOrDefault(lookup)

	updateIndex := make(map[int]int)

	var deltas []domain.QuantityDelta
	var updates []domain.ItemUpdate

	for _, req := range requirements {
		i := lookup.Index(entries, req.Name)
		if i < 0 {
			continue
		}

		before := entries[i].Quantity
		after := before - req.Quantity
		shortfall := 0
		if after < 0 {
			shortfall = -after
			after = 0
		}

		deltas = append(deltas, domain.QuantityDelta{
			ItemID:    entries[i].ID,
			Name:      entries[i].Name,
			Before:    before,
			Required:  req.Quantity,
			After:     after,
			Shortfall: shortfall,
		})

		if u, ok := updateIndex[i]; ok {
			updates[u].Value = after
			continue
		}
		updateIndex[i] = len(updates)
		updates = append(updates, domain.ItemUpdate{
			ItemID: entries[i].ID,
			Field:  domain.FieldQuantity,
			Value:  after,
		})
	}

	return deltas, updates
}
