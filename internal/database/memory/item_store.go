// Package memory provides an in-process ItemStore for hosts without a database
// and for tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/potioncraft/internal/domain"
)

type actorRecord struct {
	actor domain.Actor
	items []domain.Item
}

// ItemStore keeps actors and their items in memory.
// Mutations to one store are serialized by a single mutex.
type ItemStore struct {
	mu     sync.RWMutex
	actors map[string]*actorRecord
	newID  func() string
}

// NewItemStore creates an empty store
func NewItemStore() *ItemStore {
	return &ItemStore{
		actors: make(map[string]*actorRecord),
		newID:  uuid.NewString,
	}
}

// PutActor creates or replaces an actor and its items.
// Items without an ID get a generated one.
func (s *ItemStore) PutActor(actor domain.Actor, items ...domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &actorRecord{actor: actor, items: make([]domain.Item, 0, len(items))}
	for _, it := range items {
		if it.ID == "" {
			it.ID = s.newID()
		}
		rec.items = append(rec.items, copyItem(it))
	}
	s.actors[actor.ID] = rec
}

// GetActor returns the actor or domain.ErrActorNotFound
func (s *ItemStore) GetActor(ctx context.Context, actorID string) (*domain.Actor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.actors[actorID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrActorNotFound, actorID)
	}
	actor := rec.actor
	return &actor, nil
}

// ListItems implements repository.ItemStore
func (s *ItemStore) ListItems(ctx context.Context, actorID string) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.actors[actorID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrActorNotFound, actorID)
	}

	out := make([]domain.Item, len(rec.items))
	for i, it := range rec.items {
		out[i] = copyItem(it)
	}
	return out, nil
}

// UpdateItems implements repository.ItemStore. The batch is validated first and
// applied only if every update is valid.
func (s *ItemStore) UpdateItems(ctx context.Context, actorID string, updates []domain.ItemUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.actors[actorID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrActorNotFound, actorID)
	}

	indexes := make([]int, len(updates))
	for i, u := range updates {
		if u.Field != domain.FieldQuantity {
			return fmt.Errorf("%w: unsupported field %q", domain.ErrInvalidInput, u.Field)
		}
		idx := rec.indexOf(u.ItemID)
		if idx < 0 {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, u.ItemID)
		}
		indexes[i] = idx
	}

	for i, u := range updates {
		rec.items[indexes[i]].Quantity = domain.IntPtr(u.Value)
	}
	return nil
}

// CreateItems implements repository.ItemStore
func (s *ItemStore) CreateItems(ctx context.Context, actorID string, items []domain.ItemDescriptor) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.actors[actorID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrActorNotFound, actorID)
	}

	created := make([]domain.Item, 0, len(items))
	for _, d := range items {
		it := domain.Item{
			ID:          s.newID(),
			Name:        d.Name,
			Type:        d.Type,
			Quantity:    domain.IntPtr(d.Quantity),
			Description: d.Description,
		}
		rec.items = append(rec.items, it)
		created = append(created, copyItem(it))
	}
	return created, nil
}

func (r *actorRecord) indexOf(itemID string) int {
	for i, it := range r.items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

func copyItem(it domain.Item) domain.Item {
	if it.Quantity != nil {
		it.Quantity = domain.IntPtr(*it.Quantity)
	}
	return it
}
