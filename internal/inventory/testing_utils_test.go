package inventory

import (
	"context"
	"sync"

	"github.com/osse101/potioncraft/internal/domain"
)

// MockStore is an in-memory ItemStore recording every call, with error injection
type MockStore struct {
	sync.Mutex
	items map[string][]domain.Item

	listCalls   int
	updateCalls [][]domain.ItemUpdate
	createCalls [][]domain.ItemDescriptor

	listError   error
	updateError error
	createError error
}

func NewMockStore() *MockStore {
	return &MockStore{items: make(map[string][]domain.Item)}
}

// SetItems replaces the actor's items, creating the actor if needed
func (m *MockStore) SetItems(actorID string, items ...domain.Item) {
	m.Lock()
	defer m.Unlock()
	m.items[actorID] = append([]domain.Item(nil), items...)
}

func (m *MockStore) ListItems(ctx context.Context, actorID string) ([]domain.Item, error) {
	m.Lock()
	defer m.Unlock()
	m.listCalls++
	if m.listError != nil {
		return nil, m.listError
	}
	items, ok := m.items[actorID]
	if !ok {
		return nil, domain.ErrActorNotFound
	}
	out := make([]domain.Item, len(items))
	for i, it := range items {
		out[i] = it
		if it.Quantity != nil {
			out[i].Quantity = domain.IntPtr(*it.Quantity)
		}
	}
	return out, nil
}

func (m *MockStore) UpdateItems(ctx context.Context, actorID string, updates []domain.ItemUpdate) error {
	m.Lock()
	defer m.Unlock()
	m.updateCalls = append(m.updateCalls, append([]domain.ItemUpdate(nil), updates...))
	if m.updateError != nil {
		return m.updateError
	}
	for _, u := range updates {
		for i := range m.items[actorID] {
			if m.items[actorID][i].ID == u.ItemID {
				m.items[actorID][i].Quantity = domain.IntPtr(u.Value)
			}
		}
	}
	return nil
}

func (m *MockStore) CreateItems(ctx context.Context, actorID string, items []domain.ItemDescriptor) ([]domain.Item, error) {
	m.Lock()
	defer m.Unlock()
	m.createCalls = append(m.createCalls, append([]domain.ItemDescriptor(nil), items...))
	if m.createError != nil {
		return nil, m.createError
	}
	return nil, nil
}

// quantity returns the stored quantity of the item with id, or -1 if absent
func (m *MockStore) quantity(actorID, id string) int {
	m.Lock()
	defer m.Unlock()
	for _, it := range m.items[actorID] {
		if it.ID == id {
			if it.Quantity == nil {
				return 0
			}
			return *it.Quantity
		}
	}
	return -1
}

func item(id, name string, qty int) domain.Item {
	return domain.Item{ID: id, Name: name, Type: domain.ItemTypeLoot, Quantity: domain.IntPtr(qty)}
}

func healthPotionCommon() []domain.IngredientRequirement {
	return []domain.IngredientRequirement{
		{Name: "Red Herb", Quantity: 2},
		{Name: "Water", Quantity: 1},
	}
}
