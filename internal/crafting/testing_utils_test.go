package crafting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/potioncraft/internal/domain"
	"github.com/osse101/potioncraft/internal/event"
)

// MockStore is an in-memory ItemStore that logs the order of calls, with error injection
type MockStore struct {
	sync.Mutex
	items  map[string][]domain.Item
	nextID int

	ops         []string
	updateCalls [][]domain.ItemUpdate
	createCalls [][]domain.ItemDescriptor

	listError   error
	updateError error
	createError error

	// listDelay widens the read-then-write window in concurrency tests
	listDelay time.Duration
}

func NewMockStore() *MockStore {
	return &MockStore{items: make(map[string][]domain.Item)}
}

func (m *MockStore) SetItems(actorID string, items ...domain.Item) {
	m.Lock()
	defer m.Unlock()
	m.items[actorID] = append([]domain.Item(nil), items...)
}

func (m *MockStore) ListItems(ctx context.Context, actorID string) ([]domain.Item, error) {
	m.Lock()
	m.ops = append(m.ops, "list")
	if m.listError != nil {
		m.Unlock()
		return nil, m.listError
	}
	items, ok := m.items[actorID]
	out := make([]domain.Item, len(items))
	for i, it := range items {
		out[i] = it
		if it.Quantity != nil {
			out[i].Quantity = domain.IntPtr(*it.Quantity)
		}
	}
	delay := m.listDelay
	m.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if !ok {
		return nil, domain.ErrActorNotFound
	}
	return out, nil
}

func (m *MockStore) UpdateItems(ctx context.Context, actorID string, updates []domain.ItemUpdate) error {
	m.Lock()
	defer m.Unlock()
	m.ops = append(m.ops, "update")
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

func (m *MockStore) CreateItems(ctx context.Context, actorID string, descs []domain.ItemDescriptor) ([]domain.Item, error) {
	m.Lock()
	defer m.Unlock()
	m.ops = append(m.ops, "create")
	m.createCalls = append(m.createCalls, append([]domain.ItemDescriptor(nil), descs...))
	if m.createError != nil {
		return nil, m.createError
	}

	created := make([]domain.Item, 0, len(descs))
	for _, d := range descs {
		m.nextID++
		it := domain.Item{
			ID:          fmt.Sprintf("crafted-%d", m.nextID),
			Name:        d.Name,
			Type:        d.Type,
			Quantity:    domain.IntPtr(d.Quantity),
			Description: d.Description,
		}
		m.items[actorID] = append(m.items[actorID], it)
		created = append(created, it)
	}
	return created, nil
}

func (m *MockStore) Ops() []string {
	m.Lock()
	defer m.Unlock()
	return append([]string(nil), m.ops...)
}

// quantities sums held quantity per name
func (m *MockStore) quantities(actorID string) map[string]int {
	m.Lock()
	defer m.Unlock()
	out := make(map[string]int)
	for _, it := range m.items[actorID] {
		q := 0
		if it.Quantity != nil {
			q = *it.Quantity
		}
		out[it.Name] += q
	}
	return out
}

// recordingBus captures published events
type recordingBus struct {
	sync.Mutex
	events []event.Event
	err    error
}

func (b *recordingBus) Publish(ctx context.Context, evt event.Event) error {
	b.Lock()
	defer b.Unlock()
	b.events = append(b.events, evt)
	return b.err
}

func (b *recordingBus) Subscribe(event.Type, event.Handler) {}

func (b *recordingBus) Events() []event.Event {
	b.Lock()
	defer b.Unlock()
	return append([]event.Event(nil), b.events...)
}

func item(id, name string, qty int) domain.Item {
	return domain.Item{ID: id, Name: name, Type: domain.ItemTypeLoot, Quantity: domain.IntPtr(qty)}
}

var hero = &domain.Actor{ID: "actor-1", Name: "Hero"}

const healthPotion = "Health Potion (Common)"
