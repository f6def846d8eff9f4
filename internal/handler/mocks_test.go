package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/potioncraft/internal/crafting"
	"github.com/osse101/potioncraft/internal/domain"
)

// MockCraftingService mocks crafting.Service
type MockCraftingService struct {
	mock.Mock
}

func (m *MockCraftingService) CraftPotion(ctx context.Context, actor *domain.Actor, recipeName string) (*crafting.Result, error) {
	args := m.Called(ctx, actor, recipeName)
	res, _ := args.Get(0).(*crafting.Result)
	return res, args.Error(1)
}

func (m *MockCraftingService) CheckRecipe(ctx context.Context, actor *domain.Actor, recipeName string) (*crafting.Result, error) {
	args := m.Called(ctx, actor, recipeName)
	res, _ := args.Get(0).(*crafting.Result)
	return res, args.Error(1)
}

func (m *MockCraftingService) Inventory(ctx context.Context, actor *domain.Actor) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, actor)
	entries, _ := args.Get(0).([]domain.InventoryEntry)
	return entries, args.Error(1)
}

func (m *MockCraftingService) ListRecipes(grade domain.Grade) []domain.Recipe {
	args := m.Called(grade)
	recipes, _ := args.Get(0).([]domain.Recipe)
	return recipes
}

func (m *MockCraftingService) GetRecipe(name string) (domain.Recipe, bool) {
	args := m.Called(name)
	return args.Get(0).(domain.Recipe), args.Bool(1)
}

func (m *MockCraftingService) Grades() []domain.Grade {
	args := m.Called()
	grades, _ := args.Get(0).([]domain.Grade)
	return grades
}

func (m *MockCraftingService) LastCraft(actorID string) (*crafting.Result, bool) {
	args := m.Called(actorID)
	res, _ := args.Get(0).(*crafting.Result)
	return res, args.Bool(1)
}

// MockActorStore mocks repository.ActorStore
type MockActorStore struct {
	mock.Mock
}

func (m *MockActorStore) GetActor(ctx context.Context, actorID string) (*domain.Actor, error) {
	args := m.Called(ctx, actorID)
	actor, _ := args.Get(0).(*domain.Actor)
	return actor, args.Error(1)
}
