package crafting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/potioncraft/internal/catalog"
	"github.com/osse101/potioncraft/internal/concurrency"
	"github.com/osse101/potioncraft/internal/domain"
	"github.com/osse101/potioncraft/internal/event"
)

func newTestService(t *testing.T, store *MockStore, bus event.Bus) Service {
	t.Helper()
	return NewService(catalog.MustDefault(), store, concurrency.NewLockManager(), bus, Options{})
}

func TestCraftPotion_HealthPotionSuccess(t *testing.T) {
	store := NewMockStore()
	store.SetItems(hero.ID, item("herb", "Red Herb", 2), item("water", "Water", 1))
	bus := &recordingBus{}
	svc := newTestService(t, store, bus)

	result, err := svc.CraftPotion(context.Background(), hero, healthPotion)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.True(t, result.Succeeded())
	assert.False(t, result.HasShortfall())
	assert.Equal(t, "Successfully crafted Health Potion (Common)!", result.Message)
	assert.Equal(t, "Common", result.Grade)

	require.NotNil(t, result.Granted)
	assert.Equal(t, healthPotion, result.Granted.Name)
	assert.Equal(t, domain.ItemTypeConsumable, result.Granted.Type)
	assert.Equal(t, 1, *result.Granted.Quantity)
	assert.Equal(t, "Restores a small amount of health.", result.Granted.Description)
	assert.NotEmpty(t, result.Granted.ID)

	require.Len(t, result.Consumed, 2)
	assert.Equal(t, domain.QuantityDelta{ItemID: "herb", Name: "Red Herb", Before: 2, Required: 2, After: 0}, result.Consumed[0])
	assert.Equal(t, domain.QuantityDelta{ItemID: "water", Name: "Water", Before: 1, Required: 1, After: 0}, result.Consumed[1])

	assert.Equal(t, map[string]int{"Red Herb": 0, "Water": 0, healthPotion: 1}, store.quantities(hero.ID))

	require.Len(t, store.createCalls, 1)
	assert.Equal(t, []domain.ItemDescriptor{{
		Name:        healthPotion,
		Type:        domain.ItemTypeConsumable,
		Quantity:    1,
		Description: "Restores a small amount of health.",
	}}, store.createCalls[0])

	events := bus.Events()
	require.Len(t, events, 1)
	assert.Equal(t, event.PotionCrafted, events[0].Type)
	payload, err := event.DecodePayload[event.PotionCraftedPayloadV1](events[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, hero.ID, payload.ActorID)
	assert.Equal(t, result.Granted.ID, payload.ItemID)
}

func TestCraftPotion_OrderingIsLookupVerifyConsumeGrant(t *testing.T) {
	store := NewMockStore()
	store.SetItems(hero.ID, item("herb", "Red Herb", 5), item("water", "Water", 5))
	svc := newTestService(t, store, nil)

	_, err := svc.CraftPotion(context.Background(), hero, healthPotion)
	require.NoError(t, err)

	// verify snapshot, consume snapshot, one batched update, one grant
	assert.Equal(t, []string{"list", "list", "update", "create"}, store.Ops())
	require.Len(t, store.updateCalls, 1)
	assert.Len(t, store.updateCalls[0], 2)
}

func TestCraftPotion_MissingIngredients(t *testing.T) {
	store := NewMockStore()
	store.SetItems(hero.ID, item("herb", "Red Herb", 1))
	bus := &recordingBus{}
	svc := newTestService(t, store, bus)

	result, err := svc.CraftPotion(context.Background(), hero, healthPotion)
	require.NoError(t, err)

	assert.Equal(t, OutcomeMissingIngredients, result.Outcome)
	assert.Equal(t, "You don't have the necessary ingredients for Health Potion (Common).", result.Message)
	assert.ElementsMatch(t, []domain.Shortfall{
		{Name: "Red Herb", Required: 2, Available: 1},
		{Name: "Water", Required: 1, Available: 0},
	}, result.Missing)
	assert.Nil(t, result.Granted)
	assert.Empty(t, result.Consumed)

	assert.Equal(t, []string{"list"}, store.Ops(), "no mutation may follow a failed check")
	assert.Equal(t, map[string]int{"Red Herb": 1}, store.quantities(hero.ID))
	assert.Empty(t, bus.Events())
}

func TestCraftPotion_RecipeNotFoundMakesNoStoreCalls(t *testing.T) {
	store := NewMockStore()
	store.SetItems(hero.ID, item("herb", "Red Herb", 9))
	svc := newTestService(t, store, nil)

	result, err := svc.CraftPotion(context.Background(), hero, "Nonexistent Potion")
	require.NoError(t, err)

	assert.Equal(t, OutcomeRecipeNotFound, result.Outcome)
	assert.Equal(t, "Nonexistent Potion", result.RecipeName)
	assert.Equal(t, MsgRecipeNotFound, result.Message)
	assert.Empty(t, store.Ops())
}

func TestCraftPotion_InvalidActorIsMissingIngredients(t *testing.T) {
	tests := []struct {
		name  string
		actor *domain.Actor
	}{
		{"nil actor", nil},
		{"empty id", &domain.Actor{Name: "Nameless"}},
		{"unknown actor", &domain.Actor{ID: "ghost"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMockStore()
			svc := newTestService(t, store, nil)

			result, err := svc.CraftPotion(context.Background(), tt.actor, healthPotion)
			require.NoError(t, err)
			assert.Equal(t, OutcomeMissingIngredients, result.Outcome)
			assert.Len(t, result.Missing, 2)
			assert.Empty(t, store.updateCalls)
			assert.Empty(t, store.createCalls)
		})
	}
}

func TestCraftPotion_SnapshotFailure(t *testing.T) {
	store := NewMockStore()
	store.listError = errors.New("connection reset")
	svc := newTestService(t, store, nil)

	result, err := svc.CraftPotion(context.Background(), hero, healthPotion)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreOperationFailed)
}

func TestCraftPotion_UpdateFailureDoesNotGrant(t *testing.T) {
	store := NewMockStore()
	store.SetItems(hero.ID, item("herb", "Red Herb", 2), item("water", "Water", 1))
	store.updateError = errors.New("write conflict")
	bus := &recordingBus{}
	svc := newTestService(t, store, bus)

	result, err := svc.CraftPotion(context.Background(), hero, healthPotion)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrStoreOperationFailed)
	assert.Empty(t, store.createCalls)
	assert.Empty(t, bus.Events())
}

func TestCraftPotion_GrantFailureKeepsConsumption(t *testing.T) {
	store := NewMockStore()
	store.SetItems(hero.ID, item("herb", "Red Herb", 2), item("water", "Water", 1))
	store.createError = errors.New("disk full")
	svc := newTestService(t, store, nil)

	result, err := svc.CraftPotion(context.Background(), hero, healthPotion)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrStoreOperationFailed)
	assert.Contains(t, err.Error(), "disk full")

	// no rollback
	assert.Equal(t, map[string]int{"Red Herb": 0, "Water": 0}, store.quantities(hero.ID))
}

func TestCraftPotion_CancelledBeforeConsume(t *testing.T) {
	store := NewMockStore()
	store.SetItems(hero.ID, item("herb", "Red Herb", 2), item("water", "Water", 1))
	svc := newTestService(t, store, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.CraftPotion(ctx, hero, healthPotion)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, store.updateCalls)
	assert.Equal(t, map[string]int{"Red Herb": 2, "Water": 1}, store.quantities(hero.ID))
}

func TestCraftPotion_PublishFailureDoesNotFailCraft(t *testing.T) {
	store := NewMockStore()
	store.SetItems(hero.ID, item("herb", "Red Herb", 2), item("water", "Water", 1))
	bus := &recordingBus{err: errors.New("subscriber exploded")}
	svc := newTestService(t, store, bus)

	result, err := svc.CraftPotion(context.Background(), hero, healthPotion)
	require.NoError(t, err)
	assert.True(t, result.Succeeded())
	assert.Len(t, bus.Events(), 1)
}

func TestCraftPotion_SharedNameUsesFirstEntry(t *testing.T) {
	store := NewMockStore()
	store.SetItems(hero.ID,
		item("herb-a", "Red Herb", 2),
		item("herb-b", "Red Herb", 7),
		item("water", "Water", 1),
	)
	svc := newTestService(t, store, nil)

	result, err := svc.CraftPotion(context.Background(), hero, healthPotion)
	require.NoError(t, err)
	require.True(t, result.Succeeded())
	assert.Equal(t, "herb-a", result.Consumed[0].ItemID)
}

func TestCraftPotion_ShortfallIsReported(t *testing.T) {
	cat, err := catalog.New([]domain.Recipe{{
		Name:        "Double Dip",
		Grade:       domain.GradeCommon,
		Difficulty:  1,
		Description: "Asks for the same herb twice.",
		Ingredients: []domain.IngredientRequirement{
			{Name: "Red Herb", Quantity: 2},
			{Name: "Red Herb", Quantity: 2},
		},
	}})
	require.NoError(t, err)

	store := NewMockStore()
	store.SetItems(hero.ID, item("herb", "Red Herb", 3))
	svc := NewService(cat, store, nil, nil, Options{})

	// each requirement is checked against the undecremented pool
	result, err := svc.CraftPotion(context.Background(), hero, "Double Dip")
	require.NoError(t, err)
	require.True(t, result.Succeeded())
	assert.True(t, result.HasShortfall())

	require.Len(t, result.Consumed, 2)
	assert.Equal(t, 1, result.Consumed[1].Shortfall)
	assert.Equal(t, 0, store.quantities(hero.ID)["Red Herb"])
}

func TestCheckRecipe(t *testing.T) {
	store := NewMockStore()
	store.SetItems(hero.ID, item("herb", "Red Herb", 2), item("water", "Water", 1))
	svc := newTestService(t, store, nil)
	ctx := context.Background()

	result, err := svc.CheckRecipe(ctx, hero, healthPotion)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCraftable, result.Outcome)

	result, err = svc.CheckRecipe(ctx, hero, "Mana Potion (Common)")
	require.NoError(t, err)
	assert.Equal(t, OutcomeMissingIngredients, result.Outcome)

	result, err = svc.CheckRecipe(ctx, hero, "Nonexistent Potion")
	require.NoError(t, err)
	assert.Equal(t, OutcomeRecipeNotFound, result.Outcome)

	assert.Empty(t, store.updateCalls)
	assert.Empty(t, store.createCalls)
}

func TestListRecipesAndGetRecipe(t *testing.T) {
	svc := newTestService(t, NewMockStore(), nil)

	epic := svc.ListRecipes(domain.GradeEpic)
	require.Len(t, epic, 2)
	assert.Equal(t, "Elixir of Vitality (Epic)", epic[0].Name)

	r, ok := svc.GetRecipe(healthPotion)
	require.True(t, ok)
	assert.Equal(t, domain.GradeCommon, r.Grade)

	_, ok = svc.GetRecipe("Nonexistent Potion")
	assert.False(t, ok)

	assert.Equal(t, domain.Grades, svc.Grades())
}

func TestInventory(t *testing.T) {
	store := NewMockStore()
	store.SetItems(hero.ID, item("herb", "Red Herb", 2), domain.Item{ID: "x", Name: "Feather"})
	svc := newTestService(t, store, nil)

	entries, err := svc.Inventory(context.Background(), hero)
	require.NoError(t, err)
	assert.Equal(t, []domain.InventoryEntry{
		{ID: "herb", Name: "Red Herb", Quantity: 2, Type: domain.ItemTypeLoot},
		{ID: "x", Name: "Feather", Quantity: 0},
	}, entries)
}

func TestLastCraft(t *testing.T) {
	store := NewMockStore()
	store.SetItems(hero.ID, item("herb", "Red Herb", 2), item("water", "Water", 1))
	svc := newTestService(t, store, nil)
	ctx := context.Background()

	_, ok := svc.LastCraft(hero.ID)
	assert.False(t, ok)

	_, err := svc.CraftPotion(ctx, hero, healthPotion)
	require.NoError(t, err)
	last, ok := svc.LastCraft(hero.ID)
	require.True(t, ok)
	assert.Equal(t, OutcomeSuccess, last.Outcome)

	_, err = svc.CraftPotion(ctx, hero, healthPotion)
	require.NoError(t, err)
	last, ok = svc.LastCraft(hero.ID)
	require.True(t, ok)
	assert.Equal(t, OutcomeMissingIngredients, last.Outcome)
}
