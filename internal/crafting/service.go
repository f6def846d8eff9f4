package crafting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/potioncraft/internal/catalog"
	"github.com/osse101/potioncraft/internal/concurrency"
	"github.com/osse101/potioncraft/internal/domain"
	"github.com/osse101/potioncraft/internal/event"
	"github.com/osse101/potioncraft/internal/inventory"
	"github.com/osse101/potioncraft/internal/logger"
	"github.com/osse101/potioncraft/internal/metrics"
	"github.com/osse101/potioncraft/internal/repository"
)

// Service defines the interface for crafting operations
type Service interface {
	// CraftPotion runs lookup, verify, consume, grant and report for one recipe.
	// Expected outcomes come back as a Result with a nil error; only store
	// failures (and cancellation before consumption) return an error.
	CraftPotion(ctx context.Context, actor *domain.Actor, recipeName string) (*Result, error)

	// CheckRecipe previews a craft without mutating anything
	CheckRecipe(ctx context.Context, actor *domain.Actor, recipeName string) (*Result, error)

	Inventory(ctx context.Context, actor *domain.Actor) ([]domain.InventoryEntry, error)
	ListRecipes(grade domain.Grade) []domain.Recipe
	GetRecipe(name string) (domain.Recipe, bool)
	Grades() []domain.Grade
	LastCraft(actorID string) (*Result, bool)
}

// Options tunes a Service. Zero values select the defaults.
type Options struct {
	Lookup    inventory.Lookup
	CacheSize int
	CacheTTL  time.Duration
}

type service struct {
	catalog     *catalog.Catalog
	store       repository.ItemStore
	lookup      inventory.Lookup
	consumer    *inventory.Consumer
	lockManager *concurrency.LockManager
	bus         event.Bus
	results     *resultCache
}

// NewService creates a new crafting service. bus may be nil.
func NewService(cat *catalog.Catalog, store repository.ItemStore, lockManager *concurrency.LockManager, bus event.Bus, opts Options) Service {
	lookup := opts.Lookup
	if lookup == nil {
		lookup = inventory.DefaultLookup
	}
	if lockManager == nil {
		lockManager = concurrency.NewLockManager()
	}

	return &service{
		catalog:     cat,
		store:       store,
		lookup:      lookup,
		consumer:    inventory.NewConsumer(store, lookup),
		lockManager: lockManager,
		bus:         bus,
		results:     newResultCache(opts.CacheSize, opts.CacheTTL),
	}
}

func actorID(actor *domain.Actor) string {
	if actor == nil {
		return ""
	}
	return actor.ID
}

// CraftPotion implements Service
func (s *service) CraftPotion(ctx context.Context, actor *domain.Actor, recipeName string) (*Result, error) {
	started := time.Now()
	log := logger.FromContext(ctx).With("actorID", actorID(actor), "recipe", recipeName)
	log.Info(LogMsgCraftRequested)

	recipe, ok := s.catalog.FindByName(recipeName)
	if !ok {
		log.Info(LogMsgRecipeNotFound)
		result := recipeNotFound(actorID(actor), recipeName)
		s.finish(result, started)
		return result, nil
	}

	// Without an id there is nothing to lock and nothing to mutate
	if actorID(actor) == "" {
		result, err := s.craft(ctx, actor, recipe)
		s.finishOrFail(result, err, started)
		return result, err
	}

	var result *Result
	err := s.lockManager.WithLock(actor.ID, func() error {
		var err error
		result, err = s.craft(ctx, actor, recipe)
		return err
	})
	s.finishOrFail(result, err, started)
	return result, err
}

// craft runs verify, consume, grant and report. The caller holds the actor lock.
func (s *service) craft(ctx context.Context, actor *domain.Actor, recipe domain.Recipe) (*Result, error) {
	log := logger.FromContext(ctx).With("actorID", actorID(actor), "recipe", recipe.Name)

	check, err := s.verify(ctx, actor, recipe)
	if err != nil {
		return nil, err
	}
	if !check.Craftable {
		log.Info(LogMsgMissingIngredients, "missing", len(check.Missing))
		return missingIngredients(actorID(actor), recipe, check.Missing), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgCraftAbortedFmt, recipe.Name, err)
	}

	// Past this point the craft runs to completion or reports failure
	ctx = context.WithoutCancel(ctx)

	consumed, err := s.consumer.Consume(ctx, actor, recipe.Ingredients)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgConsumeFailedFmt, recipe.Name, err)
	}
	for _, d := range consumed {
		if d.Shortfall > 0 {
			log.Warn(LogMsgShortfall,
				"ingredient", d.Name,
				"itemID", d.ItemID,
				"before", d.Before,
				"required", d.Required,
				"shortfall", d.Shortfall)
		}
	}

	grant := GrantFor(recipe)
	created, err := s.store.CreateItems(ctx, actor.ID, []domain.ItemDescriptor{grant})
	if err != nil {
		log.Error(LogMsgGrantFailed, "error", err, "consumed", consumed)
		return nil, fmt.Errorf(ErrMsgGrantFailedFmt, domain.ErrStoreOperationFailed, recipe.Name, err)
	}

	granted := domain.Item{
		Name:        grant.Name,
		Type:        grant.Type,
		Quantity:    domain.IntPtr(grant.Quantity),
		Description: grant.Description,
	}
	if len(created) > 0 {
		granted = created[0]
	}

	log.Info(LogMsgCraftSucceeded, "itemID", granted.ID)
	s.publish(ctx, event.NewPotionCraftedEvent(actor.ID, recipe, granted.ID, consumed, EventSource))

	return succeeded(actor.ID, recipe, granted, consumed), nil
}

// verify snapshots the inventory and checks the recipe against it. An invalid
// actor is reported as an empty inventory.
func (s *service) verify(ctx context.Context, actor *domain.Actor, recipe domain.Recipe) (inventory.CheckResult, error) {
	entries, err := inventory.Snapshot(ctx, s.store, actor)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidActor) {
			return inventory.CheckResult{}, fmt.Errorf(ErrMsgSnapshotFailedFmt, recipe.Name, err)
		}
		logger.FromContext(ctx).Warn(LogMsgInvalidActor, "error", err)
	}
	return inventory.CheckWith(s.lookup, recipe.Ingredients, entries), nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func (s *service) finish(result *Result, started time.Time) {
	metrics.RecordCraft(string(result.Outcome), started)
	s.results.Set(result.ActorID, result)
}

func (s *service) finishOrFail(result *Result, err error, started time.Time) {
	if err != nil {
		metrics.RecordCraft(metrics.OutcomeError, started)
		return
	}
	s.finish(result, started)
}

// CheckRecipe implements Service
func (s *service) CheckRecipe(ctx context.Context, actor *domain.Actor, recipeName string) (*Result, error) {
	recipe, ok := s.catalog.FindByName(recipeName)
	if !ok {
		return recipeNotFound(actorID(actor), recipeName), nil
	}

	check, err := s.verify(ctx, actor, recipe)
	if err != nil {
		return nil, err
	}
	if !check.Craftable {
		return missingIngredients(actorID(actor), recipe, check.Missing), nil
	}
	return craftable(actorID(actor), recipe), nil
}

// Inventory implements Service
func (s *service) Inventory(ctx context.Context, actor *domain.Actor) ([]domain.InventoryEntry, error) {
	return inventory.Snapshot(ctx, s.store, actor)
}

// ListRecipes implements Service
func (s *service) ListRecipes(grade domain.Grade) []domain.Recipe {
	return s.catalog.FilterByGrade(grade)
}

// GetRecipe implements Service
func (s *service) GetRecipe(name string) (domain.Recipe, bool) {
	return s.catalog.FindByName(name)
}

// Grades implements Service
func (s *service) Grades() []domain.Grade {
	return s.catalog.Grades()
}

// LastCraft implements Service
func (s *service) LastCraft(actorID string) (*Result, bool) {
	return s.results.Get(actorID)
}
