package crafting

import (
	"fmt"
	"time"

	"github.com/osse101/potioncraft/internal/domain"
)

// Outcome is the kind of result a craft attempt produced
type Outcome string

const (
	OutcomeSuccess            Outcome = "success"
	OutcomeRecipeNotFound     Outcome = "recipe_not_found"
	OutcomeMissingIngredients Outcome = "missing_ingredients"

	// OutcomeCraftable is only reported by previews
	OutcomeCraftable Outcome = "craftable"
)

// Result reports the outcome of a craft attempt or preview.
// Missing is set for OutcomeMissingIngredients; Granted and Consumed for OutcomeSuccess.
type Result struct {
	Outcome     Outcome                `json:"outcome"`
	ActorID     string                 `json:"actor_id,omitempty"`
	RecipeName  string                 `json:"recipe_name"`
	Grade       string                 `json:"grade,omitempty"`
	Message     string                 `json:"message"`
	Missing     []domain.Shortfall     `json:"missing,omitempty"`
	Granted     *domain.Item           `json:"granted,omitempty"`
	Consumed    []domain.QuantityDelta `json:"consumed,omitempty"`
	CompletedAt time.Time              `json:"completed_at"`
}

// Succeeded reports whether a potion was granted
func (r *Result) Succeeded() bool {
	return r != nil && r.Outcome == OutcomeSuccess
}

// HasShortfall reports whether any consumed ingredient hit the zero floor
func (r *Result) HasShortfall() bool {
	if r == nil {
		return false
	}
	for _, d := range r.Consumed {
		if d.Shortfall > 0 {
			return true
		}
	}
	return false
}

func recipeNotFound(actorID, name string) *Result {
	return &Result{
		Outcome:     OutcomeRecipeNotFound,
		ActorID:     actorID,
		RecipeName:  name,
		Message:     MsgRecipeNotFound,
		CompletedAt: time.Now(),
	}
}

func missingIngredients(actorID string, recipe domain.Recipe, missing []domain.Shortfall) *Result {
	return &Result{
		Outcome:     OutcomeMissingIngredients,
		ActorID:     actorID,
		RecipeName:  recipe.Name,
		Grade:       recipe.Grade.String(),
		Message:     fmt.Sprintf(MsgMissingIngredients, recipe.Name),
		Missing:     missing,
		CompletedAt: time.Now(),
	}
}

func craftable(actorID string, recipe domain.Recipe) *Result {
	return &Result{
		Outcome:     OutcomeCraftable,
		ActorID:     actorID,
		RecipeName:  recipe.Name,
		Grade:       recipe.Grade.String(),
		Message:     fmt.Sprintf(MsgCraftable, recipe.Name),
		CompletedAt: time.Now(),
	}
}

func succeeded(actorID string, recipe domain.Recipe, granted domain.Item, consumed []domain.QuantityDelta) *Result {
	return &Result{
		Outcome:     OutcomeSuccess,
		ActorID:     actorID,
		RecipeName:  recipe.Name,
		Grade:       recipe.Grade.String(),
		Message:     fmt.Sprintf(MsgCraftSucceeded, recipe.Name),
		Granted:     &granted,
		Consumed:    consumed,
		CompletedAt: time.Now(),
	}
}

// GrantFor describes the item a successful craft of recipe creates
func GrantFor(recipe domain.Recipe) domain.ItemDescriptor {
	return domain.ItemDescriptor{
		Name:        recipe.Name,
		Type:        domain.ItemTypeConsumable,
		Quantity:    1,
		Description: recipe.Description,
	}
}
