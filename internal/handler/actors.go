package handler

import (
	"net/http"

	"github.com/osse101/potioncraft/internal/crafting"
	"github.com/osse101/potioncraft/internal/domain"
	"github.com/osse101/potioncraft/internal/logger"
	"github.com/osse101/potioncraft/internal/repository"
)

// CraftRequest is the body of POST /actors/{actorID}/craft
type CraftRequest struct {
	Recipe string `json:"recipe" validate:"required,max=100,recipename"`
}

// InventoryResponse is the body of GET /actors/{actorID}/inventory
type InventoryResponse struct {
	ActorID string                  `json:"actor_id"`
	Items   []domain.InventoryEntry `json:"items"`
}

// HandleGetInventory returns the actor's normalized inventory snapshot
func HandleGetInventory(svc crafting.Service, actors repository.ActorStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := resolveActor(w, r, actors)
		if !ok {
			return
		}

		entries, err := svc.Inventory(r.Context(), actor)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetInventoryFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, InventoryResponse{ActorID: actor.ID, Items: entries})
	}
}

// HandleCheckCraftable previews a craft without changing the inventory.
// Both craftable and missing-ingredient previews answer 200.
func HandleCheckCraftable(svc crafting.Service, actors repository.ActorStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := resolveActor(w, r, actors)
		if !ok {
			return
		}
		recipeName, ok := GetQueryParam(r, w, ParamRecipe)
		if !ok {
			return
		}

		result, err := svc.CheckRecipe(r.Context(), actor, recipeName)
		if err != nil {
			respondServiceError(w, r, ErrMsgCheckFailed, err)
			return
		}

		status := http.StatusOK
		if result.Outcome == crafting.OutcomeRecipeNotFound {
			status = http.StatusNotFound
		}
		respondJSON(w, status, result)
	}
}

// HandleCraftPotion crafts a potion for the actor
func HandleCraftPotion(svc crafting.Service, actors repository.ActorStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := resolveActor(w, r, actors)
		if !ok {
			return
		}

		var req CraftRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Craft potion"); err != nil {
			return
		}

		log := logger.FromContext(r.Context())
		log.Debug("Craft potion request", "actorID", actor.ID, "recipe", req.Recipe)

		result, err := svc.CraftPotion(r.Context(), actor, req.Recipe)
		if err != nil {
			respondServiceError(w, r, ErrMsgCraftFailed, err)
			return
		}

		respondJSON(w, craftStatus(result.Outcome), result)
	}
}

// HandleGetLastCraft returns the most recent cached craft result for the actor
func HandleGetLastCraft(svc crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, ok := getPathParam(r, w, ParamActorID)
		if !ok {
			return
		}

		result, found := svc.LastCraft(actorID)
		if !found {
			respondError(w, http.StatusNotFound, ErrMsgNoRecentCraftError)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

func craftStatus(outcome crafting.Outcome) int {
	switch outcome {
	case crafting.OutcomeRecipeNotFound:
		return http.StatusNotFound
	case crafting.OutcomeMissingIngredients:
		return http.StatusConflict
	default:
		return http.StatusOK
	}
}
