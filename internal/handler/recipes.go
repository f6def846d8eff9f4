package handler

import (
	"net/http"

	"github.com/osse101/potioncraft/internal/crafting"
	"github.com/osse101/potioncraft/internal/domain"
	"github.com/osse101/potioncraft/internal/logger"
)

// RecipeListResponse is the body of GET /recipes
type RecipeListResponse struct {
	Grade   domain.Grade    `json:"grade"`
	Grades  []domain.Grade  `json:"grades"`
	Recipes []domain.Recipe `json:"recipes"`
}

// RecipeListQuery holds the query parameters of GET /recipes
type RecipeListQuery struct {
	Grade string `json:"grade" validate:"max=32,grade"`
}

// HandleListRecipes lists the recipes of one grade. Without a grade query
// parameter the Common tier is shown.
func HandleListRecipes(svc crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := RecipeListQuery{Grade: GetOptionalQueryParam(r, ParamGrade, string(domain.GradeCommon))}
		if err := GetValidator().ValidateStruct(query); err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgServiceError, "operation", "List recipes", "grade", query.Grade, "error", err)
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidGradeError,
				Fields: FormatValidationError(err),
			})
			return
		}

		grade, err := domain.ParseGrade(query.Grade)
		if err != nil {
			respondServiceError(w, r, "List recipes", err)
			return
		}

		respondJSON(w, http.StatusOK, RecipeListResponse{
			Grade:   grade,
			Grades:  svc.Grades(),
			Recipes: svc.ListRecipes(grade),
		})
	}
}

// HandleGetRecipe returns a single recipe by exact name
func HandleGetRecipe(svc crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := getPathParam(r, w, ParamName)
		if !ok {
			return
		}

		recipe, found := svc.GetRecipe(name)
		if !found {
			respondError(w, http.StatusNotFound, ErrMsgRecipeNotFoundError)
			return
		}
		respondJSON(w, http.StatusOK, recipe)
	}
}
