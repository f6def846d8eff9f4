package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/potioncraft/internal/domain"
	"github.com/osse101/potioncraft/internal/logger"
	"github.com/osse101/potioncraft/internal/repository"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req CraftRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Craft potion"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter.
// If ok is false, the HTTP response has already been written and the handler should return.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(LogMsgMissingParam, "param", paramName)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam returns the query parameter or defaultValue when it is absent
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// getPathParam reads a chi URL parameter, answering 400 when it is empty.
// chi matches on the raw path when one is set, so the value is unescaped here.
func getPathParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := chi.URLParam(r, paramName)
	if unescaped, err := url.PathUnescape(value); err == nil {
		value = unescaped
	}
	if value == "" {
		logger.FromContext(r.Context()).Warn(LogMsgMissingParam, "param", paramName)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, paramName))
		return "", false
	}
	return value, true
}

// resolveActor turns the actorID path parameter into an actor. Unknown actors
// are passed through by id so the crafting rules decide what they may do.
// If ok is false, the HTTP response has already been written.
func resolveActor(w http.ResponseWriter, r *http.Request, actors repository.ActorStore) (*domain.Actor, bool) {
	id, ok := getPathParam(r, w, ParamActorID)
	if !ok {
		return nil, false
	}
	if actors == nil {
		return &domain.Actor{ID: id}, true
	}

	actor, err := actors.GetActor(r.Context(), id)
	switch {
	case err == nil:
		return actor, true
	case errors.Is(err, domain.ErrActorNotFound):
		return &domain.Actor{ID: id}, true
	default:
		logger.FromContext(r.Context()).Error(LogMsgResolveActorFailed, "actorID", id, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgResolveActorFailed)
		return nil, false
	}
}
