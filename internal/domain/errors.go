package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Actor errors
	ErrMsgInvalidActor  = "invalid actor"
	ErrMsgActorNotFound = "actor not found"

	// Recipe/Crafting errors
	ErrMsgRecipeNotFound      = "recipe not found"
	ErrMsgInvalidRecipe       = "invalid recipe"
	ErrMsgInvalidGrade        = "invalid grade"
	ErrMsgDuplicateRecipeName = "duplicate recipe name"

	// Store errors
	ErrMsgStoreOperationFailed = "store operation failed"
	ErrMsgItemNotFound         = "item not found"
	ErrMsgTxClosed             = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Actor errors
	ErrInvalidActor  = errors.New(ErrMsgInvalidActor)
	ErrActorNotFound = errors.New(ErrMsgActorNotFound)

	// Recipe/Crafting errors
	ErrRecipeNotFound      = errors.New(ErrMsgRecipeNotFound)
	ErrInvalidRecipe       = errors.New(ErrMsgInvalidRecipe)
	ErrInvalidGrade        = errors.New(ErrMsgInvalidGrade)
	ErrDuplicateRecipeName = errors.New(ErrMsgDuplicateRecipeName)

	// Store errors
	ErrStoreOperationFailed = errors.New(ErrMsgStoreOperationFailed)
	ErrItemNotFound         = errors.New(ErrMsgItemNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
