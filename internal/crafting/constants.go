package crafting

import "time"

// Result cache defaults
const (
	DefaultResultCacheSize = 1024
	DefaultResultCacheTTL  = 30 * time.Minute

	// ResultCacheSchemaVersion invalidates cached results when Result changes shape
	ResultCacheSchemaVersion = "1.0"
)

// EventSource tags events published by this service
const EventSource = "crafting"

// Player-facing messages
const (
	MsgRecipeNotFound     = "Error: Recipe not found."
	MsgMissingIngredients = "You don't have the necessary ingredients for %s."
	MsgCraftSucceeded     = "Successfully crafted %s!"
	MsgCraftable          = "%s can be crafted."
)

// Error messages
const (
	ErrMsgSnapshotFailedFmt = "failed to read inventory for %s: %w"
	ErrMsgConsumeFailedFmt  = "failed to consume ingredients for %s: %w"
	ErrMsgGrantFailedFmt    = "%w: failed to grant %s: %w"
	ErrMsgCraftAbortedFmt   = "craft of %s aborted before consuming: %w"
)

// Log messages
const (
	LogMsgCraftRequested     = "Craft requested"
	LogMsgRecipeNotFound     = "Recipe not found"
	LogMsgInvalidActor       = "Crafting for an invalid actor, nothing is craftable"
	LogMsgMissingIngredients = "Missing ingredients"
	LogMsgShortfall          = "Ingredient quantity floored at zero during consumption"
	LogMsgGrantFailed        = "Ingredients consumed but grant failed"
	LogMsgCraftSucceeded     = "Potion crafted"
	LogMsgPublishFailed      = "Failed to publish crafting event"
)
