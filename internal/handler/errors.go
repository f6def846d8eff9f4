package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgMissingPathParam  = "Missing %s path parameter"

	// Operation failures
	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgCraftFailed        = "Failed to craft potion"
	ErrMsgCheckFailed        = "Failed to check recipe"
	ErrMsgResolveActorFailed = "Failed to resolve actor"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgActorNotFoundError  = "Actor not found"
	ErrMsgRecipeNotFoundError = "Recipe not found"
	ErrMsgInvalidGradeError   = "Invalid grade. Use one of Common, Uncommon, Rare, Epic or Legendary."
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgNoRecentCraftError  = "No recent craft for this actor"
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."
)

// Query and path parameter names
const (
	ParamActorID = "actorID"
	ParamName    = "name"
	ParamGrade   = "grade"
	ParamRecipe  = "recipe"
)

// Log messages
const (
	LogMsgDecodeFailed       = "Failed to decode request"
	LogMsgRequestDecoded     = "Request decoded"
	LogMsgMissingParam       = "Missing request parameter"
	LogMsgServiceError       = "Service call failed"
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response buffer"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgResolveActorFailed = "Failed to resolve actor"
)
