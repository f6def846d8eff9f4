package inventory

// Error messages
const (
	ErrMsgNilActorFmt         = "%w: actor reference is nil"
	ErrMsgEmptyActorIDFmt     = "%w: actor has no id"
	ErrMsgUnknownActorFmt     = "%w: %s"
	ErrMsgListItemsFailed     = "failed to list items: %w"
	ErrMsgUpdateItemsFailed   = "failed to update items: %w"
	ErrMsgWrapStoreFailureFmt = "%w: %w"
)

// Log messages
const (
	LogMsgInvalidActor       = "Invalid actor provided, treating inventory as empty"
	LogMsgIngredientsUpdated = "Ingredient quantities updated"
	LogMsgNothingToConsume   = "No held ingredients matched, skipping update"
)
