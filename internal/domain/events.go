package domain

// EventType identifies a domain event published on the event bus
type EventType string

const (
	EventTypePotionCrafted EventType = "potion.crafted"
)

// Event metadata keys
const (
	MetadataKeyRecipeName = "recipe_name"
	MetadataKeyGrade      = "grade"
	MetadataKeySource     = "source"
)
