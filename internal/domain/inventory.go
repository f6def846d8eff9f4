package domain

// Item types and writable fields understood by item stores
const (
	ItemTypeConsumable = "consumable"
	ItemTypeLoot       = "loot"

	FieldQuantity = "quantity"
)

// Actor is the external entity (player character) that owns items
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item is a raw item record as held by the external store.
// Quantity is nil when the store has no quantity recorded for the item.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Quantity    *int   `json:"quantity,omitempty"`
	Description string `json:"description,omitempty"`
}

// InventoryEntry is a normalized, point-in-time view of one held item
type InventoryEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Type     string `json:"type"`
}

// ItemUpdate sets one field of one item
type ItemUpdate struct {
	ItemID string `json:"item_id"`
	Field  string `json:"field"`
	Value  int    `json:"value"`
}

// ItemDescriptor describes an item to be created on an actor
type ItemDescriptor struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
}

// QuantityDelta records the effect of consuming one ingredient.
// Shortfall is the amount that could not be deducted because the floor at zero was hit.
type QuantityDelta struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	Before    int    `json:"before"`
	Required  int    `json:"required"`
	After     int    `json:"after"`
	Shortfall int    `json:"shortfall,omitempty"`
}

// Shortfall describes a requirement that the inventory cannot satisfy
type Shortfall struct {
	Name      string `json:"name"`
	Required  int    `json:"required"`
	Available int    `json:"available"`
}

// IntPtr is a helper for building Item records with a quantity
func IntPtr(v int) *int {
	return &v
}
