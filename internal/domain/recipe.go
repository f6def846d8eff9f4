package domain

// IngredientRequirement is a single (name, quantity) pair a recipe demands.
// Name references an inventory item by display name, not by a stable id.
type IngredientRequirement struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Recipe is an immutable crafting recipe producing one consumable item
type Recipe struct {
	Name        string                  `json:"name"`
	Grade       Grade                   `json:"grade"`
	Ingredients []IngredientRequirement `json:"ingredients"`
	Difficulty  int                     `json:"difficulty"`
	Description string                  `json:"description"`
}

// Clone returns a deep copy so callers cannot mutate catalog state through the ingredient slice
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = make([]IngredientRequirement, len(r.Ingredients))
	copy(out.Ingredients, r.Ingredients)
	return out
}
