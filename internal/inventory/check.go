package inventory

import "github.com/osse101/potioncraft/internal/domain"

// CheckResult is the outcome of a craftability check
type CheckResult struct {
	Craftable bool               `json:"craftable"`
	Missing   []domain.Shortfall `json:"missing,omitempty"`
}

// CanCraft reports whether every requirement has a matching entry holding at least
// the required quantity.
func CanCraft(requirements []domain.IngredientRequirement, entries []domain.InventoryEntry) bool {
	return CanCraftWith(DefaultLookup, requirements, entries)
}

// CanCraftWith is CanCraft using a custom lookup
func CanCraftWith(lookup Lookup, requirements []domain.IngredientRequirement, entries []domain.InventoryEntry) bool {
	lookup = lookupOrDefault(lookup)
	for _, req := range requirements {
		i := lookup.Index(entries, req.Name)
		if i < 0 || entries[i].Quantity < req.Quantity {
			return false
		}
	}
	return true
}

// Check evaluates every requirement and collects the unmet ones.
// Each requirement is tested against the same, undecremented entries, so duplicate
// requirement names are not summed.
func Check(requirements []domain.IngredientRequirement, entries []domain.InventoryEntry) CheckResult {
	return CheckWith(DefaultLookup, requirements, entries)
}

// CheckWith is Check using a custom lookup
func CheckWith(lookup Lookup, requirements []domain.IngredientRequirement, entries []domain.InventoryEntry) CheckResult {
	lookup = lookupOrDefault(lookup)

	var missing []domain.Shortfall
	for _, req := range requirements {
		available := 0
		if i := lookup.Index(entries, req.Name); i >= 0 {
			available = entries[i].Quantity
		}
		if available < req.Quantity {
			missing = append(missing, domain.Shortfall{
				Name:      req.Name,
				Required:  req.Quantity,
				Available: available,
			})
		}
	}

	return CheckResult{
		Craftable: len(missing) == 0,
		Missing:   missing,
	}
}
