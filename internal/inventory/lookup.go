package inventory

import "github.com/osse101/potioncraft/internal/domain"

// Lookup resolves an ingredient requirement to the snapshot entry that pays for it.
// Index returns -1 when nothing matches.
type Lookup interface {
	Index(entries []domain.InventoryEntry, name string) int
}

// NameLookup matches by display name. Records sharing a name form one name key
// and the first entry in snapshot order answers for it.
type NameLookup struct{}

// Index implements Lookup
func (NameLookup) Index(entries []domain.InventoryEntry, name string) int {
	for i, e := range entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// DefaultLookup is the lookup used when none is supplied
var DefaultLookup Lookup = NameLookup{}

func lookupOrDefault(l Lookup) Lookup {
	if l == nil {
		return DefaultLookup
	}
	return l
}
