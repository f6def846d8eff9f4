package catalog

import (
	"fmt"

	"github.com/osse101/potioncraft/internal/domain"
)

// Catalog is an immutable, ordered table of recipes keyed by name
type Catalog struct {
	recipes []domain.Recipe
	byName  map[string]int
}

// New validates recipes and builds a catalog preserving declaration order.
// The input slice is copied; later changes to it do not affect the catalog.
func New(recipes []domain.Recipe) (*Catalog, error) {
	c := &Catalog{
		recipes: make([]domain.Recipe, 0, len(recipes)),
		byName:  make(map[string]int, len(recipes)),
	}

	for i, r := range recipes {
		if err := validateRecipe(r); err != nil {
			return nil, fmt.Errorf("recipe %d (%q): %w", i, r.Name, err)
		}
		if _, dup := c.byName[r.Name]; dup {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateRecipeName, r.Name)
		}
		c.byName[r.Name] = len(c.recipes)
		c.recipes = append(c.recipes, r.Clone())
	}

	return c, nil
}

// FindByName returns the recipe with the exact name.
// A miss is an expected outcome and reported through the bool.
func (c *Catalog) FindByName(name string) (domain.Recipe, bool) {
	i, ok := c.byName[name]
	if !ok {
		return domain.Recipe{}, false
	}
	return c.recipes[i].Clone(), true
}

// FilterByGrade returns the recipes of one grade in declaration order
func (c *Catalog) FilterByGrade(grade domain.Grade) []domain.Recipe {
	out := make([]domain.Recipe, 0)
	for _, r := range c.recipes {
		if r.Grade == grade {
			out = append(out, r.Clone())
		}
	}
	return out
}

// All returns every recipe in declaration order
func (c *Catalog) All() []domain.Recipe {
	out := make([]domain.Recipe, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = r.Clone()
	}
	return out
}

// Grades returns the grades that have at least one recipe, lowest tier first
func (c *Catalog) Grades() []domain.Grade {
	present := make(map[domain.Grade]bool)
	for _, r := range c.recipes {
		present[r.Grade] = true
	}

	var out []domain.Grade
	for _, g := range domain.Grades {
		if present[g] {
			out = append(out, g)
		}
	}
	return out
}

// Len returns the number of recipes
func (c *Catalog) Len() int {
	return len(c.recipes)
}
