package catalog

import (
	_ "embed"
	"fmt"
)

//go:embed recipes.yaml
var defaultRecipes []byte

//go:embed recipes.schema.json
var schemaData []byte

// Default returns the built-in potion catalog
func Default() (*Catalog, error) {
	c, err := Parse(defaultRecipes, FormatYAML)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadDefaultFailed, err)
	}
	return c, nil
}

// MustDefault is Default for package initialisation and tests
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}
