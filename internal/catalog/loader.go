package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/osse101/potioncraft/internal/domain"
)

// File is the on-disk representation of a recipe catalog
type File struct {
	Version     string      `yaml:"version" json:"version"`
	Description string      `yaml:"description" json:"description"`
	Recipes     []RecipeDef `yaml:"recipes" json:"recipes"`
}

// RecipeDef represents a single recipe in a catalog file
type RecipeDef struct {
	Name        string          `yaml:"name" json:"name" validate:"required,max=100"`
	Grade       string          `yaml:"grade" json:"grade" validate:"required,grade"`
	Ingredients []IngredientDef `yaml:"ingredients" json:"ingredients" validate:"required,min=1,dive"`
	Difficulty  int             `yaml:"difficulty" json:"difficulty" validate:"min=1"`
	Description string          `yaml:"description" json:"description"`
}

// IngredientDef represents an ingredient requirement in a catalog file
type IngredientDef struct {
	Name     string `yaml:"name" json:"name" validate:"required,max=100"`
	Quantity int    `yaml:"quantity" json:"quantity" validate:"min=1"`
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// LoadFile reads a catalog from a .yaml, .yml or .json file
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, path, err)
	}

	format, err := formatFromPath(path)
	if err != nil {
		return nil, err
	}

	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Default().Info(LogMsgCatalogLoaded, "path", path, "recipes", c.Len())
	return c, nil
}

// Parse decodes catalog data in the given format and builds a Catalog
func Parse(data []byte, format string) (*Catalog, error) {
	var file File

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf(ErrMsgParseCatalogFailed, format, err)
		}
	case FormatJSON:
		if err := validateSchema(data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf(ErrMsgParseCatalogFailed, format, err)
		}
	default:
		return nil, fmt.Errorf(ErrMsgUnknownFormatFmt, format)
	}

	return file.Build()
}

// Build validates the definitions and converts them into a Catalog
func (f *File) Build() (*Catalog, error) {
	if len(f.Recipes) == 0 {
		return nil, errors.New(ErrMsgEmptyCatalog)
	}

	recipes := make([]domain.Recipe, 0, len(f.Recipes))
	for i, def := range f.Recipes {
		if err := validateDef(def); err != nil {
			return nil, fmt.Errorf("recipes[%d]: %w", i, err)
		}
		recipes = append(recipes, def.toRecipe())
	}

	return New(recipes)
}

func (d RecipeDef) toRecipe() domain.Recipe {
	ingredients := make([]domain.IngredientRequirement, len(d.Ingredients))
	for i, ing := range d.Ingredients {
		ingredients[i] = domain.IngredientRequirement{Name: ing.Name, Quantity: ing.Quantity}
	}
	return domain.Recipe{
		Name:        d.Name,
		Grade:       domain.Grade(d.Grade),
		Ingredients: ingredients,
		Difficulty:  d.Difficulty,
		Description: d.Description,
	}
}

func defFromRecipe(r domain.Recipe) RecipeDef {
	var ingredients []IngredientDef
	if r.Ingredients != nil {
		ingredients = make([]IngredientDef, len(r.Ingredients))
		for i, ing := range r.Ingredients {
			ingredients[i] = IngredientDef{Name: ing.Name, Quantity: ing.Quantity}
		}
	}
	return RecipeDef{
		Name:        r.Name,
		Grade:       string(r.Grade),
		Ingredients: ingredients,
		Difficulty:  r.Difficulty,
		Description: r.Description,
	}
}

func formatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf(ErrMsgUnknownFormatFmt, filepath.Ext(path))
	}
}

// validateSchema checks JSON catalog data against the embedded JSON schema
func validateSchema(data []byte) error {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaData))
		if err != nil {
			schemaErr = fmt.Errorf(ErrMsgSchemaCompileFailed, err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(SchemaFile, doc); err != nil {
			schemaErr = fmt.Errorf(ErrMsgSchemaCompileFailed, err)
			return
		}
		schema, schemaErr = c.Compile(SchemaFile)
		if schemaErr != nil {
			schemaErr = fmt.Errorf(ErrMsgSchemaCompileFailed, schemaErr)
		}
	})
	if schemaErr != nil {
		return schemaErr
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf(ErrMsgParseCatalogFailed, FormatJSON, err)
	}
	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf(ErrMsgSchemaValidateFailed, err)
	}
	return nil
}
