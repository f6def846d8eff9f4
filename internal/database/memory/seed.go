package memory

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/potioncraft/internal/domain"
)

// SeedFile describes actors and their starting items
type SeedFile struct {
	Actors []SeedActor `yaml:"actors"`
}

// SeedActor is one actor entry in a seed file
type SeedActor struct {
	ID    string     `yaml:"id"`
	Name  string     `yaml:"name"`
	Items []SeedItem `yaml:"items"`
}

// SeedItem is one item entry in a seed file. A missing quantity stays unset.
type SeedItem struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Quantity    *int   `yaml:"quantity"`
	Description string `yaml:"description"`
}

// LoadSeedFile reads a YAML seed file into the store
func (s *ItemStore) LoadSeedFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return s.LoadSeed(data)
}

// LoadSeed decodes YAML seed data into the store, replacing actors with the same id
func (s *ItemStore) LoadSeed(data []byte) error {
	var seed SeedFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		return fmt.Errorf("failed to parse seed: %w", err)
	}

	for i, a := range seed.Actors {
		if a.ID == "" {
			return fmt.Errorf("%w: actors[%d] has no id", domain.ErrInvalidInput, i)
		}
		items := make([]domain.Item, 0, len(a.Items))
		for _, it := range a.Items {
			items = append(items, domain.Item{
				ID:          it.ID,
				Name:        it.Name,
				Type:        it.Type,
				Quantity:    it.Quantity,
				Description: it.Description,
			})
		}
		s.PutActor(domain.Actor{ID: a.ID, Name: a.Name}, items...)
	}
	return nil
}
