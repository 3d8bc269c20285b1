package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/smartdine/dinerag/internal/domain"
)

// seedFile is the YAML shape of a catalog seed file.
type seedFile struct {
	Restaurants []seedRestaurant `yaml:"restaurants"`
}

type seedRestaurant struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Cuisine     string  `yaml:"cuisine"`
	PriceRange  string  `yaml:"price_range"`
	Rating      float64 `yaml:"rating"`
	Tags        string  `yaml:"tags"`
	Description string  `yaml:"description"`
}

// LoadSeedFile reads restaurants from a YAML seed file, used to populate an
// empty catalog at startup.
func LoadSeedFile(path string) ([]domain.Restaurant, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	restaurants := make([]domain.Restaurant, 0, len(seed.Restaurants))
	for i, r := range seed.Restaurants {
		if r.ID == "" {
			return nil, fmt.Errorf("seed file %s: restaurant %d has no id", path, i)
		}
		restaurants = append(restaurants, domain.Restaurant{
			ID:          r.ID,
			Name:        r.Name,
			Cuisine:     r.Cuisine,
			PriceRange:  r.PriceRange,
			Rating:      r.Rating,
			Tags:        r.Tags,
			Description: r.Description,
		})
	}
	return restaurants, nil
}
