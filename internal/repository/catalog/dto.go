package catalog

import (
	"strconv"

	"github.com/smartdine/dinerag/internal/domain"
)

// Hash field names for the restaurant hash.
const (
	fieldName        = "name"
	fieldCuisine     = "cuisine"
	fieldPriceRange  = "price_range"
	fieldRating      = "rating"
	fieldTags        = "tags"
	fieldDescription = "description"
	fieldEmbedding   = "embedding"
)

// buildHashFields converts a domain Restaurant into a flat map for HSET.
func buildHashFields(r domain.Restaurant) map[string]string {
	return map[string]string{
		fieldName:        r.Name,
		fieldCuisine:     r.Cuisine,
		fieldPriceRange:  r.PriceRange,
		fieldRating:      strconv.FormatFloat(r.Rating, 'f', -1, 64),
		fieldTags:        r.Tags,
		fieldDescription: r.Description,
		fieldEmbedding:   r.Embedding,
	}
}

// parseHashFields converts a flat hash map back into a domain Restaurant.
// A malformed rating reads as 0.
func parseHashFields(id string, m map[string]string) domain.Restaurant {
	rating, _ := strconv.ParseFloat(m[fieldRating], 64)
	return domain.Restaurant{
		ID:          id,
		Name:        m[fieldName],
		Cuisine:     m[fieldCuisine],
		PriceRange:  m[fieldPriceRange],
		Rating:      rating,
		Tags:        m[fieldTags],
		Description: m[fieldDescription],
		Embedding:   m[fieldEmbedding],
	}
}
