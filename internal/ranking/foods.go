package ranking

import (
	"strings"
	"sync"

	"github.com/smartdine/dinerag/internal/domain"
)

// coreFoods are dish terms that always mark a query as food-specific.
var coreFoods = []string{
	"pizza", "burger", "biryani", "pasta", "waffle", "waffles", "pancake", "pancakes",
	"sandwich", "sushi", "ramen", "noodles", "dosa", "idli",
	"vada", "samosa", "paratha", "kebab", "shawarma", "falafel",
	"tacos", "taco", "burrito", "nachos", "ice cream", "icecream", "cake", "cakes", "brownie",
	"cookie", "cookies", "donut", "donuts", "croissant", "bagel", "muffin", "cupcake", "cupcakes",
	"momos", "dimsum", "spring roll", "fried rice", "manchurian",
}

// nonFoodKeywords are ambience/price tags excluded from the catalog food set.
var nonFoodKeywords = map[string]struct{}{
	"budget": {}, "cheap": {}, "expensive": {}, "cozy": {}, "romantic": {}, "wifi": {}, "parking": {},
	"comfort": {}, "healthy": {}, "spicy": {}, "sweet": {}, "study": {}, "night": {}, "late": {},
	"fastfood": {}, "street": {}, "fine": {}, "casual": {}, "formal": {}, "treat": {}, "snacks": {},
}

// Detector decides whether a query mentions a specific food. Besides the
// fixed core list it holds a tag set harvested from the catalog, rebuilt
// via Refresh and safe for concurrent reads.
type Detector struct {
	mu          sync.RWMutex
	catalogTags map[string]struct{}
}

// NewDetector creates a detector with an empty catalog tag set. Call
// Refresh once the catalog is available.
func NewDetector() *Detector {
	return &Detector{catalogTags: make(map[string]struct{})}
}

// Refresh rebuilds the catalog food-tag set: every comma-split tag of every
// restaurant, trimmed and lowercased, minus the non-food keywords.
func (d *Detector) Refresh(restaurants []domain.Restaurant) {
	tags := make(map[string]struct{})
	for _, r := range restaurants {
		if r.Tags == "" {
			continue
		}
		for _, tag := range strings.Split(r.Tags, ",") {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag == "" {
				continue
			}
			if _, skip := nonFoodKeywords[tag]; skip {
				continue
			}
			tags[tag] = struct{}{}
		}
	}

	d.mu.Lock()
	d.catalogTags = tags
	d.mu.Unlock()
}

// TagCount returns the size of the harvested catalog tag set.
func (d *Detector) TagCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.catalogTags)
}

// HasSpecificFood reports whether the lowercased query contains any core
// food or catalog food tag. Substring containment, not whole-word matching.
func (d *Detector) HasSpecificFood(query string) bool {
	q := strings.ToLower(query)

	for _, food := range coreFoods {
		if strings.Contains(q, food) {
			return true
		}
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	for tag := range d.catalogTags {
		if strings.Contains(q, tag) {
			return true
		}
	}
	return false
}
