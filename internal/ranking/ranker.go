package ranking

import (
	"sort"

	"github.com/smartdine/dinerag/internal/domain"
)

// Hybrid score weights. Keyword weight dominates when the query names a
// specific food, semantic weight otherwise.
const (
	semanticWeightDefault = 0.7
	keywordWeightDefault  = 0.3
	semanticWeightFood    = 0.3
	keywordWeightFood     = 0.7
)

// RestaurantEmbedder builds a vector for restaurants lacking a stored one.
type RestaurantEmbedder interface {
	EmbedRestaurant(r domain.Restaurant) domain.Vector
}

// Ranker retrieves the top candidates for a query via the hybrid score.
type Ranker struct {
	foods *Detector
}

// NewRanker creates a ranker over a food detector.
func NewRanker(foods *Detector) *Ranker {
	return &Ranker{foods: foods}
}

// Rank scores every restaurant and returns at most topK, highest score
// first. Restaurants with a stored embedding are decoded; the rest are
// embedded on the fly (and not persisted). When the query is food-specific
// the keyword weight dominates and restaurants with a zero keyword score
// are dropped entirely. The sort is stable: ties keep catalog order.
func (rk *Ranker) Rank(
	query string,
	queryVec domain.Vector,
	restaurants []domain.Restaurant,
	emb RestaurantEmbedder,
	topK int,
) []domain.ScoredRestaurant {
	specific := rk.foods.HasSpecificFood(query)

	wSem, wKw := semanticWeightDefault, keywordWeightDefault
	if specific {
		wSem, wKw = semanticWeightFood, keywordWeightFood
	}

	scored := make([]domain.ScoredRestaurant, 0, len(restaurants))
	for _, r := range restaurants {
		var rVec domain.Vector
		if r.Embedding != "" {
			rVec = domain.ParseVector(r.Embedding)
		} else {
			rVec = emb.EmbedRestaurant(r)
		}

		sim := domain.Cosine(queryVec, rVec)
		kw := Score(query, r)

		if specific && kw == 0 {
			continue
		}

		scored = append(scored, domain.ScoredRestaurant{
			Restaurant: r,
			Score:      wSem*sim + wKw*kw,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}
