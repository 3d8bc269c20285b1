package domain

// Restaurant is a catalog entry. Embedding holds the serialized vector
// (bracketed decimal list) and may be empty until the bootstrap pass runs.
type Restaurant struct {
	ID          string
	Name        string
	Cuisine     string
	PriceRange  string
	Rating      float64
	Tags        string
	Description string
	Embedding   string
}

// ScoredRestaurant pairs a restaurant with its hybrid retrieval score.
// Used only within ranking.
type ScoredRestaurant struct {
	Restaurant
	Score float64
}

// RagResponse is the structured recommendation result.
// Best is nil when the model's pick could not be resolved against the
// retrieved candidates (or the catalog is empty).
type RagResponse struct {
	Best         *Restaurant
	Alternatives []Restaurant
	Explanation  string
}
