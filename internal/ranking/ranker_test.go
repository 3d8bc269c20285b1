package ranking

import (
	"testing"

	"github.com/smartdine/dinerag/internal/domain"
)

// stubEmbedder returns the same vector for every restaurant.
type stubEmbedder struct {
	vec domain.Vector
}

func (s stubEmbedder) EmbedRestaurant(domain.Restaurant) domain.Vector {
	if s.vec == nil {
		return domain.ZeroVector()
	}
	return s.vec
}

func TestRank_FoodQueryFiltersZeroKeywordScore(t *testing.T) {
	rk := NewRanker(NewDetector())

	restaurants := []domain.Restaurant{
		{ID: "1", Name: "Napoli Pizza", Tags: "pizza"},
		{ID: "2", Name: "Brick Oven", Tags: "pizza, budget"},
		{ID: "3", Name: "Sakura House", Tags: "sushi"},
	}

	got := rk.Rank("pizza", domain.ZeroVector(), restaurants, stubEmbedder{}, 5)

	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2 (sushi place filtered)", len(got))
	}
	// Name match outranks a tag-only match under the food weights.
	if got[0].ID != "1" || got[1].ID != "2" {
		t.Errorf("order = [%s %s], want [1 2]", got[0].ID, got[1].ID)
	}
	if got[0].Score <= got[1].Score {
		t.Errorf("scores not descending: %v then %v", got[0].Score, got[1].Score)
	}
}

func TestRank_GenericQueryKeepsNonMatching(t *testing.T) {
	rk := NewRanker(NewDetector())

	restaurants := []domain.Restaurant{
		{ID: "1", Name: "Napoli Pizza", Tags: "pizza"},
		{ID: "2", Name: "Sakura House", Tags: "sushi"},
		{ID: "3", Name: "The Green Fork", Tags: "salads"},
	}

	got := rk.Rank("anywhere good tonight", domain.ZeroVector(), restaurants, stubEmbedder{}, 5)

	if len(got) != 3 {
		t.Fatalf("got %d candidates, want all 3 for a generic query", len(got))
	}
}

func TestRank_TopKTruncation(t *testing.T) {
	rk := NewRanker(NewDetector())

	restaurants := []domain.Restaurant{
		{ID: "1", Name: "A"}, {ID: "2", Name: "B"}, {ID: "3", Name: "C"}, {ID: "4", Name: "D"},
	}

	got := rk.Rank("anywhere good", domain.ZeroVector(), restaurants, stubEmbedder{}, 2)
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
}

func TestRank_TiesKeepCatalogOrder(t *testing.T) {
	rk := NewRanker(NewDetector())

	restaurants := []domain.Restaurant{
		{ID: "1", Name: "First"},
		{ID: "2", Name: "Second"},
		{ID: "3", Name: "Third"},
	}

	got := rk.Rank("anywhere good", domain.ZeroVector(), restaurants, stubEmbedder{}, 5)
	for i, want := range []string{"1", "2", "3"} {
		if got[i].ID != want {
			t.Errorf("position %d: id %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestRank_PrefersStoredEmbedding(t *testing.T) {
	rk := NewRanker(NewDetector())

	queryVec := domain.ZeroVector()
	queryVec[0] = 1

	restaurants := []domain.Restaurant{
		{ID: "1", Name: "No Vector"},
		{ID: "2", Name: "Stored Vector", Embedding: queryVec.Serialize()},
	}

	// The on-the-fly embedder yields zero vectors, so only the stored
	// embedding can produce a positive cosine term.
	got := rk.Rank("anywhere good", queryVec, restaurants, stubEmbedder{}, 5)

	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	if got[0].ID != "2" {
		t.Errorf("first candidate %s, want the one with a stored embedding", got[0].ID)
	}
	if got[0].Score <= 0 {
		t.Errorf("stored embedding score = %v, want > 0", got[0].Score)
	}
}
