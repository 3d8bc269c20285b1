package embedding

import (
	"math"
	"testing"

	"github.com/smartdine/dinerag/internal/domain"
)

func TestNewIndex_SingleDocument(t *testing.T) {
	ix := NewIndex([]string{"pizza pasta pizza"})

	// Every term appears in the only document: log(1/1) = 0.
	for _, term := range []string{"pizza", "pasta"} {
		if w := ix.Weight(term); w != 0 {
			t.Errorf("Weight(%q) = %v, want 0", term, w)
		}
	}
}

func TestNewIndex_DocumentFrequencies(t *testing.T) {
	ix := NewIndex([]string{"pizza pasta", "pizza sushi"})

	if w := ix.Weight("pizza"); w != 0 {
		t.Errorf("Weight(pizza) = %v, want 0 (present in all docs)", w)
	}

	want := math.Log(2)
	if w := ix.Weight("pasta"); math.Abs(w-want) > 1e-12 {
		t.Errorf("Weight(pasta) = %v, want %v", w, want)
	}
	if w := ix.Weight("sushi"); math.Abs(w-want) > 1e-12 {
		t.Errorf("Weight(sushi) = %v, want %v", w, want)
	}
}

func TestNewIndex_RepeatedTermCountsOnce(t *testing.T) {
	// A term repeated within one document contributes a single df count.
	ix := NewIndex([]string{"pizza pizza pizza", "pasta"})

	want := math.Log(2)
	if w := ix.Weight("pizza"); math.Abs(w-want) > 1e-12 {
		t.Errorf("Weight(pizza) = %v, want %v", w, want)
	}
}

func TestIndex_UnknownTermDefaultsToOne(t *testing.T) {
	ix := NewIndex([]string{"pizza"})

	if w := ix.Weight("quinoa"); w != 1.0 {
		t.Errorf("Weight(quinoa) = %v, want 1.0", w)
	}

	var nilIndex *Index
	if w := nilIndex.Weight("anything"); w != 1.0 {
		t.Errorf("nil index Weight = %v, want 1.0", w)
	}
}

func TestNewIndex_EmptyCorpus(t *testing.T) {
	ix := NewIndex(nil)
	if ix.Len() != 0 {
		t.Errorf("expected empty index, got %d terms", ix.Len())
	}
}

func TestIndexForCatalog_OmitsPriceRange(t *testing.T) {
	restaurants := []domain.Restaurant{
		{Name: "Cafe A", Cuisine: "Italian", PriceRange: "luxurious", Tags: "pizza", Description: "good"},
		{Name: "Cafe B", Cuisine: "Thai", Tags: "noodles", Description: "fine"},
	}

	ix := IndexForCatalog(restaurants)

	// "luxurious" only occurs in PriceRange, which the IDF document skips,
	// so it must read as unknown (weight 1.0) rather than log(2).
	if w := ix.Weight("luxurious"); w != 1.0 {
		t.Errorf("Weight(luxurious) = %v, want 1.0 (price range excluded)", w)
	}
	if w := ix.Weight("pizza"); math.Abs(w-math.Log(2)) > 1e-12 {
		t.Errorf("Weight(pizza) = %v, want log(2)", w)
	}
}
