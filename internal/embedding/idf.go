package embedding

import (
	"math"
	"strings"

	"github.com/smartdine/dinerag/internal/domain"
)

// Index holds inverse document frequencies for a document set. It is an
// immutable snapshot: build one per ranking pass and thread it through the
// embedder, so concurrent requests never observe a half-updated table.
type Index struct {
	weights map[string]float64
}

// NewIndex computes IDF weights over the given documents. Each document
// contributes its unique token set; a term present in all documents gets
// weight log(N/N) = 0. An empty document set yields an empty index.
func NewIndex(docs []string) *Index {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, tok := range Tokenize(doc) {
			seen[tok] = struct{}{}
		}
		for tok := range seen {
			df[tok]++
		}
	}

	n := float64(len(docs))
	weights := make(map[string]float64, len(df))
	for term, d := range df {
		weights[term] = math.Log(n / float64(d))
	}
	return &Index{weights: weights}
}

// IndexForCatalog builds the IDF snapshot over the current catalog.
func IndexForCatalog(restaurants []domain.Restaurant) *Index {
	docs := make([]string, len(restaurants))
	for i, r := range restaurants {
		docs[i] = idfDocument(r)
	}
	return NewIndex(docs)
}

// idfDocument synthesizes the per-restaurant IDF document. It deliberately
// omits PriceRange even though restaurant embeddings include it; the
// asymmetry is part of the stored-embedding contract.
func idfDocument(r domain.Restaurant) string {
	var b strings.Builder
	for _, field := range []string{r.Name, r.Cuisine, r.Tags, r.Description} {
		if field == "" {
			continue
		}
		b.WriteString(field)
		b.WriteByte(' ')
	}
	return b.String()
}

// Weight returns the IDF weight for term. Unknown terms (and a nil index)
// weigh 1.0 so unseen query terms retain nonzero influence.
func (ix *Index) Weight(term string) float64 {
	if ix == nil {
		return 1.0
	}
	w, ok := ix.weights[term]
	if !ok {
		return 1.0
	}
	return w
}

// Len returns the number of indexed terms.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.weights)
}
