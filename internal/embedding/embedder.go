package embedding

import (
	"math"
	"sort"
	"strings"
	"unicode/utf16"

	"github.com/smartdine/dinerag/internal/domain"
)

// Embedder maps text to fixed-dimension vectors via a TF-IDF-weighted
// hashed projection. It carries the IDF snapshot it was built with and is
// safe for concurrent use.
type Embedder struct {
	idf *Index
}

// New creates an embedder over an IDF snapshot. idf may be nil, in which
// case every term weighs 1.0.
func New(idf *Index) *Embedder {
	return &Embedder{idf: idf}
}

// Embed builds the embedding for text. Terms are laid out in descending
// term-frequency order (ties keep first-occurrence order) and each term
// fills up to three components with w*sin(h+i), where w is the TF-IDF
// weight and h the absolute legacy hash. The result is L2-normalized;
// empty input yields the zero vector.
func (e *Embedder) Embed(text string) domain.Vector {
	v := domain.ZeroVector()
	if text == "" {
		return v
	}

	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return v
	}

	counts := make(map[string]int)
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	total := float64(len(tokens))
	idx := 0
	for _, term := range order {
		if idx >= domain.VectorDim {
			break
		}

		tf := float64(counts[term]) / total
		w := tf * e.idf.Weight(term)
		h := float64(legacyHash(term))

		for i := 0; i < 3 && idx < domain.VectorDim; i++ {
			v[idx] = w * math.Sin(h+float64(i))
			idx++
		}
	}

	v.Normalize()
	return v
}

// EmbedRestaurant embeds the restaurant's synthetic text: name twice (to
// up-weight it), then cuisine, price range, tags and description. Unlike
// the IDF document, this text includes PriceRange.
func (e *Embedder) EmbedRestaurant(r domain.Restaurant) domain.Vector {
	var b strings.Builder
	appendField := func(s string) {
		if s == "" {
			return
		}
		b.WriteString(s)
		b.WriteByte(' ')
	}

	appendField(r.Name)
	appendField(r.Name)
	appendField(r.Cuisine)
	appendField(r.PriceRange)
	appendField(r.Tags)
	appendField(r.Description)

	return e.Embed(b.String())
}

// legacyHash reproduces the JVM polynomial string hash over UTF-16 code
// units (h = 31*h + c with signed 32-bit wrap-around), then takes the
// absolute value. MinInt32 has no positive counterpart and is pinned to 0.
// Stored embeddings depend on this function staying stable; changing it
// invalidates every persisted vector.
func legacyHash(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(u)
	}
	if h == math.MinInt32 {
		return 0
	}
	if h < 0 {
		return -h
	}
	return h
}
