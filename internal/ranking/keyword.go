// Package ranking combines cosine similarity and field-weighted keyword
// matching into the adaptive hybrid score used for candidate retrieval.
package ranking

import (
	"strings"

	"github.com/smartdine/dinerag/internal/domain"
	"github.com/smartdine/dinerag/internal/embedding"
)

// Field bonuses on top of the base match point. Name matches dominate,
// tags and cuisine count equally; bonuses are additive across fields.
const (
	keywordBaseScore    = 1.0
	keywordNameBonus    = 3.0
	keywordTagBonus     = 2.0
	keywordCuisineBonus = 2.0
)

// Score computes the keyword match score between a query and a restaurant.
// Tokens shorter than three characters are skipped, but still count toward
// the denominator. Returns 0 when no token matches any field.
func Score(query string, r domain.Restaurant) float64 {
	tokens := embedding.Tokenize(query)

	name := strings.ToLower(r.Name)
	cuisine := strings.ToLower(r.Cuisine)
	tags := strings.ToLower(r.Tags)
	description := strings.ToLower(r.Description)

	var score float64
	matched := 0

	for _, tok := range tokens {
		if len(tok) < 3 {
			continue
		}

		inName := strings.Contains(name, tok)
		inCuisine := strings.Contains(cuisine, tok)
		inTags := strings.Contains(tags, tok)
		inDescription := strings.Contains(description, tok)

		if !inName && !inCuisine && !inTags && !inDescription {
			continue
		}

		matched++
		score += keywordBaseScore
		if inName {
			score += keywordNameBonus
		}
		if inTags {
			score += keywordTagBonus
		}
		if inCuisine {
			score += keywordCuisineBonus
		}
	}

	if matched == 0 {
		return 0
	}

	denom := len(tokens)
	if denom < 1 {
		denom = 1
	}
	return score / float64(denom)
}
