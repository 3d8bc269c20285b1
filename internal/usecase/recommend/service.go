// Package recommend orchestrates a recommendation request: load the
// catalog, build a fresh IDF snapshot, embed the query, retrieve the top-K
// candidates via the hybrid ranker, ask the completion service to pick one,
// and reconcile its reply back to catalog entities.
package recommend

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/smartdine/dinerag/internal/domain"
	"github.com/smartdine/dinerag/internal/embedding"
	"github.com/smartdine/dinerag/internal/logger"
	"github.com/smartdine/dinerag/internal/metrics"
	"github.com/smartdine/dinerag/internal/ranking"
)

// DefaultTopK is the number of candidates handed to the model.
const DefaultTopK = 5

// llmFailureReply is substituted for the model reply on any transport
// failure. It parses as valid JSON; "Error" never resolves to a catalog
// entity, so the response surfaces with no best restaurant.
const llmFailureReply = `{"bestRestaurant": "Error", "alternatives": [], "explanation": "Failed to get LLM response"}`

// Service answers free-text recommendation queries.
type Service struct {
	catalog Catalog
	llm     Completer
	ranker  *ranking.Ranker
	topK    int
}

// New creates a recommendation service.
func New(catalog Catalog, llm Completer, ranker *ranking.Ranker) *Service {
	return &Service{catalog: catalog, llm: llm, ranker: ranker, topK: DefaultTopK}
}

// WithTopK overrides the retrieval depth.
func (s *Service) WithTopK(k int) *Service {
	if k > 0 {
		s.topK = k
	}
	return s
}

// Recommend answers a non-empty free-text query. All degraded paths (empty
// catalog, LLM transport failure, unparseable reply) are recovered into a
// normal response; an error is returned only when the catalog itself is
// unreachable.
func (s *Service) Recommend(ctx context.Context, query string) (domain.RagResponse, error) {
	log := logger.FromContext(ctx)

	restaurants, err := s.catalog.FindAll(ctx)
	if err != nil {
		return domain.RagResponse{}, fmt.Errorf("load catalog: %w", err)
	}
	if len(restaurants) == 0 {
		return domain.RagResponse{
			Alternatives: []domain.Restaurant{},
			Explanation:  "No restaurants available",
		}, nil
	}

	// Per-request IDF snapshot: concurrent requests never observe a
	// half-updated table.
	emb := embedding.New(embedding.IndexForCatalog(restaurants))
	queryVec := emb.Embed(query)

	scored := s.ranker.Rank(query, queryVec, restaurants, emb, s.topK)
	metrics.RetrievalCandidatesTotal.Observe(float64(len(scored)))

	retrieved := make([]domain.Restaurant, len(scored))
	for i, sr := range scored {
		retrieved[i] = sr.Restaurant
	}

	reply, err := s.llm.Complete(ctx, systemPrompt, userPrompt(query, buildContext(retrieved)))
	if err != nil {
		log.Warn("completion failed, substituting degraded reply", zap.Error(err))
		reply = llmFailureReply
	}

	resp, parsed := reconcile(reply, retrieved)
	if !parsed {
		metrics.LLMParseFailuresTotal.Inc()
		log.Warn("model reply did not parse, fell back to top candidate",
			zap.Int("candidates", len(retrieved)))
	}

	return resp, nil
}
