// Package embedinit runs the startup pass that persists serialized
// embeddings for every restaurant missing one. Existing embeddings are
// never rewritten, so vectors stored by earlier runs stay valid while
// requests are in flight.
package embedinit

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/smartdine/dinerag/internal/embedding"
)

// Service is the embedding bootstrap pass.
type Service struct {
	catalog Catalog
	logger  *zap.Logger
}

// New creates the bootstrap service.
func New(catalog Catalog, logger *zap.Logger) *Service {
	return &Service{catalog: catalog, logger: logger}
}

// Run builds an IDF snapshot over the current catalog and persists an
// embedding for each restaurant that lacks one.
func (s *Service) Run(ctx context.Context) error {
	restaurants, err := s.catalog.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	missing := 0
	for _, r := range restaurants {
		if r.Embedding == "" {
			missing++
		}
	}
	if missing == 0 {
		s.logger.Info("all restaurants already have embeddings",
			zap.Int("restaurants", len(restaurants)))
		return nil
	}

	s.logger.Info("generating restaurant embeddings", zap.Int("missing", missing))

	emb := embedding.New(embedding.IndexForCatalog(restaurants))
	for _, r := range restaurants {
		if r.Embedding != "" {
			continue
		}
		vec := emb.EmbedRestaurant(r)
		if err := s.catalog.SaveEmbedding(ctx, r.ID, vec.Serialize()); err != nil {
			return fmt.Errorf("persist embedding for %s: %w", r.ID, err)
		}
	}

	s.logger.Info("embeddings generated and saved", zap.Int("count", missing))
	return nil
}
