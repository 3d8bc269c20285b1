package embedinit

import (
	"context"

	"github.com/smartdine/dinerag/internal/domain"
)

// Catalog reads restaurants and persists their embeddings.
type Catalog interface {
	FindAll(ctx context.Context) ([]domain.Restaurant, error)
	SaveEmbedding(ctx context.Context, id, serialized string) error
}
