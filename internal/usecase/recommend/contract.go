package recommend

import (
	"context"

	"github.com/smartdine/dinerag/internal/domain"
)

// Catalog is the read-only restaurant source.
type Catalog interface {
	FindAll(ctx context.Context) ([]domain.Restaurant, error)
}

// Completer calls the external chat-completion service.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
