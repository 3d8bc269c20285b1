// Package catalog persists the restaurant catalog in Redis: one hash per
// restaurant plus a set of known ids.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/smartdine/dinerag/internal/db"
	"github.com/smartdine/dinerag/internal/domain"
)

// store is the consumer interface for the catalog (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Exists(ctx context.Context, key string) (bool, error)
	SAdd(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
	SCard(ctx context.Context, key string) (int, error)
}

// Repo implements the catalog contracts of the recommend and embedinit
// use cases.
type Repo struct {
	store  store
	prefix string
}

// New creates a catalog repository. keyPrefix namespaces all keys,
// e.g. "dinerag:".
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, prefix: keyPrefix}
}

// FindAll returns every restaurant in the catalog. Results are ordered by
// id: set membership has no stable order and the ranker's tie-breaking
// depends on deterministic input order.
func (r *Repo) FindAll(ctx context.Context) ([]domain.Restaurant, error) {
	ids, err := r.store.SMembers(ctx, r.idSetKey())
	if err != nil {
		return nil, fmt.Errorf("list restaurant ids: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	sort.Strings(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.restaurantKey(id)
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("load restaurants: %w", err)
	}

	restaurants := make([]domain.Restaurant, 0, len(hashes))
	for i, m := range hashes {
		if len(m) == 0 {
			continue
		}
		restaurants = append(restaurants, parseHashFields(ids[i], m))
	}
	return restaurants, nil
}

// FindByID returns a single restaurant. Unknown ids yield
// domain.ErrNotFound.
func (r *Repo) FindByID(ctx context.Context, id string) (domain.Restaurant, error) {
	key := r.restaurantKey(id)

	ok, err := r.store.Exists(ctx, key)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("check restaurant %s: %w", id, err)
	}
	if !ok {
		return domain.Restaurant{}, fmt.Errorf("restaurant %s: %w", id, domain.ErrNotFound)
	}

	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		// Deleted between Exists and HGetAll.
		if errors.Is(err, db.ErrKeyNotFound) {
			return domain.Restaurant{}, fmt.Errorf("restaurant %s: %w", id, domain.ErrNotFound)
		}
		return domain.Restaurant{}, fmt.Errorf("load restaurant %s: %w", id, err)
	}
	return parseHashFields(id, m), nil
}

// Upsert creates or replaces a restaurant.
func (r *Repo) Upsert(ctx context.Context, rest domain.Restaurant) error {
	if rest.ID == "" {
		return fmt.Errorf("restaurant id is required")
	}
	if err := r.store.HSet(ctx, r.restaurantKey(rest.ID), buildHashFields(rest)); err != nil {
		return fmt.Errorf("store restaurant %s: %w", rest.ID, err)
	}
	if err := r.store.SAdd(ctx, r.idSetKey(), rest.ID); err != nil {
		return fmt.Errorf("register restaurant id %s: %w", rest.ID, err)
	}
	return nil
}

// UpsertAll stores a batch of restaurants in one pipelined round-trip and
// registers their ids.
func (r *Repo) UpsertAll(ctx context.Context, restaurants []domain.Restaurant) error {
	if len(restaurants) == 0 {
		return nil
	}

	items := make([]db.HashSetItem, len(restaurants))
	ids := make([]string, len(restaurants))
	for i, rest := range restaurants {
		if rest.ID == "" {
			return fmt.Errorf("restaurant %d: id is required", i)
		}
		items[i] = db.HashSetItem{Key: r.restaurantKey(rest.ID), Fields: buildHashFields(rest)}
		ids[i] = rest.ID
	}

	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("store restaurants: %w", err)
	}
	if err := r.store.SAdd(ctx, r.idSetKey(), ids...); err != nil {
		return fmt.Errorf("register restaurant ids: %w", err)
	}
	return nil
}

// SaveEmbedding persists a serialized embedding on the restaurant hash.
func (r *Repo) SaveEmbedding(ctx context.Context, id, serialized string) error {
	err := r.store.HSet(ctx, r.restaurantKey(id), map[string]string{
		fieldEmbedding: serialized,
	})
	if err != nil {
		return fmt.Errorf("store embedding for %s: %w", id, err)
	}
	return nil
}

// Count returns the number of restaurants in the catalog.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.SCard(ctx, r.idSetKey())
	if err != nil {
		return 0, fmt.Errorf("count restaurants: %w", err)
	}
	return n, nil
}

func (r *Repo) restaurantKey(id string) string {
	return r.prefix + "restaurant:" + id
}

func (r *Repo) idSetKey() string {
	return r.prefix + "restaurants"
}
