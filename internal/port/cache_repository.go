package port

import (
	"context"

	"github.com/minhvo/catalog-service/internal/core/domain"
)

type CacheRepository interface {
	// GetProduct returns a cached product and whether the key was present.
	GetProduct(ctx context.Context, id int64) (domain.Product, bool, error)

	// SetProduct caches a product under its id with the adapter's TTL.
	SetProduct(ctx context.Context, p domain.Product) error

	// InvalidateProduct drops the cached entry for the given id.
	InvalidateProduct(ctx context.Context, id int64) error
}
