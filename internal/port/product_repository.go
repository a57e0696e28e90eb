package port

import (
	"context"

	"github.com/minhvo/catalog-service/internal/core/domain"
)

type ProductRepository interface {
	// GetByID returns the product with the given id, or domain.ErrNotFound.
	GetByID(ctx context.Context, id int64) (domain.Product, error)

	// List returns all products ordered by creation time.
	List(ctx context.Context) ([]domain.Product, error)

	// Create persists a new product and returns it with its assigned id.
	Create(ctx context.Context, p domain.Product) (domain.Product, error)

	// Update replaces the mutable fields of an existing product.
	Update(ctx context.Context, p domain.Product) (domain.Product, error)

	// Delete removes the product, or returns domain.ErrNotFound.
	Delete(ctx context.Context, id int64) error
}
