package port

import (
	"context"

	"github.com/minhvo/catalog-service/internal/core/domain"
)

type ContributorRepository interface {
	// GetByID returns the contributor with the given id, or domain.ErrNotFound.
	GetByID(ctx context.Context, id int64) (domain.Contributor, error)

	// List returns all contributors ordered by creation time.
	List(ctx context.Context) ([]domain.Contributor, error)

	// Create persists a new contributor and returns it with its assigned id.
	Create(ctx context.Context, c domain.Contributor) (domain.Contributor, error)

	// Update replaces the mutable fields of an existing contributor.
	Update(ctx context.Context, c domain.Contributor) (domain.Contributor, error)

	// Delete removes the contributor, or returns domain.ErrNotFound.
	Delete(ctx context.Context, id int64) error
}
