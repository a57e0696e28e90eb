package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/minhvo/catalog-service/internal/core/domain"
	"github.com/minhvo/catalog-service/internal/port"
)

// ProductDTO is the serialization-facing copy of a product.
type ProductDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProductCommand carries the payload of a create request.
type CreateProductCommand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Stock       int    `json:"stock"`
}

// UpdateProductCommand carries the payload of an update request. The id comes
// from the route, not the body.
type UpdateProductCommand struct {
	ID          int64  `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Stock       int    `json:"stock"`
}

// ProductService implements the product use cases. The cache is optional; a
// nil cache means every read goes to the repository.
type ProductService struct {
	repo  port.ProductRepository
	cache port.CacheRepository
	log   *logrus.Entry
}

func NewProductService(repo port.ProductRepository, cache port.CacheRepository, log *logrus.Logger) *ProductService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ProductService{
		repo:  repo,
		cache: cache,
		log:   log.WithField("service", "products"),
	}
}

func (s *ProductService) Get(ctx context.Context, id int64) (ProductDTO, error) {
	if s.cache != nil {
		if p, ok, err := s.cache.GetProduct(ctx, id); err != nil {
			s.log.WithError(err).WithField("product_id", id).Warn("cache read failed")
		} else if ok {
			return toProductDTO(p), nil
		}
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ProductDTO{}, err
	}

	if s.cache != nil {
		if err := s.cache.SetProduct(ctx, p); err != nil {
			s.log.WithError(err).WithField("product_id", id).Warn("cache write failed")
		}
	}
	return toProductDTO(p), nil
}

func (s *ProductService) List(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDTO(p))
	}
	return dtos, nil
}

func (s *ProductService) Create(ctx context.Context, cmd CreateProductCommand) (ProductDTO, error) {
	if err := validateProduct(cmd.Name, cmd.PriceCents, cmd.Stock); err != nil {
		return ProductDTO{}, err
	}

	p, err := s.repo.Create(ctx, domain.Product{
		Name:        strings.TrimSpace(cmd.Name),
		Description: cmd.Description,
		PriceCents:  cmd.PriceCents,
		Stock:       cmd.Stock,
	})
	if err != nil {
		return ProductDTO{}, err
	}

	s.log.WithField("product_id", p.ID).Info("product created")
	return toProductDTO(p), nil
}

func (s *ProductService) Update(ctx context.Context, cmd UpdateProductCommand) (ProductDTO, error) {
	if err := validateProduct(cmd.Name, cmd.PriceCents, cmd.Stock); err != nil {
		return ProductDTO{}, err
	}

	p, err := s.repo.Update(ctx, domain.Product{
		ID:          cmd.ID,
		Name:        strings.TrimSpace(cmd.Name),
		Description: cmd.Description,
		PriceCents:  cmd.PriceCents,
		Stock:       cmd.Stock,
	})
	if err != nil {
		return ProductDTO{}, err
	}

	s.invalidate(ctx, cmd.ID)
	s.log.WithField("product_id", p.ID).Info("product updated")
	return toProductDTO(p), nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.log.WithField("product_id", id).Info("product deleted")
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProduct(ctx, id); err != nil {
		s.log.WithError(err).WithField("product_id", id).Warn("cache invalidation failed")
	}
}

func validateProduct(name string, priceCents int64, stock int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if priceCents < 0 {
		return fmt.Errorf("%w: price_cents must not be negative", domain.ErrValidation)
	}
	if stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", domain.ErrValidation)
	}
	return nil
}

func toProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
