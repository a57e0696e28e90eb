package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/minhvo/catalog-service/internal/core/domain"
	"github.com/minhvo/catalog-service/internal/port"
)

// MemoryProductAdapter is a thread-safe in-memory product repository. It is
// intended for tests and prototyping.
type MemoryProductAdapter struct {
	mu       sync.RWMutex
	nextID   int64
	products map[int64]domain.Product
}

var _ port.ProductRepository = (*MemoryProductAdapter)(nil)

func NewMemoryProductAdapter() *MemoryProductAdapter {
	return &MemoryProductAdapter{
		nextID:   1,
		products: make(map[int64]domain.Product),
	}
}

func (m *MemoryProductAdapter) GetByID(_ context.Context, id int64) (domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

func (m *MemoryProductAdapter) List(_ context.Context) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MemoryProductAdapter) Create(_ context.Context, p domain.Product) (domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = m.nextID
	m.nextID++

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	m.products[p.ID] = p
	return p, nil
}

func (m *MemoryProductAdapter) Update(_ context.Context, p domain.Product) (domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	original, ok := m.products[p.ID]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}

	p.CreatedAt = original.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	m.products[p.ID] = p
	return p, nil
}

func (m *MemoryProductAdapter) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

// MemoryContributorAdapter is the contributor counterpart of
// MemoryProductAdapter.
type MemoryContributorAdapter struct {
	mu           sync.RWMutex
	nextID       int64
	contributors map[int64]domain.Contributor
}

var _ port.ContributorRepository = (*MemoryContributorAdapter)(nil)

func NewMemoryContributorAdapter() *MemoryContributorAdapter {
	return &MemoryContributorAdapter{
		nextID:       1,
		contributors: make(map[int64]domain.Contributor),
	}
}

func (m *MemoryContributorAdapter) GetByID(_ context.Context, id int64) (domain.Contributor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.contributors[id]
	if !ok {
		return domain.Contributor{}, domain.ErrNotFound
	}
	return c, nil
}

func (m *MemoryContributorAdapter) List(_ context.Context) ([]domain.Contributor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]domain.Contributor, 0, len(m.contributors))
	for _, c := range m.contributors {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MemoryContributorAdapter) Create(_ context.Context, c domain.Contributor) (domain.Contributor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.ID = m.nextID
	m.nextID++

	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	m.contributors[c.ID] = c
	return c, nil
}

func (m *MemoryContributorAdapter) Update(_ context.Context, c domain.Contributor) (domain.Contributor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	original, ok := m.contributors[c.ID]
	if !ok {
		return domain.Contributor{}, domain.ErrNotFound
	}

	c.CreatedAt = original.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	m.contributors[c.ID] = c
	return c, nil
}

func (m *MemoryContributorAdapter) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.contributors[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.contributors, id)
	return nil
}
