package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvo/catalog-service/internal/core/domain"
)

// Mock ProductRepository
type mockProductRepo struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]domain.Product
	getCalls int
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{nextID: 1, products: make(map[int64]domain.Product)}
}

func (m *mockProductRepo) GetByID(_ context.Context, id int64) (domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	p, ok := m.products[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

func (m *mockProductRepo) List(_ context.Context) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockProductRepo) Create(_ context.Context, p domain.Product) (domain.Product, error) {
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

func (m *mockProductRepo) Update(_ context.Context, p domain.Product) (domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[p.ID]; !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	m.products[p.ID] = p
	return p, nil
}

func (m *mockProductRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

// Mock CacheRepository
type mockCache struct {
	mu          sync.Mutex
	entries     map[int64]domain.Product
	invalidated []int64
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[int64]domain.Product)}
}

func (m *mockCache) GetProduct(_ context.Context, id int64) (domain.Product, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.entries[id]
	return p, ok, nil
}

func (m *mockCache) SetProduct(_ context.Context, p domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[p.ID] = p
	return nil
}

func (m *mockCache) InvalidateProduct(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	m.invalidated = append(m.invalidated, id)
	return nil
}

func TestProductService_CreateThenGet(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo, nil, nil)

	created, err := svc.Create(context.Background(), CreateProductCommand{
		Name:        "Keyboard",
		Description: "87 keys",
		PriceCents:  8900,
		Stock:       10,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, "Keyboard", created.Name)
	assert.Equal(t, int64(8900), created.PriceCents)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestProductService_GetNotFound(t *testing.T) {
	svc := NewProductService(newMockProductRepo(), nil, nil)

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductService_CreateValidation(t *testing.T) {
	svc := NewProductService(newMockProductRepo(), nil, nil)

	cases := []struct {
		name string
		cmd  CreateProductCommand
	}{
		{"empty name", CreateProductCommand{Name: "  ", PriceCents: 100}},
		{"negative price", CreateProductCommand{Name: "x", PriceCents: -1}},
		{"negative stock", CreateProductCommand{Name: "x", Stock: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.cmd)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestProductService_GetUsesCache(t *testing.T) {
	repo := newMockProductRepo()
	cache := newMockCache()
	svc := NewProductService(repo, cache, nil)

	created, err := svc.Create(context.Background(), CreateProductCommand{Name: "Dock", PriceCents: 12900})
	require.NoError(t, err)

	// First read populates the cache from the repository.
	_, err = svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	callsAfterFirst := repo.getCalls

	// Second read is served from the cache.
	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, callsAfterFirst, repo.getCalls)
}

func TestProductService_UpdateInvalidatesCache(t *testing.T) {
	repo := newMockProductRepo()
	cache := newMockCache()
	svc := NewProductService(repo, cache, nil)

	created, err := svc.Create(context.Background(), CreateProductCommand{Name: "Stand", PriceCents: 3500})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), UpdateProductCommand{
		ID:         created.ID,
		Name:       "Stand v2",
		PriceCents: 3900,
	})
	require.NoError(t, err)
	assert.Contains(t, cache.invalidated, created.ID)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stand v2", got.Name)
}

func TestProductService_DeleteInvalidatesCache(t *testing.T) {
	repo := newMockProductRepo()
	cache := newMockCache()
	svc := NewProductService(repo, cache, nil)

	created, err := svc.Create(context.Background(), CreateProductCommand{Name: "Mouse", PriceCents: 2500})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Contains(t, cache.invalidated, created.ID)

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductService_DeleteNotFound(t *testing.T) {
	svc := NewProductService(newMockProductRepo(), nil, nil)

	err := svc.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type failingCache struct{}

func (failingCache) GetProduct(context.Context, int64) (domain.Product, bool, error) {
	return domain.Product{}, false, errors.New("redis down")
}
func (failingCache) SetProduct(context.Context, domain.Product) error { return errors.New("redis down") }
func (failingCache) InvalidateProduct(context.Context, int64) error { return errors.New("redis down") }

func TestProductService_CacheFailureDoesNotBreakReads(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo, failingCache{}, nil)

	created, err := svc.Create(context.Background(), CreateProductCommand{Name: "Hub", PriceCents: 4500})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}
