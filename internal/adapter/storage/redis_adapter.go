package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minhvo/catalog-service/internal/core/domain"
	"github.com/minhvo/catalog-service/internal/port"
)

const (
	productKeyPrefix  = "product:"
	defaultProductTTL = 5 * time.Minute
)

// RedisAdapter caches product records as JSON under "product:<id>".
type RedisAdapter struct {
	client *redis.Client
	ttl    time.Duration
}

var _ port.CacheRepository = (*RedisAdapter)(nil)

func NewRedisAdapter(client *redis.Client, ttl time.Duration) *RedisAdapter {
	if ttl <= 0 {
		ttl = defaultProductTTL
	}
	return &RedisAdapter{client: client, ttl: ttl}
}

func (r *RedisAdapter) GetProduct(ctx context.Context, id int64) (domain.Product, bool, error) {
	raw, err := r.client.Get(ctx, productKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Product{}, false, nil
	}
	if err != nil {
		return domain.Product{}, false, fmt.Errorf("cache get: %w", err)
	}

	var p domain.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		// A corrupt entry behaves like a miss; the next write repairs it.
		return domain.Product{}, false, nil
	}
	return p, true, nil
}

func (r *RedisAdapter) SetProduct(ctx context.Context, p domain.Product) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	return r.client.Set(ctx, productKey(p.ID), raw, r.ttl).Err()
}

func (r *RedisAdapter) InvalidateProduct(ctx context.Context, id int64) error {
	return r.client.Del(ctx, productKey(id)).Err()
}

func productKey(id int64) string {
	return productKeyPrefix + strconv.FormatInt(id, 10)
}
