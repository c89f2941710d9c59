package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/app2/products-catalog/internal/api/metrics"
	"github.com/app2/products-catalog/internal/core/domain"
	"github.com/app2/products-catalog/internal/core/service"
)

const (
	catalogKey        = "catalog:products"
	defaultCatalogTTL = time.Minute
)

// CatalogCache caches the full product listing in Redis as a JSON blob.
// It is invalidated whenever a product is created; otherwise entries simply
// age out after the TTL.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}
	return &CatalogCache{client: client, ttl: ttl}
}

func (c *CatalogCache) Get(ctx context.Context) ([]domain.Product, error) {
	data, err := c.client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		return nil, service.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("catalog cache get: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("catalog cache decode: %w", err)
	}

	metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
	return products, nil
}

func (c *CatalogCache) Set(ctx context.Context, products []domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("catalog cache encode: %w", err)
	}
	if err := c.client.Set(ctx, catalogKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("catalog cache set: %w", err)
	}
	return nil
}

func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		return fmt.Errorf("catalog cache invalidate: %w", err)
	}
	return nil
}

var _ service.CatalogCache = (*CatalogCache)(nil)
