package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"central-joias/models"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when the product list is not cached.
var ErrCacheMiss = errors.New("cache miss")

// ProductCache fronts the catalog listing, by far the hottest read on
// the storefront. The cache is optional: callers treat any cache error
// as a miss and fall back to the database.
type ProductCache interface {
	Get(ctx context.Context) ([]models.Product, error)
	Set(ctx context.Context, products []models.Product) error
	Invalidate(ctx context.Context) error
}

const (
	productsKey = "products:active"
	productsTTL = 5 * time.Minute
)

type redisProductCache struct {
	client *redis.Client
}

// NewRedisProductCache creates a Redis-backed ProductCache
func NewRedisProductCache(client *redis.Client) ProductCache {
	return &redisProductCache{client: client}
}

func (c *redisProductCache) Get(ctx context.Context) ([]models.Product, error) {
	data, err := c.client.Get(ctx, productsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *redisProductCache) Set(ctx context.Context, products []models.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, productsKey, data, productsTTL).Err()
}

func (c *redisProductCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, productsKey).Err()
}
