// Package redis provides a redis-backed DecisionCache for multi-instance
// deployments of the decision server.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/sharetribe/txprocess/pkg/domain"
	"github.com/sharetribe/txprocess/pkg/statedata"
)

// Cache implements ports.DecisionCache on top of redis. Descriptors are
// stored as JSON under a prefixed key with an optional TTL.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached descriptors. Zero means no
// expiration.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a cache connected to the given redis address.
func New(address, password string, db int, opts ...Option) *Cache {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "txprocess:decision:",
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache
}

func (c *Cache) key(key string) string {
	return c.prefix + key
}

// Get returns the cached descriptor or domain.ErrCacheMiss.
func (c *Cache) Get(ctx context.Context, key string) (*statedata.StateData, error) {
	val, err := c.client.Get(ctx, c.key(key)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var data statedata.StateData
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal descriptor: %w", err)
	}
	return &data, nil
}

// Set stores the descriptor under key with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, data *statedata.StateData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal descriptor: %w", err)
	}
	if err := c.client.Set(ctx, c.key(key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
