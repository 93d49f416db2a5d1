package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache provides namespaced JSON caching on top of a Client.
type Cache struct {
	client *Client
	name   string
	ttl    time.Duration
}

// NewCache creates a cache under the given namespace. A zero TTL falls back
// to the client's DefaultCacheTTL.
func NewCache(client *Client, name string, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = client.config.DefaultCacheTTL
	}
	return &Cache{
		client: client,
		name:   name,
		ttl:    ttl,
	}
}

// buildKey constructs the full cache key using name::key format.
func (c *Cache) buildKey(key string) string {
	if c.name != "" {
		return c.name + "::" + key
	}
	return key
}

// Get retrieves a value from the cache and unmarshals it into dest.
// Returns ErrKeyNotFound on a cache miss.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.GetBytes(ctx, c.buildKey(key))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Set stores a value in the cache with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.client.Set(ctx, c.buildKey(key), data, c.ttl)
}

// Delete removes a value from the cache.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildKey(key))
}

// Clear removes all keys in the namespace matching a pattern.
func (c *Cache) Clear(ctx context.Context, pattern string) error {
	keys, err := c.client.Keys(ctx, c.buildKey(pattern))
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		return c.client.Delete(ctx, keys...)
	}
	return nil
}
