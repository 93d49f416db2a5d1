package cache

import (
	"context"
	"errors"
	"time"

	"do-it-now/internal/domain/entity"
	"do-it-now/pkg/log"
	"do-it-now/pkg/redis"
)

type RedisSessionCache struct {
	cache *redis.Cache
}

var _ SessionCache = (*RedisSessionCache)(nil)

func NewRedisSessionCache(client *redis.Client, ttl time.Duration) *RedisSessionCache {
	return &RedisSessionCache{cache: redis.NewCache(client, "session", ttl)}
}

func (c *RedisSessionCache) GetUser(ctx context.Context, tokenHash string) (*entity.User, bool) {
	var user entity.User
	err := c.cache.Get(ctx, tokenHash, &user)
	if err != nil {
		if !errors.Is(err, redis.ErrKeyNotFound) {
			log.Errorf("session cache read failed: %v", err)
		}
		return nil, false
	}
	return &user, true
}

func (c *RedisSessionCache) PutUser(ctx context.Context, tokenHash string, user *entity.User) {
	if err := c.cache.Set(ctx, tokenHash, user); err != nil {
		log.Errorf("session cache write failed: %v", err)
	}
}

func (c *RedisSessionCache) Forget(ctx context.Context, tokenHashes ...string) {
	for _, hash := range tokenHashes {
		if err := c.cache.Delete(ctx, hash); err != nil {
			log.Errorf("session cache delete failed: %v", err)
		}
	}
}
