package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Lock is a distributed lock backed by SET NX with a TTL. The lock value is
// unique per holder so release and refresh only touch our own lock.
type Lock struct {
	client          *Client
	key             string
	value           string
	namespace       string
	ttl             time.Duration
	refreshInterval time.Duration
}

// NewScheduledTaskLock creates a lock suited for long-lived scheduler
// ownership: acquired once, then kept alive by AutoRefresh.
func NewScheduledTaskLock(client *Client, key string, ttl, refreshInterval time.Duration, namespace string) *Lock {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if refreshInterval <= 0 {
		refreshInterval = ttl / 3
	}
	return &Lock{
		client:          client,
		key:             key,
		value:           uuid.New().String(),
		namespace:       namespace,
		ttl:             ttl,
		refreshInterval: refreshInterval,
	}
}

// buildLockKey constructs the full lock key using namespace::key format.
func (l *Lock) buildLockKey() string {
	if l.namespace != "" {
		return l.namespace + "::" + l.key
	}
	return l.key
}

// Lock attempts to acquire the lock once.
func (l *Lock) Lock(ctx context.Context) error {
	ok, err := l.client.GetClient().SetNX(ctx, l.buildLockKey(), l.value, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("lock %s already held", l.buildLockKey())
	}
	return nil
}

// Unlock releases the lock if it is still held by this client.
func (l *Lock) Unlock(ctx context.Context) error {
	script := `
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("DEL", KEYS[1])
		else
			return 0
		end
	`

	result, err := l.client.GetClient().Eval(ctx, script, []string{l.buildLockKey()}, l.value).Result()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result.(int64) == 0 {
		return fmt.Errorf("lock was not held by this client")
	}
	return nil
}

// Refresh extends the lock's TTL if it is still held by this client.
func (l *Lock) Refresh(ctx context.Context) error {
	script := `
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("EXPIRE", KEYS[1], ARGV[2])
		else
			return 0
		end
	`

	result, err := l.client.GetClient().Eval(ctx, script, []string{l.buildLockKey()}, l.value, int(l.ttl.Seconds())).Result()
	if err != nil {
		return fmt.Errorf("failed to refresh lock: %w", err)
	}
	if result.(int64) == 0 {
		return fmt.Errorf("lock was not held by this client")
	}
	return nil
}

// AutoRefresh keeps the lock alive until the context is cancelled or a
// refresh fails. The returned channel receives exactly one value: nil on
// context cancellation, or the refresh error.
func (l *Lock) AutoRefresh(ctx context.Context) <-chan error {
	errChan := make(chan error, 1)

	go func() {
		ticker := time.NewTicker(l.refreshInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				errChan <- nil
				return
			case <-ticker.C:
				if err := l.Refresh(ctx); err != nil {
					errChan <- err
					return
				}
			}
		}
	}()

	return errChan
}
