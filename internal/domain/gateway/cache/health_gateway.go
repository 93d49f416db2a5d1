package cache

import (
	"context"

	"do-it-now/internal/domain/model"
	"do-it-now/pkg/redis"
)

type HealthGateway interface {
	Health() model.ComponentHealthStatus
}

type RedisHealthGateway struct {
	client *redis.Client
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{client: client}
}

func (gateway *RedisHealthGateway) Health() model.ComponentHealthStatus {
	check := gateway.client.CheckHealth(context.Background())

	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}

	return model.ComponentHealthStatus{
		Status:  status,
		Details: check.Details,
	}
}

// DisabledHealthGateway reports a cache that is intentionally not configured.
type DisabledHealthGateway struct{}

var _ HealthGateway = (*DisabledHealthGateway)(nil)

func NewDisabledHealthGateway() *DisabledHealthGateway {
	return &DisabledHealthGateway{}
}

func (gateway *DisabledHealthGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUnknown,
		Details: map[string]string{
			"message": "cache disabled",
		},
	}
}
