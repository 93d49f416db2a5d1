package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthStatus represents the possible health status values.
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// HealthCheck represents the health check response for Redis.
type HealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// CheckHealth pings Redis and reports connection details.
func (c *Client) CheckHealth(ctx context.Context) HealthCheck {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	details := map[string]string{
		"host":     c.config.Host,
		"port":     strconv.Itoa(c.config.Port),
		"database": strconv.Itoa(c.config.Database),
	}

	if err := c.rdb.Ping(pingCtx).Err(); err != nil {
		details["message"] = err.Error()
		return HealthCheck{Status: StatusDown, Details: details}
	}

	details["message"] = string(StatusUp)
	return HealthCheck{Status: StatusUp, Details: details}
}
