package redis

import (
	"context"
	"strconv"
	"time"
)

type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// HealthCheck is the result of pinging Redis.
type HealthCheck struct {
	Status  HealthStatus
	Details map[string]string
}

// Health pings the server and reports pool statistics.
func (c *Client) Health(ctx context.Context) HealthCheck {
	start := time.Now()
	err := c.Ping(ctx)
	latency := time.Since(start)

	details := map[string]string{
		"address": c.config.Addr(),
		"latency": latency.String(),
	}
	if stats := c.Stats(); stats != nil {
		details["totalConns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
		details["idleConns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	}

	if err != nil {
		details["error"] = err.Error()
		return HealthCheck{Status: StatusDown, Details: details}
	}
	return HealthCheck{Status: StatusUp, Details: details}
}
