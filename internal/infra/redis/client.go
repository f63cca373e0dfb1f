package redis

import (
	"task-list-api/pkg/redis"
	"task-list-api/pkg/resource"
)

// NewClient builds the lock store client from app.redis.* properties.
func NewClient() (*redis.Client, error) {
	config := redis.DefaultConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))

	return redis.NewClient(config)
}
