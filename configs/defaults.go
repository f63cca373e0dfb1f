package configs

import (
	"time"

	"task-list-api/pkg/resource"
)

// SetDefaults registers the fallback of every property read by the
// application, so it starts without configs/application.yml.
func SetDefaults() {
	resource.SetDefault("app.name", "task-list-api")
	resource.SetDefault("app.server.port", "8080")
	resource.SetDefault("app.server.context-path", "")
	resource.SetDefault("app.server.shutdown-timeout", 20*time.Second)

	resource.SetDefault("app.db.driver", "postgres")
	resource.SetDefault("app.db.gateway", "gorm")
	resource.SetDefault("app.db.host", "localhost")
	resource.SetDefault("app.db.port", "5432")
	resource.SetDefault("app.db.username", "postgres")
	resource.SetDefault("app.db.password", "postgres")
	resource.SetDefault("app.db.database", "task_list_api_development")
	resource.SetDefault("app.db.schema", "public")
	resource.SetDefault("app.db.sqlite-path", "task-list.db")
	resource.SetDefault("app.db.auto-migrate", true)

	resource.SetDefault("app.notification.mode", "direct")
	resource.SetDefault("app.notification.slack.base-url", "https://slack.com")
	resource.SetDefault("app.notification.slack.channel", "task-notifications")
	resource.SetDefault("app.notification.slack.timeout", 10*time.Second)
	resource.SetDefault("app.notification.queue.name", "task-completed")
	resource.SetDefault("app.notification.queue.pool-size", 2)

	resource.SetDefault("app.cloud.aws-region", "us-east-1")

	resource.SetDefault("app.redis.enabled", false)
	resource.SetDefault("app.redis.host", "localhost")
	resource.SetDefault("app.redis.port", 6379)
	resource.SetDefault("app.redis.database", 0)

	resource.SetDefault("app.digest.enabled", false)
	resource.SetDefault("app.digest.cron", "0 18 * * *")
	resource.SetDefault("app.digest.lock-ttl", 10*time.Minute)
	resource.SetDefault("app.digest.refresh-interval", time.Minute)
}
