package health

import "task-list-api/internal/domain/gateway/queue"

type queueHealthStub struct {
	queue.HealthGateway
}
