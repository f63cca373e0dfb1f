package queue

import (
	"context"

	"task-list-api/internal/domain/model"
	"task-list-api/pkg/sqs"
)

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
	RegisterWorker(name string, worker *sqs.Worker)
	UnregisterWorker(name string)
}
