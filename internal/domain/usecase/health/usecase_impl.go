package health

import (
	"context"

	"task-list-api/internal/domain/gateway/cache"
	"task-list-api/internal/domain/gateway/db"
	"task-list-api/internal/domain/gateway/queue"
	"task-list-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	cacheGateway cache.HealthGateway
	queueGateway queue.HealthGateway
}

// NewHealthUseCase builds the health check. cacheGateway and queueGateway are
// nil when Redis or the notification queue are not in use.
func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway cache.HealthGateway, queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
		queueGateway: queueGateway,
	}
}

// CheckHealth is UP only when the database answers and no enabled optional
// component reports DOWN.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	dbHealth := useCase.dbGateway.Health(ctx)

	cacheHealth := model.DisabledComponent()
	if useCase.cacheGateway != nil {
		cacheHealth = useCase.cacheGateway.Health(ctx)
	}

	queueHealth := model.DisabledComponent()
	if useCase.queueGateway != nil {
		queueHealth = useCase.queueGateway.Health(ctx)
	}

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp ||
		cacheHealth.Status == model.StatusDown ||
		queueHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Cache:    cacheHealth,
		Queue:    queueHealth,
	}
}
