package db

import (
	"context"
	"time"

	"task-list-api/internal/domain/model"
)

const healthPingTimeout = 2 * time.Second

type HealthDBGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

func pingStatus(err error) model.ComponentHealthStatus {
	if err != nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"message": err.Error()},
		}
	}
	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"message": string(model.StatusUp)},
	}
}
