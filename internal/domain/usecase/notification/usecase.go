package notification

import (
	"context"

	"task-list-api/internal/domain/entity"
	"task-list-api/internal/domain/model"
)

type UseCase interface {
	// NotifyTaskCompleted dispatches the completion notification according to
	// the configured mode. Failures are logged and never returned.
	NotifyTaskCompleted(ctx context.Context, task entity.Task)
	// Deliver posts the completion message of a single event.
	Deliver(ctx context.Context, event model.TaskCompletedEvent) error
	// SendDailyDigest posts the number of tasks completed today and returns it.
	SendDailyDigest(ctx context.Context) (int64, error)
}
