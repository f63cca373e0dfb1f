package task

import (
	"context"

	"task-list-api/internal/domain/entity"
	"task-list-api/internal/domain/model"
)

type UseCase interface {
	FindAll(ctx context.Context, sort model.SortOrder) ([]entity.Task, error)
	FindByID(ctx context.Context, rawID string) (*entity.Task, error)
	Create(ctx context.Context, dto model.CreateTaskDTO) (*entity.Task, error)
	Update(ctx context.Context, rawID string, dto model.UpdateTaskDTO) (*entity.Task, error)
	MarkCompletion(ctx context.Context, rawID string, mark model.CompletionMark) (*entity.Task, error)
	Delete(ctx context.Context, rawID string) (*entity.Task, error)
}

// Notifier is told about every task that has just been marked complete.
type Notifier interface {
	NotifyTaskCompleted(ctx context.Context, task entity.Task)
}
