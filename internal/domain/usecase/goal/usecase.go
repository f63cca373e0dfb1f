package goal

import (
	"context"

	"task-list-api/internal/domain/entity"
	"task-list-api/internal/domain/model"
)

type UseCase interface {
	FindAll(ctx context.Context, sort model.SortOrder) ([]entity.Goal, error)
	FindByID(ctx context.Context, rawID string) (*entity.Goal, error)
	Create(ctx context.Context, dto model.CreateGoalDTO) (*entity.Goal, error)
	Update(ctx context.Context, rawID string, dto model.UpdateGoalDTO) (*entity.Goal, error)
	Delete(ctx context.Context, rawID string) (*entity.Goal, error)

	// AttachTasks assigns every listed task to the goal and returns the goal
	// with the parsed task ids, in request order.
	AttachTasks(ctx context.Context, rawID string, dto model.AttachTasksDTO) (*entity.Goal, []int64, error)
	// FindTasks returns the goal with its tasks loaded.
	FindTasks(ctx context.Context, rawID string) (*entity.Goal, error)
}
