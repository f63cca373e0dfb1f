package db

import (
	"context"

	"task-list-api/internal/domain/entity"
)

// GoalGateway persists goals. Deleting a goal detaches its tasks.
type GoalGateway interface {
	FindAll(ctx context.Context) ([]entity.Goal, error)
	FindByID(ctx context.Context, id int64) (*entity.Goal, error)

	Create(ctx context.Context, goal entity.Goal) (*entity.Goal, error)
	Update(ctx context.Context, goal entity.Goal) (*entity.Goal, error)

	DeleteByID(ctx context.Context, id int64) error
}
