package db

import (
	"context"
	"errors"
	"time"

	"task-list-api/internal/domain/entity"
)

// ErrTasksChanged is returned by AssignGoal when some of the tasks vanished
// between validation and the update; nothing is written in that case.
var ErrTasksChanged = errors.New("tasks changed during goal assignment")

// TaskGateway persists tasks. Finders return (nil, nil) when no row matches.
type TaskGateway interface {
	FindAll(ctx context.Context) ([]entity.Task, error)
	FindByID(ctx context.Context, id int64) (*entity.Task, error)
	FindByGoalID(ctx context.Context, goalID int64) ([]entity.Task, error)
	CountCompletedBetween(ctx context.Context, from time.Time, to time.Time) (int64, error)

	Create(ctx context.Context, task entity.Task) (*entity.Task, error)
	// UpdateDetails and SetCompletedAt write only their own columns and
	// return the row as stored afterwards.
	UpdateDetails(ctx context.Context, id int64, title string, description string) (*entity.Task, error)
	SetCompletedAt(ctx context.Context, id int64, completedAt *time.Time) (*entity.Task, error)
	AssignGoal(ctx context.Context, goalID int64, taskIDs []int64) error

	DeleteByID(ctx context.Context, id int64) error
}
