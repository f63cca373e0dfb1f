package validation

import (
	"context"

	"task-list-api/internal/domain/entity"
	"task-list-api/internal/domain/exception"
	"task-list-api/internal/domain/gateway/db"
	"task-list-api/pkg/util/numberutils"
)

const (
	ResourceTask = "task"
	ResourceGoal = "goal"
)

// ParseID converts a path id into an int64 or returns an InvalidIdentifier
// exception naming the resource.
func ParseID(resource string, raw string) (int64, error) {
	id, err := numberutils.ToInt64WithError(raw)
	if err != nil {
		return 0, exception.InvalidIdentifier(resource, raw)
	}
	return id, nil
}

// ParseAnyID is ParseID for ids decoded from a JSON body.
func ParseAnyID(resource string, raw any) (int64, error) {
	id, ok := numberutils.AnyToInt64(raw)
	if !ok {
		return 0, exception.InvalidIdentifier(resource, raw)
	}
	return id, nil
}

// RequireTask loads the task addressed by rawID.
func RequireTask(ctx context.Context, gateway db.TaskGateway, rawID string) (*entity.Task, error) {
	id, err := ParseID(ResourceTask, rawID)
	if err != nil {
		return nil, err
	}
	return findTask(ctx, gateway, id)
}

// RequireTaskID loads the task addressed by a JSON-decoded id.
func RequireTaskID(ctx context.Context, gateway db.TaskGateway, rawID any) (*entity.Task, error) {
	id, err := ParseAnyID(ResourceTask, rawID)
	if err != nil {
		return nil, err
	}
	return findTask(ctx, gateway, id)
}

func findTask(ctx context.Context, gateway db.TaskGateway, id int64) (*entity.Task, error) {
	task, err := gateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, exception.NotFound(ResourceTask, id)
	}
	return task, nil
}

// RequireGoal loads the goal addressed by rawID.
func RequireGoal(ctx context.Context, gateway db.GoalGateway, rawID string) (*entity.Goal, error) {
	id, err := ParseID(ResourceGoal, rawID)
	if err != nil {
		return nil, err
	}

	goal, err := gateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, exception.NotFound(ResourceGoal, id)
	}
	return goal, nil
}
