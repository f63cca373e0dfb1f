package goal

import (
	"context"
	"errors"

	"task-list-api/internal/domain/entity"
	"task-list-api/internal/domain/exception"
	"task-list-api/internal/domain/gateway/db"
	"task-list-api/internal/domain/model"
	"task-list-api/internal/domain/usecase/validation"
	"task-list-api/pkg/log"
	"task-list-api/pkg/msg"
)

type goalUseCase struct {
	goalGateway db.GoalGateway
	taskGateway db.TaskGateway
}

func NewGoalUseCase(goalGateway db.GoalGateway, taskGateway db.TaskGateway) UseCase {
	return &goalUseCase{
		goalGateway: goalGateway,
		taskGateway: taskGateway,
	}
}

func (uc *goalUseCase) FindAll(ctx context.Context, sort model.SortOrder) ([]entity.Goal, error) {
	goals, err := uc.goalGateway.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	model.SortByTitle(goals, sort, func(goal entity.Goal) string { return goal.Title })
	return goals, nil
}

func (uc *goalUseCase) FindByID(ctx context.Context, rawID string) (*entity.Goal, error) {
	return validation.RequireGoal(ctx, uc.goalGateway, rawID)
}

func (uc *goalUseCase) Create(ctx context.Context, dto model.CreateGoalDTO) (*entity.Goal, error) {
	if dto.Title == nil {
		return nil, exception.InvalidPayload()
	}
	return uc.goalGateway.Create(ctx, entity.Goal{Title: *dto.Title})
}

func (uc *goalUseCase) Update(ctx context.Context, rawID string, dto model.UpdateGoalDTO) (*entity.Goal, error) {
	goal, err := validation.RequireGoal(ctx, uc.goalGateway, rawID)
	if err != nil {
		return nil, err
	}

	if dto.Title == nil {
		return nil, exception.InvalidPayload()
	}

	goal.Title = *dto.Title
	updated, err := uc.goalGateway.Update(ctx, *goal)
	if db.IsNotFound(err) {
		return nil, exception.NotFound(validation.ResourceGoal, goal.ID)
	}
	return updated, err
}

func (uc *goalUseCase) Delete(ctx context.Context, rawID string) (*entity.Goal, error) {
	goal, err := validation.RequireGoal(ctx, uc.goalGateway, rawID)
	if err != nil {
		return nil, err
	}

	if err := uc.goalGateway.DeleteByID(ctx, goal.ID); err != nil {
		return nil, err
	}
	return goal, nil
}

// AttachTasks validates the goal and every task before writing anything, so
// one bad id leaves all tasks untouched.
func (uc *goalUseCase) AttachTasks(ctx context.Context, rawID string, dto model.AttachTasksDTO) (*entity.Goal, []int64, error) {
	goal, err := validation.RequireGoal(ctx, uc.goalGateway, rawID)
	if err != nil {
		return nil, nil, err
	}

	if dto.TaskIDs == nil {
		return nil, nil, exception.InvalidPayload()
	}

	taskIDs := make([]int64, 0, len(dto.TaskIDs))
	for _, rawTaskID := range dto.TaskIDs {
		task, err := validation.RequireTaskID(ctx, uc.taskGateway, rawTaskID)
		if err != nil {
			return nil, nil, err
		}
		taskIDs = append(taskIDs, task.ID)
	}

	if err := uc.taskGateway.AssignGoal(ctx, goal.ID, taskIDs); err != nil {
		if errors.Is(err, db.ErrTasksChanged) {
			log.Errorw(msg.GetMessage("goal.error.tasks-changed", goal.ID), "taskIds", taskIDs)
		}
		return nil, nil, err
	}

	log.Infow(msg.GetMessage("goal.tasks-attached", goal.ID), "taskIds", taskIDs)
	return goal, taskIDs, nil
}

func (uc *goalUseCase) FindTasks(ctx context.Context, rawID string) (*entity.Goal, error) {
	goal, err := validation.RequireGoal(ctx, uc.goalGateway, rawID)
	if err != nil {
		return nil, err
	}

	tasks, err := uc.taskGateway.FindByGoalID(ctx, goal.ID)
	if err != nil {
		return nil, err
	}
	goal.Tasks = tasks
	return goal, nil
}
