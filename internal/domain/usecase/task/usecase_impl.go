package task

import (
	"context"
	"strings"
	"time"

	"task-list-api/internal/domain/entity"
	"task-list-api/internal/domain/exception"
	"task-list-api/internal/domain/gateway/db"
	"task-list-api/internal/domain/model"
	"task-list-api/internal/domain/usecase/validation"
	"task-list-api/pkg/log"
	"task-list-api/pkg/msg"
)

// completedAtLayouts are tried in order when parsing completed_at.
var completedAtLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123,
	time.RFC1123Z,
	time.DateTime,
}

type taskUseCase struct {
	gateway  db.TaskGateway
	notifier Notifier
	now      func() time.Time
}

func NewTaskUseCase(gateway db.TaskGateway, notifier Notifier) UseCase {
	return newTaskUseCase(gateway, notifier, time.Now)
}

func newTaskUseCase(gateway db.TaskGateway, notifier Notifier, now func() time.Time) *taskUseCase {
	return &taskUseCase{
		gateway:  gateway,
		notifier: notifier,
		now:      now,
	}
}

func (uc *taskUseCase) FindAll(ctx context.Context, sort model.SortOrder) ([]entity.Task, error) {
	tasks, err := uc.gateway.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	model.SortByTitle(tasks, sort, func(task entity.Task) string { return task.Title })
	return tasks, nil
}

func (uc *taskUseCase) FindByID(ctx context.Context, rawID string) (*entity.Task, error) {
	return validation.RequireTask(ctx, uc.gateway, rawID)
}

func (uc *taskUseCase) Create(ctx context.Context, dto model.CreateTaskDTO) (*entity.Task, error) {
	if dto.Title == nil || dto.Description == nil {
		return nil, exception.InvalidPayload()
	}

	completedAt, err := parseCompletedAt(dto.CompletedAt)
	if err != nil {
		return nil, err
	}

	return uc.gateway.Create(ctx, entity.Task{
		Title:       *dto.Title,
		Description: *dto.Description,
		CompletedAt: completedAt,
	})
}

func (uc *taskUseCase) Update(ctx context.Context, rawID string, dto model.UpdateTaskDTO) (*entity.Task, error) {
	task, err := validation.RequireTask(ctx, uc.gateway, rawID)
	if err != nil {
		return nil, err
	}

	if dto.Title == nil || dto.Description == nil {
		return nil, exception.InvalidPayload()
	}

	updated, err := uc.gateway.UpdateDetails(ctx, task.ID, *dto.Title, *dto.Description)
	if err != nil {
		return nil, notFoundAs(task.ID, err)
	}
	return updated, nil
}

// MarkCompletion applies the completion toggle. Marks other than
// mark_complete and mark_incomplete leave the task untouched.
func (uc *taskUseCase) MarkCompletion(ctx context.Context, rawID string, mark model.CompletionMark) (*entity.Task, error) {
	task, err := validation.RequireTask(ctx, uc.gateway, rawID)
	if err != nil {
		return nil, err
	}

	switch mark {
	case model.MarkIncomplete:
		saved, err := uc.gateway.SetCompletedAt(ctx, task.ID, nil)
		if err != nil {
			return nil, notFoundAs(task.ID, err)
		}
		return saved, nil
	case model.MarkComplete:
		today := uc.today()
		saved, err := uc.gateway.SetCompletedAt(ctx, task.ID, &today)
		if err != nil {
			return nil, notFoundAs(task.ID, err)
		}
		uc.notifier.NotifyTaskCompleted(ctx, *saved)
		return saved, nil
	default:
		log.Debug(msg.GetMessage("task.unknown-mark", mark, task.ID))
		return task, nil
	}
}

func (uc *taskUseCase) Delete(ctx context.Context, rawID string) (*entity.Task, error) {
	task, err := validation.RequireTask(ctx, uc.gateway, rawID)
	if err != nil {
		return nil, err
	}

	if err := uc.gateway.DeleteByID(ctx, task.ID); err != nil {
		return nil, err
	}
	return task, nil
}

// notFoundAs maps a row that vanished since it was loaded to NotFound.
func notFoundAs(id int64, err error) error {
	if db.IsNotFound(err) {
		return exception.NotFound(validation.ResourceTask, id)
	}
	return err
}

// today is the current date at UTC midnight.
func (uc *taskUseCase) today() time.Time {
	year, month, day := uc.now().UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func parseCompletedAt(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}

	value := strings.TrimSpace(*raw)
	for _, layout := range completedAtLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			parsed = parsed.UTC()
			return &parsed, nil
		}
	}

	log.Debug(msg.GetMessage("task.error.completed-at", value))
	return nil, exception.InvalidPayload()
}
