package model

import (
	"time"

	"task-list-api/internal/domain/entity"
)

// TaskView is the public representation of a task.
type TaskView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsComplete  bool   `json:"is_complete"`
	GoalID      *int64 `json:"goal_id,omitempty"`
}

func NewTaskView(task entity.Task) TaskView {
	return TaskView{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		IsComplete:  task.IsComplete(),
		GoalID:      task.GoalID,
	}
}

func NewTaskViews(tasks []entity.Task) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, NewTaskView(task))
	}
	return views
}

type TaskResponse struct {
	Task TaskView `json:"task"`
}

// CreateTaskDTO uses pointers so that absent or null keys can be told apart
// from empty strings. Both are rejected for title and description.
type CreateTaskDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CompletedAt *string `json:"completed_at"`
}

type UpdateTaskDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// CompletionMark is the path segment of the completion toggle endpoint.
type CompletionMark string

const (
	MarkComplete   CompletionMark = "mark_complete"
	MarkIncomplete CompletionMark = "mark_incomplete"
)

// TaskCompletedEvent is the payload handed to the notification channel.
type TaskCompletedEvent struct {
	TaskID      int64  `json:"task_id"`
	Title       string `json:"title"`
	CompletedAt string `json:"completed_at"`
}

func NewTaskCompletedEvent(task entity.Task) TaskCompletedEvent {
	event := TaskCompletedEvent{TaskID: task.ID, Title: task.Title}
	if task.CompletedAt != nil {
		event.CompletedAt = task.CompletedAt.Format(time.DateOnly)
	}
	return event
}
