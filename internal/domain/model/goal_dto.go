package model

import "task-list-api/internal/domain/entity"

type GoalView struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func NewGoalView(goal entity.Goal) GoalView {
	return GoalView{ID: goal.ID, Title: goal.Title}
}

func NewGoalViews(goals []entity.Goal) []GoalView {
	views := make([]GoalView, 0, len(goals))
	for _, goal := range goals {
		views = append(views, NewGoalView(goal))
	}
	return views
}

type GoalResponse struct {
	Goal GoalView `json:"goal"`
}

type CreateGoalDTO struct {
	Title *string `json:"title"`
}

type UpdateGoalDTO struct {
	Title *string `json:"title"`
}

// AttachTasksDTO keeps raw ids: each one may be a JSON number or a numeric
// string and is validated individually.
type AttachTasksDTO struct {
	TaskIDs []any `json:"task_ids"`
}

type GoalTaskIDsResponse struct {
	ID      int64   `json:"id"`
	TaskIDs []int64 `json:"task_ids"`
}

type GoalTasksResponse struct {
	ID    int64      `json:"id"`
	Title string     `json:"title"`
	Tasks []TaskView `json:"tasks"`
}
