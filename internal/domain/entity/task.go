package entity

import "time"

type Task struct {
	ID          int64      `gorm:"column:task_id;primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"column:title" json:"title"`
	Description string     `gorm:"column:description" json:"description"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at"`
	GoalID      *int64     `gorm:"column:goal_id;index" json:"goal_id"`
}

func (Task) TableName() string {
	return "task"
}

// IsComplete reports whether the task carries a completion date.
func (t Task) IsComplete() bool {
	return t.CompletedAt != nil
}
