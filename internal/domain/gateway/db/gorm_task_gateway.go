package db

import (
	"context"
	"errors"
	"slices"
	"time"

	"gorm.io/gorm"

	"task-list-api/internal/domain/entity"
)

type GormTaskGateway struct {
	DB *gorm.DB
}

var _ TaskGateway = (*GormTaskGateway)(nil)

func NewGormTaskGateway(db *gorm.DB) *GormTaskGateway {
	return &GormTaskGateway{DB: db}
}

func (gateway *GormTaskGateway) FindAll(ctx context.Context) ([]entity.Task, error) {
	tasks := make([]entity.Task, 0)
	err := gateway.DB.WithContext(ctx).Order("task_id asc").Find(&tasks).Error
	return tasks, err
}

func (gateway *GormTaskGateway) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	var task entity.Task
	err := gateway.DB.WithContext(ctx).First(&task, "task_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (gateway *GormTaskGateway) FindByGoalID(ctx context.Context, goalID int64) ([]entity.Task, error) {
	tasks := make([]entity.Task, 0)
	err := gateway.DB.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("task_id asc").
		Find(&tasks).Error
	return tasks, err
}

func (gateway *GormTaskGateway) CountCompletedBetween(ctx context.Context, from time.Time, to time.Time) (int64, error) {
	var count int64
	err := gateway.DB.WithContext(ctx).Model(&entity.Task{}).
		Where("completed_at >= ? AND completed_at < ?", from, to).
		Count(&count).Error
	return count, err
}

func (gateway *GormTaskGateway) Create(ctx context.Context, task entity.Task) (*entity.Task, error) {
	task.ID = 0
	if err := gateway.DB.WithContext(ctx).Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (gateway *GormTaskGateway) UpdateDetails(ctx context.Context, id int64, title string, description string) (*entity.Task, error) {
	return gateway.updateColumns(ctx, id, map[string]interface{}{
		"title":       title,
		"description": description,
	})
}

func (gateway *GormTaskGateway) SetCompletedAt(ctx context.Context, id int64, completedAt *time.Time) (*entity.Task, error) {
	return gateway.updateColumns(ctx, id, map[string]interface{}{
		"completed_at": completedAt,
	})
}

// updateColumns writes the given columns and reads the row back in the same
// transaction. A missing row is gorm.ErrRecordNotFound.
func (gateway *GormTaskGateway) updateColumns(ctx context.Context, id int64, columns map[string]interface{}) (*entity.Task, error) {
	var task entity.Task
	err := gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Task{}).
			Where("task_id = ?", id).
			Updates(columns)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&task, "task_id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// AssignGoal sets goal_id on every task in a single transaction.
func (gateway *GormTaskGateway) AssignGoal(ctx context.Context, goalID int64, taskIDs []int64) error {
	ids := uniqueIDs(taskIDs)
	if len(ids) == 0 {
		return nil
	}

	return gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Task{}).
			Where("task_id IN ?", ids).
			Update("goal_id", goalID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(ids)) {
			return ErrTasksChanged
		}
		return nil
	})
}

func (gateway *GormTaskGateway) DeleteByID(ctx context.Context, id int64) error {
	return gateway.DB.WithContext(ctx).Delete(&entity.Task{}, "task_id = ?", id).Error
}

func uniqueIDs(ids []int64) []int64 {
	unique := slices.Clone(ids)
	slices.Sort(unique)
	return slices.Compact(unique)
}
