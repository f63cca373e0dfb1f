package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"task-list-api/internal/domain/entity"
)

type GormGoalGateway struct {
	DB *gorm.DB
}

var _ GoalGateway = (*GormGoalGateway)(nil)

func NewGormGoalGateway(db *gorm.DB) *GormGoalGateway {
	return &GormGoalGateway{DB: db}
}

func (gateway *GormGoalGateway) FindAll(ctx context.Context) ([]entity.Goal, error) {
	goals := make([]entity.Goal, 0)
	err := gateway.DB.WithContext(ctx).Order("goal_id asc").Find(&goals).Error
	return goals, err
}

func (gateway *GormGoalGateway) FindByID(ctx context.Context, id int64) (*entity.Goal, error) {
	var goal entity.Goal
	err := gateway.DB.WithContext(ctx).First(&goal, "goal_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (gateway *GormGoalGateway) Create(ctx context.Context, goal entity.Goal) (*entity.Goal, error) {
	goal.ID = 0
	goal.Tasks = nil
	if err := gateway.DB.WithContext(ctx).Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (gateway *GormGoalGateway) Update(ctx context.Context, goal entity.Goal) (*entity.Goal, error) {
	res := gateway.DB.WithContext(ctx).Model(&entity.Goal{}).
		Where("goal_id = ?", goal.ID).
		Update("title", goal.Title)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &goal, nil
}

// DeleteByID detaches the goal's tasks and removes the goal atomically.
func (gateway *GormGoalGateway) DeleteByID(ctx context.Context, id int64) error {
	return gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Task{}).
			Where("goal_id = ?", id).
			Update("goal_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Goal{}, "goal_id = ?", id).Error
	})
}
