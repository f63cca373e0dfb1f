package db

import (
	"context"
	"database/sql"
	"errors"

	"task-list-api/internal/domain/entity"
)

type SQLGoalGateway struct {
	DB *sql.DB
}

var _ GoalGateway = (*SQLGoalGateway)(nil)

func NewSQLGoalGateway(db *sql.DB) *SQLGoalGateway {
	return &SQLGoalGateway{DB: db}
}

func (gateway *SQLGoalGateway) FindAll(ctx context.Context) (results []entity.Goal, err error) {
	rows, err := gateway.DB.QueryContext(ctx, `
		SELECT goal_id, title
		FROM goal
		ORDER BY goal_id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	results = make([]entity.Goal, 0)
	for rows.Next() {
		var goal entity.Goal
		if err := rows.Scan(&goal.ID, &goal.Title); err != nil {
			return nil, err
		}
		results = append(results, goal)
	}
	return results, rows.Err()
}

func (gateway *SQLGoalGateway) FindByID(ctx context.Context, id int64) (*entity.Goal, error) {
	var goal entity.Goal
	err := gateway.DB.QueryRowContext(ctx, `
		SELECT goal_id, title
		FROM goal
		WHERE goal_id = $1`, id).Scan(&goal.ID, &goal.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (gateway *SQLGoalGateway) Create(ctx context.Context, goal entity.Goal) (*entity.Goal, error) {
	err := gateway.DB.QueryRowContext(ctx, `
		INSERT INTO goal (title)
		VALUES ($1)
		RETURNING goal_id`, goal.Title).Scan(&goal.ID)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (gateway *SQLGoalGateway) Update(ctx context.Context, goal entity.Goal) (*entity.Goal, error) {
	res, err := gateway.DB.ExecContext(ctx, `
		UPDATE goal
		SET title = $1
		WHERE goal_id = $2`, goal.Title, goal.ID)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, sql.ErrNoRows
	}
	return &goal, nil
}

func (gateway *SQLGoalGateway) DeleteByID(ctx context.Context, id int64) error {
	tx, err := gateway.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `UPDATE task SET goal_id = NULL WHERE goal_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM goal WHERE goal_id = $1`, id); err != nil {
		return err
	}
	return tx.Commit()
}
