package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"task-list-api/internal/domain/entity"
)

const taskColumns = `task_id, title, description, completed_at, goal_id`

// SQLTaskGateway is the hand-written SQL implementation over lib/pq.
type SQLTaskGateway struct {
	DB *sql.DB
}

var _ TaskGateway = (*SQLTaskGateway)(nil)

func NewSQLTaskGateway(db *sql.DB) *SQLTaskGateway {
	return &SQLTaskGateway{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (entity.Task, error) {
	var task entity.Task
	var completedAt sql.NullTime
	var goalID sql.NullInt64

	if err := row.Scan(&task.ID, &task.Title, &task.Description, &completedAt, &goalID); err != nil {
		return task, err
	}
	if completedAt.Valid {
		task.CompletedAt = &completedAt.Time
	}
	if goalID.Valid {
		task.GoalID = &goalID.Int64
	}
	return task, nil
}

func (gateway *SQLTaskGateway) queryTasks(ctx context.Context, query string, args ...any) (results []entity.Task, err error) {
	rows, err := gateway.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	results = make([]entity.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, task)
	}
	return results, rows.Err()
}

func (gateway *SQLTaskGateway) FindAll(ctx context.Context) ([]entity.Task, error) {
	return gateway.queryTasks(ctx, `
		SELECT `+taskColumns+`
		FROM task
		ORDER BY task_id ASC`)
}

func (gateway *SQLTaskGateway) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	task, err := scanTask(gateway.DB.QueryRowContext(ctx, `
		SELECT `+taskColumns+`
		FROM task
		WHERE task_id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (gateway *SQLTaskGateway) FindByGoalID(ctx context.Context, goalID int64) ([]entity.Task, error) {
	return gateway.queryTasks(ctx, `
		SELECT `+taskColumns+`
		FROM task
		WHERE goal_id = $1
		ORDER BY task_id ASC`, goalID)
}

func (gateway *SQLTaskGateway) CountCompletedBetween(ctx context.Context, from time.Time, to time.Time) (int64, error) {
	var count int64
	err := gateway.DB.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM task
		WHERE completed_at >= $1 AND completed_at < $2`, from, to).Scan(&count)
	return count, err
}

func (gateway *SQLTaskGateway) Create(ctx context.Context, task entity.Task) (*entity.Task, error) {
	err := gateway.DB.QueryRowContext(ctx, `
		INSERT INTO task (title, description, completed_at, goal_id)
		VALUES ($1, $2, $3, $4)
		RETURNING task_id`,
		task.Title, task.Description, task.CompletedAt, task.GoalID).Scan(&task.ID)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (gateway *SQLTaskGateway) UpdateDetails(ctx context.Context, id int64, title string, description string) (*entity.Task, error) {
	return gateway.updateReturning(ctx, `
		UPDATE task
		SET title = $1, description = $2
		WHERE task_id = $3
		RETURNING `+taskColumns, title, description, id)
}

func (gateway *SQLTaskGateway) SetCompletedAt(ctx context.Context, id int64, completedAt *time.Time) (*entity.Task, error) {
	return gateway.updateReturning(ctx, `
		UPDATE task
		SET completed_at = $1
		WHERE task_id = $2
		RETURNING `+taskColumns, completedAt, id)
}

// updateReturning runs an UPDATE ... RETURNING; a missing row is sql.ErrNoRows.
func (gateway *SQLTaskGateway) updateReturning(ctx context.Context, query string, args ...any) (*entity.Task, error) {
	task, err := scanTask(gateway.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (gateway *SQLTaskGateway) AssignGoal(ctx context.Context, goalID int64, taskIDs []int64) error {
	ids := uniqueIDs(taskIDs)
	if len(ids) == 0 {
		return nil
	}

	tx, err := gateway.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE task
		SET goal_id = $1
		WHERE task_id = ANY($2)`, goalID, pq.Array(ids))
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected != int64(len(ids)) {
		return ErrTasksChanged
	}
	return tx.Commit()
}

func (gateway *SQLTaskGateway) DeleteByID(ctx context.Context, id int64) error {
	_, err := gateway.DB.ExecContext(ctx, `DELETE FROM task WHERE task_id = $1`, id)
	return err
}
