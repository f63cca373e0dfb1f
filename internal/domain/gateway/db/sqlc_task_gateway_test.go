package db

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"task-list-api/internal/domain/entity"
)

var taskRowColumns = []string{"task_id", "title", "description", "completed_at", "goal_id"}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	database, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		_ = database.Close()
	})
	return database, mock
}

func statement(query string) string {
	return regexp.QuoteMeta(query)
}

func TestSQLTaskGateway_CreateReturnsID(t *testing.T) {
	database, mock := newMockDB(t)
	gateway := NewSQLTaskGateway(database)

	mock.ExpectQuery(statement("INSERT INTO task (title, description, completed_at, goal_id) VALUES ($1, $2, $3, $4) RETURNING task_id")).
		WithArgs("Wash car", "soap", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"task_id"}).AddRow(int64(5)))

	created, err := gateway.Create(context.Background(), entity.Task{ID: 99, Title: "Wash car", Description: "soap"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID != 5 {
		t.Errorf("Create() id = %d, want 5", created.ID)
	}
}

func TestSQLTaskGateway_FindByID(t *testing.T) {
	database, mock := newMockDB(t)
	gateway := NewSQLTaskGateway(database)
	ctx := context.Background()
	completedAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(statement("SELECT task_id, title, description, completed_at, goal_id FROM task WHERE task_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(taskRowColumns).AddRow(int64(1), "Read", "book", completedAt, int64(3)))
	mock.ExpectQuery(statement("FROM task WHERE task_id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(taskRowColumns))

	found, err := gateway.FindByID(ctx, 1)
	if err != nil {
		t.Fatalf("FindByID(1) error = %v", err)
	}
	if found.Title != "Read" || !found.IsComplete() || found.GoalID == nil || *found.GoalID != 3 {
		t.Errorf("FindByID(1) = %+v", found)
	}

	missing, err := gateway.FindByID(ctx, 2)
	if err != nil || missing != nil {
		t.Errorf("FindByID(2) = (%+v, %v), want (nil, nil)", missing, err)
	}
}

func TestSQLTaskGateway_FindAllKeepsIDOrder(t *testing.T) {
	database, mock := newMockDB(t)
	gateway := NewSQLTaskGateway(database)

	mock.ExpectQuery(statement("SELECT task_id, title, description, completed_at, goal_id FROM task ORDER BY task_id ASC")).
		WillReturnRows(sqlmock.NewRows(taskRowColumns).
			AddRow(int64(1), "b", "", nil, nil).
			AddRow(int64(2), "c", "", nil, nil).
			AddRow(int64(3), "a", "", nil, nil))

	tasks, err := gateway.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(tasks) != 3 || tasks[0].Title != "b" || tasks[2].Title != "a" || tasks[1].GoalID != nil {
		t.Errorf("FindAll() = %+v", tasks)
	}
}

func TestSQLTaskGateway_UpdateDetailsWritesOnlyItsColumns(t *testing.T) {
	database, mock := newMockDB(t)
	gateway := NewSQLTaskGateway(database)
	completedAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(statement("UPDATE task SET title = $1, description = $2 WHERE task_id = $3 RETURNING task_id, title, description, completed_at, goal_id")).
		WithArgs("Write", "essay", int64(1)).
		WillReturnRows(sqlmock.NewRows(taskRowColumns).AddRow(int64(1), "Write", "essay", completedAt, int64(4)))

	updated, err := gateway.UpdateDetails(context.Background(), 1, "Write", "essay")
	if err != nil {
		t.Fatalf("UpdateDetails() error = %v", err)
	}
	if !updated.IsComplete() || updated.GoalID == nil || *updated.GoalID != 4 {
		t.Errorf("UpdateDetails() = %+v, want stored completed_at and goal_id", updated)
	}
}

func TestSQLTaskGateway_SetCompletedAt(t *testing.T) {
	database, mock := newMockDB(t)
	gateway := NewSQLTaskGateway(database)
	completedAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(statement("UPDATE task SET completed_at = $1 WHERE task_id = $2 RETURNING")).
		WithArgs(completedAt, int64(1)).
		WillReturnRows(sqlmock.NewRows(taskRowColumns).AddRow(int64(1), "Read", "book", completedAt, nil))
	mock.ExpectQuery(statement("UPDATE task SET completed_at = $1 WHERE task_id = $2 RETURNING")).
		WithArgs(nil, int64(1)).
		WillReturnRows(sqlmock.NewRows(taskRowColumns).AddRow(int64(1), "Read", "book", nil, nil))

	completed, err := gateway.SetCompletedAt(context.Background(), 1, &completedAt)
	if err != nil || !completed.IsComplete() {
		t.Fatalf("SetCompletedAt(complete) = (%+v, %v)", completed, err)
	}
	cleared, err := gateway.SetCompletedAt(context.Background(), 1, nil)
	if err != nil || cleared.IsComplete() {
		t.Errorf("SetCompletedAt(nil) = (%+v, %v), want incomplete", cleared, err)
	}
}

func TestSQLTaskGateway_UpdateMissingRow(t *testing.T) {
	database, mock := newMockDB(t)
	gateway := NewSQLTaskGateway(database)
	ctx := context.Background()

	mock.ExpectQuery(statement("UPDATE task SET title = $1")).
		WithArgs("ghost", "boo", int64(42)).
		WillReturnRows(sqlmock.NewRows(taskRowColumns))
	mock.ExpectQuery(statement("UPDATE task SET completed_at = $1")).
		WithArgs(nil, int64(42)).
		WillReturnRows(sqlmock.NewRows(taskRowColumns))

	if _, err := gateway.UpdateDetails(ctx, 42, "ghost", "boo"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("UpdateDetails(missing) error = %v, want sql.ErrNoRows", err)
	}
	if _, err := gateway.SetCompletedAt(ctx, 42, nil); !IsNotFound(err) {
		t.Errorf("SetCompletedAt(missing) error = %v, want not found", err)
	}
}

func TestSQLTaskGateway_AssignGoalCommits(t *testing.T) {
	database, mock := newMockDB(t)
	gateway := NewSQLTaskGateway(database)

	mock.ExpectBegin()
	mock.ExpectExec(statement("UPDATE task SET goal_id = $1 WHERE task_id = ANY($2)")).
		WithArgs(int64(7), pq.Array([]int64{1, 2})).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	if err := gateway.AssignGoal(context.Background(), 7, []int64{2, 1, 2}); err != nil {
		t.Fatalf("AssignGoal() error = %v", err)
	}
}

func TestSQLTaskGateway_AssignGoalRollsBackWhenTaskMissing(t *testing.T) {
	database, mock := newMockDB(t)
	gateway := NewSQLTaskGateway(database)

	mock.ExpectBegin()
	mock.ExpectExec(statement("UPDATE task SET goal_id = $1 WHERE task_id = ANY($2)")).
		WithArgs(int64(7), pq.Array([]int64{1, 51})).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := gateway.AssignGoal(context.Background(), 7, []int64{1, 51})
	if !errors.Is(err, ErrTasksChanged) {
		t.Fatalf("AssignGoal() error = %v, want ErrTasksChanged", err)
	}
}

func TestSQLTaskGateway_AssignGoalEmptyIsNoop(t *testing.T) {
	database, _ := newMockDB(t)
	gateway := NewSQLTaskGateway(database)

	if err := gateway.AssignGoal(context.Background(), 7, nil); err != nil {
		t.Errorf("AssignGoal(nil) error = %v", err)
	}
}

func TestSQLTaskGateway_CountCompletedBetween(t *testing.T) {
	database, mock := newMockDB(t)
	gateway := NewSQLTaskGateway(database)
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(statement("SELECT COUNT(*) FROM task WHERE completed_at >= $1 AND completed_at < $2")).
		WithArgs(day, day.AddDate(0, 0, 1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))

	count, err := gateway.CountCompletedBetween(context.Background(), day, day.AddDate(0, 0, 1))
	if err != nil || count != 2 {
		t.Errorf("CountCompletedBetween() = (%d, %v), want 2", count, err)
	}
}

func TestSQLTaskGateway_DeleteByID(t *testing.T) {
	database, mock := newMockDB(t)
	gateway := NewSQLTaskGateway(database)

	mock.ExpectExec(statement("DELETE FROM task WHERE task_id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := gateway.DeleteByID(context.Background(), 3); err != nil {
		t.Errorf("DeleteByID() error = %v", err)
	}
}
