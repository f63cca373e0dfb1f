package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"task-list-api/internal/domain/entity"
	"task-list-api/internal/domain/gateway/db"
	"task-list-api/internal/domain/usecase/goal"
	"task-list-api/internal/domain/usecase/task"
	"task-list-api/internal/testutil"
	"task-list-api/pkg/msg"
)

func TestMain(m *testing.M) {
	if err := msg.Init("../../../configs/messages.yml"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type MockNotifier struct {
	Completed []entity.Task
}

func (m *MockNotifier) NotifyTaskCompleted(ctx context.Context, task entity.Task) {
	m.Completed = append(m.Completed, task)
}

type testServer struct {
	echo     *echo.Echo
	notifier *MockNotifier
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	database := testutil.NewTestDB(t)
	taskGateway := db.NewGormTaskGateway(database)
	goalGateway := db.NewGormGoalGateway(database)
	notifier := &MockNotifier{}

	e := echo.New()
	routes := e.Group("")
	NewTaskController(routes, task.NewTaskUseCase(taskGateway, notifier)).InitTaskRoutes()
	NewGoalController(routes, goal.NewGoalUseCase(goalGateway, taskGateway)).InitGoalRoutes()

	return &testServer{echo: e, notifier: notifier}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func assertResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, body string) {
	t.Helper()
	if rec.Code != status {
		t.Errorf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	if body != "" && strings.TrimSpace(rec.Body.String()) != body {
		t.Errorf("body = %s, want %s", strings.TrimSpace(rec.Body.String()), body)
	}
}

func TestCreateTask(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/tasks", `{"title":"Wash car","description":"Saturday"}`)

	assertResponse(t, rec, http.StatusCreated,
		`{"task":{"id":1,"title":"Wash car","description":"Saturday","is_complete":false}}`)
}

func TestCreateTaskWithCompletedAt(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/tasks",
		`{"title":"Wash car","description":"Saturday","completed_at":"2024-06-15"}`)

	assertResponse(t, rec, http.StatusCreated,
		`{"task":{"id":1,"title":"Wash car","description":"Saturday","is_complete":true}}`)
}

func TestCreateTaskInvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing description", `{"title":"Wash car"}`},
		{"missing title", `{"description":"Saturday"}`},
		{"empty object", `{}`},
		{"null title", `{"title":null,"description":"d"}`},
		{"null description", `{"title":"Wash car","description":null}`},
		{"malformed json", `{"title":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			rec := s.do(t, http.MethodPost, "/tasks", tt.body)
			assertResponse(t, rec, http.StatusBadRequest, `{"details":"Invalid data"}`)
		})
	}
}

func TestFindTaskErrors(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/tasks/abc", "")
	assertResponse(t, rec, http.StatusBadRequest, `{"message":"task abc invalid, id must be integer"}`)

	rec = s.do(t, http.MethodGet, "/tasks/99999", "")
	assertResponse(t, rec, http.StatusNotFound, `{"message":"task 99999 not found"}`)
}

func TestListTasksSorted(t *testing.T) {
	s := newTestServer(t)
	for _, title := range []string{"b", "c", "a"} {
		s.do(t, http.MethodPost, "/tasks", `{"title":"`+title+`","description":"d"}`)
	}

	titles := func(path string) string {
		rec := s.do(t, http.MethodGet, path, "")
		var tasks []struct {
			Title string `json:"title"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &tasks); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		var out []string
		for _, task := range tasks {
			out = append(out, task.Title)
		}
		return strings.Join(out, ",")
	}

	if got := titles("/tasks"); got != "b,c,a" {
		t.Errorf("default order = %s, want b,c,a", got)
	}
	if got := titles("/tasks?sort=asc"); got != "a,b,c" {
		t.Errorf("asc order = %s, want a,b,c", got)
	}
	if got := titles("/tasks?sort=desc"); got != "c,b,a" {
		t.Errorf("desc order = %s, want c,b,a", got)
	}
}

func TestListTasksEmpty(t *testing.T) {
	s := newTestServer(t)
	assertResponse(t, s.do(t, http.MethodGet, "/tasks", ""), http.StatusOK, `[]`)
}

func TestUpdateTask(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPost, "/tasks", `{"title":"Wash car","description":"Saturday"}`)

	rec := s.do(t, http.MethodPut, "/tasks/1", `{"title":"Wash bike","description":"Sunday"}`)
	assertResponse(t, rec, http.StatusOK,
		`{"task":{"id":1,"title":"Wash bike","description":"Sunday","is_complete":false}}`)

	rec = s.do(t, http.MethodPut, "/tasks/1", `{"title":"Only title"}`)
	assertResponse(t, rec, http.StatusBadRequest, `{"details":"Invalid data"}`)

	rec = s.do(t, http.MethodPut, "/tasks/abc", `{"title":`)
	assertResponse(t, rec, http.StatusBadRequest, `{"message":"task abc invalid, id must be integer"}`)

	rec = s.do(t, http.MethodPut, "/tasks/42", `{"title":"x","description":"y"}`)
	assertResponse(t, rec, http.StatusNotFound, `{"message":"task 42 not found"}`)
}

func TestMarkTaskCompletion(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPost, "/tasks", `{"title":"Wash car","description":"Saturday"}`)

	rec := s.do(t, http.MethodPatch, "/tasks/1/mark_complete", "")
	assertResponse(t, rec, http.StatusOK,
		`{"task":{"id":1,"title":"Wash car","description":"Saturday","is_complete":true}}`)
	if len(s.notifier.Completed) != 1 {
		t.Fatalf("notifications = %d, want 1", len(s.notifier.Completed))
	}

	rec = s.do(t, http.MethodPatch, "/tasks/1/mark_incomplete", "")
	assertResponse(t, rec, http.StatusOK,
		`{"task":{"id":1,"title":"Wash car","description":"Saturday","is_complete":false}}`)

	rec = s.do(t, http.MethodPatch, "/tasks/1/mark_urgent", "")
	assertResponse(t, rec, http.StatusOK,
		`{"task":{"id":1,"title":"Wash car","description":"Saturday","is_complete":false}}`)

	if len(s.notifier.Completed) != 1 {
		t.Errorf("notifications = %d, want 1", len(s.notifier.Completed))
	}

	rec = s.do(t, http.MethodPatch, "/tasks/7/mark_complete", "")
	assertResponse(t, rec, http.StatusNotFound, `{"message":"task 7 not found"}`)
}

func TestDeleteTask(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPost, "/tasks", `{"title":"Wash car","description":"Saturday"}`)

	rec := s.do(t, http.MethodDelete, "/tasks/1", "")
	assertResponse(t, rec, http.StatusOK, `{"details":"Task 1 \"Wash car\" successfully deleted"}`)

	rec = s.do(t, http.MethodGet, "/tasks/1", "")
	assertResponse(t, rec, http.StatusNotFound, `{"message":"task 1 not found"}`)
}

func TestGoalLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/goals", `{"title":"Build a habit"}`)
	assertResponse(t, rec, http.StatusCreated, `{"goal":{"id":1,"title":"Build a habit"}}`)

	rec = s.do(t, http.MethodPost, "/goals", `{}`)
	assertResponse(t, rec, http.StatusBadRequest, `{"details":"Invalid data"}`)

	rec = s.do(t, http.MethodGet, "/goals/1", "")
	assertResponse(t, rec, http.StatusOK, `{"goal":{"id":1,"title":"Build a habit"}}`)

	rec = s.do(t, http.MethodPut, "/goals/1", `{"title":"Keep the habit"}`)
	assertResponse(t, rec, http.StatusOK, `{"goal":{"id":1,"title":"Keep the habit"}}`)

	rec = s.do(t, http.MethodGet, "/goals", "")
	assertResponse(t, rec, http.StatusOK, `[{"id":1,"title":"Keep the habit"}]`)

	rec = s.do(t, http.MethodDelete, "/goals/1", "")
	assertResponse(t, rec, http.StatusOK, `{"details":"Goal 1 \"Keep the habit\" successfully deleted"}`)

	rec = s.do(t, http.MethodGet, "/goals/1", "")
	assertResponse(t, rec, http.StatusNotFound, `{"message":"goal 1 not found"}`)

	rec = s.do(t, http.MethodGet, "/goals/x", "")
	assertResponse(t, rec, http.StatusBadRequest, `{"message":"goal x invalid, id must be integer"}`)
}

func TestAttachTasksToGoal(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPost, "/goals", `{"title":"Chores"}`)
	s.do(t, http.MethodPost, "/tasks", `{"title":"Wash car","description":"Saturday"}`)
	s.do(t, http.MethodPost, "/tasks", `{"title":"Mow lawn","description":"Sunday"}`)

	rec := s.do(t, http.MethodPost, "/goals/1/tasks", `{"task_ids":[1,"2"]}`)
	assertResponse(t, rec, http.StatusOK, `{"id":1,"task_ids":[1,2]}`)

	rec = s.do(t, http.MethodGet, "/goals/1/tasks", "")
	assertResponse(t, rec, http.StatusOK,
		`{"id":1,"title":"Chores","tasks":[`+
			`{"id":1,"title":"Wash car","description":"Saturday","is_complete":false,"goal_id":1},`+
			`{"id":2,"title":"Mow lawn","description":"Sunday","is_complete":false,"goal_id":1}]}`)

	rec = s.do(t, http.MethodGet, "/tasks/1", "")
	assertResponse(t, rec, http.StatusOK,
		`{"task":{"id":1,"title":"Wash car","description":"Saturday","is_complete":false,"goal_id":1}}`)
}

func TestAttachTasksAllOrNothing(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPost, "/goals", `{"title":"Chores"}`)
	s.do(t, http.MethodPost, "/tasks", `{"title":"Wash car","description":"Saturday"}`)

	rec := s.do(t, http.MethodPost, "/goals/1/tasks", `{"task_ids":[1,"abc"]}`)
	assertResponse(t, rec, http.StatusBadRequest, `{"message":"task abc invalid, id must be integer"}`)

	rec = s.do(t, http.MethodPost, "/goals/1/tasks", `{"task_ids":[1,9007199254740993]}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("attach with id beyond float precision status = %d, want 400", rec.Code)
	}

	rec = s.do(t, http.MethodPost, "/goals/1/tasks", `{"task_ids":[1,500]}`)
	assertResponse(t, rec, http.StatusNotFound, `{"message":"task 500 not found"}`)

	rec = s.do(t, http.MethodGet, "/goals/1/tasks", "")
	assertResponse(t, rec, http.StatusOK, `{"id":1,"title":"Chores","tasks":[]}`)

	rec = s.do(t, http.MethodPost, "/goals/9/tasks", `{"task_ids":[1]}`)
	assertResponse(t, rec, http.StatusNotFound, `{"message":"goal 9 not found"}`)

	rec = s.do(t, http.MethodPost, "/goals/1/tasks", `{}`)
	assertResponse(t, rec, http.StatusBadRequest, `{"details":"Invalid data"}`)
}
