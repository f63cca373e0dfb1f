package main

import (
	"context"
	"strconv"
	"time"

	"task-list-api/pkg/http"
	"task-list-api/pkg/log"
)

type taskView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsComplete  bool   `json:"is_complete"`
}

type taskResponse struct {
	Task taskView `json:"task"`
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type messageResponse struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

// Drives a locally running task-list-api with the request builder.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := http.NewHttpClient("http://localhost:8080", http.ClientOptions{
		ReadTimeout: 5 * time.Second,
		Logger:      http.ZapLogger{},
	})

	created, failure, status, err := client.Request().
		WithContext(ctx).
		WithMethod(http.POST).
		WithPath("/tasks").
		WithBody(createTaskRequest{Title: "Wash car", Description: "Saturday"}).
		WithSuccessResp(&taskResponse{}).
		WithErrorResp(&messageResponse{}).
		Execute()
	if err != nil {
		log.Errorw("Create failed", "status", status, "error", err, "body", failure)
		return
	}
	task := created.(*taskResponse).Task
	log.Infow("Created task", "status", status, "task", task)

	completed, failure, status, err := client.Request().
		WithContext(ctx).
		WithMethod(http.PATCH).
		WithPath("/tasks/" + strconv.FormatInt(task.ID, 10) + "/mark_complete").
		WithSuccessResp(&taskResponse{}).
		WithErrorResp(&messageResponse{}).
		Execute()
	if err != nil {
		log.Errorw("Mark complete failed", "status", status, "error", err, "body", failure)
		return
	}
	log.Infow("Completed task", "status", status, "task", completed.(*taskResponse).Task)

	// Non-numeric ids are rejected with 400
	_, failure, status, err = client.Request().
		WithContext(ctx).
		WithPath("/tasks/abc").
		WithErrorResp(&messageResponse{}).
		Execute()
	log.Infow("Invalid id", "status", status, "error", err, "body", failure)
}
