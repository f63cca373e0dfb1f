package main

import (
	"go.uber.org/zap"

	"task-list-api/pkg/log"
)

type taskSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func main() {
	task := taskSummary{ID: 1, Title: "Wash car"}
	var goalID int64 = 3

	// APPLICATION_NAME and LOG_LEVEL are read at import time
	log.Info("Typed fields go through the zap.Logger. Use log.Debug, log.Warn and log.Error the same way.",
		zap.Bool("complete", true),
		zap.String("title", task.Title),
		zap.Int64p("goalId", &goalID),
		zap.Any("task", task),
	)

	log.Infow("Loosely typed pairs go through the SugaredLogger.",
		"taskId", task.ID,
		"task", task)

	log.Infof("Formatted messages also use the SugaredLogger: task %d %q", task.ID, task.Title)

	// Rebuild the logger once configuration is known
	log.Init("task-list-example", "debug")
	log.Debug("Debug output is visible after Init with the debug level")
}
