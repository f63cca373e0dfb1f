package main

import (
	"os"

	_ "task-list-api/docs"
)

// @title Task List API
// @version 1.0
// @description Tasks, goals and completion notifications.
// @BasePath /
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
