package main

import (
	"fmt"

	"task-list-api/pkg/log"
	"task-list-api/pkg/msg"
)

type taskSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func main() {
	// MESSAGES_FILE_PATH overrides the catalogue loaded at import time
	if err := msg.Init("configs/messages.yml"); err != nil {
		log.Fatalf("Fail to read messages: %v", err)
	}

	// No placeholders
	fmt.Println(msg.GetMessage("request.error.invalid-data"))

	// One placeholder
	fmt.Println(msg.GetMessage("task.error.not-found", 99999))

	// Two placeholders
	fmt.Println(msg.GetMessage("task.deleted", 1, "Wash car"))

	// Struct arguments are rendered as JSON
	fmt.Println(msg.GetMessage("notification.text", taskSummary{ID: 1, Title: "Wash car"}))

	// Unknown keys
	fmt.Println(msg.GetMessage("task.error.unknown"))
}
