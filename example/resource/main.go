package main

import (
	"fmt"
	"os"
	"reflect"

	"task-list-api/pkg/log"
	"task-list-api/pkg/resource"
)

func main() {
	// ${ENV:default} placeholders are resolved when the file is read
	_ = os.Setenv("DB_DRIVER", "sqlite")
	if err := resource.Init("configs/application.yml"); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}

	port := resource.Get("app.server.port")
	fmt.Println("Raw port:", port, reflect.TypeOf(port))
	fmt.Println("Port as int:", resource.GetInt("app.server.port"))
	fmt.Println("Driver from environment:", resource.GetString("app.db.driver"))
	fmt.Println("Redis enabled:", resource.GetBool("app.redis.enabled"))
	fmt.Println("Slack timeout:", resource.GetDuration("app.notification.slack.timeout"))

	// Defaults only apply to keys absent from the file
	resource.SetDefault("app.example.missing", "fallback")
	fmt.Println("Missing key:", resource.GetString("app.example.missing"))

	// Runtime overrides win over the file
	resource.Set("app.server.port", 9090)
	fmt.Println("Overridden port:", resource.GetInt("app.server.port"))
}
