package main

import (
	"github.com/spf13/cobra"

	"task-list-api/configs"
	"task-list-api/pkg/log"
	"task-list-api/pkg/msg"
	"task-list-api/pkg/resource"
)

var rootCmd = &cobra.Command{
	Use:               "task-list-api",
	Short:             "Task list service",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfiguration,
}

// loadConfiguration loads .env, then re-reads the properties so their
// placeholders see it, and rebuilds the logger with the final settings.
func loadConfiguration(cmd *cobra.Command, args []string) error {
	env := configs.Load()
	log.Init(env.ApplicationName, env.LogLevel)
	if !env.DotEnvLoaded {
		log.Debug(msg.GetMessage("app.dotenv-missing"))
	}

	configs.SetDefaults()
	return resource.Reload()
}
