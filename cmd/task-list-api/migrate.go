package main

import (
	"github.com/spf13/cobra"

	"task-list-api/internal/infra/database/gorm"
	"task-list-api/pkg/log"
	"task-list-api/pkg/msg"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the task and goal tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer log.Sync()
		log.Info(msg.GetMessage("app.migrate-start"))

		db, err := gorm.Open()
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		if err := gorm.Migrate(db); err != nil {
			return err
		}

		log.Info(msg.GetMessage("app.migrate-end"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
