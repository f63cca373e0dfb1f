package gorm

import (
	"fmt"

	"task-list-api/internal/domain/entity"
	"task-list-api/internal/infra/database"
	"task-list-api/pkg/resource"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open connects to the database selected by app.db.driver.
func Open() (*gorm.DB, error) {
	driver := resource.GetString("app.db.driver")

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(database.PostgresDSN())
	case DriverSQLite:
		dialector = sqlite.Open(resource.GetString("app.db.sqlite-path") + "?_foreign_keys=on")
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("fail to connect database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the goal and task tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Goal{}, &entity.Task{})
}
