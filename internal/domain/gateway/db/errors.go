package db

import (
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// IsNotFound reports whether err is the "no row" error of either gateway
// family.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows)
}
