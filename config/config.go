package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database selected by DB_DRIVER (sqlite by default, mysql
// when configured) with DB_DSN as the connection string.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	dsn := os.Getenv("DB_DSN")

	switch driver {
	case "mysql":
		if dsn == "" {
			return nil, fmt.Errorf("DB_DSN is required for mysql")
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "sqlite", "":
		if dsn == "" {
			dsn = "planboard.db"
		}
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
}
