package database

import (
	"fmt"
	"log"

	"bakery_storefront/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table the storefront persists, parents before children.
var Models = []interface{}{
	&models.User{},
	&models.Product{},
	&models.Review{},
	&models.Order{},
	&models.OrderItem{},
	&models.TrackingStep{},
}

// Initialize opens the database for driver ("postgres" or "sqlite") and
// migrates the schema.
func Initialize(driver, databaseURL string) (*gorm.DB, error) {
	return open(driver, databaseURL, logger.Default.LogMode(logger.Info))
}

// InitializeQuiet is Initialize with gorm's SQL logging turned off.
func InitializeQuiet(driver, databaseURL string) (*gorm.DB, error) {
	return open(driver, databaseURL, logger.Default.LogMode(logger.Silent))
}

func open(driver, databaseURL string, gormLogger logger.Interface) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(databaseURL)
	case "sqlite":
		dialector = sqlite.Open(databaseURL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	config := &gorm.Config{
		Logger: gormLogger,
	}

	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(Models...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database connected and migrated successfully")
	return db, nil
}
