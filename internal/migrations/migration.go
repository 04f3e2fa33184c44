package migrations

import (
	"fmt"
	"log"

	"bakery_storefront/internal/database"
	"bakery_storefront/internal/models"
	"bakery_storefront/internal/seed"

	"gorm.io/gorm"
)

// RunMigrations migrates the schema and loads the mock catalog, users and
// orders into an empty database. With reset set, existing tables are dropped first.
func RunMigrations(db *gorm.DB, reset bool) error {
	log.Println("Running database migrations...")

	if reset {
		log.Println("Dropping existing tables...")
		if err := db.Migrator().DropTable(database.Models...); err != nil {
			log.Printf("Warning: Error dropping tables: %v", err)
		}
	}

	log.Println("Creating tables...")
	if err := db.AutoMigrate(database.Models...); err != nil {
		return err
	}

	if err := createDefaultData(db); err != nil {
		return fmt.Errorf("failed to create default data: %w", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

func createDefaultData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Catalog already seeded")
		return nil
	}

	log.Println("Creating default data...")
	return db.Transaction(func(tx *gorm.DB) error {
		users := seed.Users()
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("users: %w", err)
		}

		products := seed.Products()
		if err := tx.Create(&products).Error; err != nil {
			return fmt.Errorf("products: %w", err)
		}

		orders := seed.Orders()
		if err := tx.Create(&orders).Error; err != nil {
			return fmt.Errorf("orders: %w", err)
		}

		log.Printf("Seeded %d users, %d products, %d orders", len(users), len(products), len(orders))
		return nil
	})
}
