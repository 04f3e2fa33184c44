package main

import (
	"fmt"
	"log"

	"bakery_storefront/internal/config"
	"bakery_storefront/internal/database"
	"bakery_storefront/internal/migrations"
	"bakery_storefront/internal/models"
)

// Recreates the storefront tables and loads the demo catalog, accounts and
// orders. Uses STORE_DRIVER and DATABASE_URL; the memory driver has nothing
// to initialize.
func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()
	if cfg.StoreDriver == "memory" {
		log.Fatal("STORE_DRIVER is memory; set it to postgres or sqlite")
	}

	// Initialize database
	db, err := database.Initialize(cfg.StoreDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db, true); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	var products, orders int64
	db.Model(&models.Product{}).Count(&products)
	db.Model(&models.Order{}).Count(&orders)
	fmt.Printf("Products: %d\n", products)
	fmt.Printf("Orders: %d\n", orders)
	fmt.Println("Username: test123  Password: test123")
	fmt.Println("Username: admin    Password: admin123")

	fmt.Println("Database initialization completed successfully!")
}
