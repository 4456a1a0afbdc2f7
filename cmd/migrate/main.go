package main

import (
	"log"

	"neurostudy-be/internal/config"
	"neurostudy-be/internal/model"
	"neurostudy-be/pkg/database"
)

func main() {
	// 1. Load Environment Variables
	cfg := config.Load()

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDB(database.Options{
		Driver:   cfg.Database.Driver,
		DSN:      cfg.Database.Connection,
		LogLevel: database.LevelFor(cfg.IsProduction()),
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Printf("Starting GORM migration (%s)...", cfg.Database.Driver)

	// 3. AutoMigrate, idempotent
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Fatal("Error: Migration failed:", err)
	}

	for _, m := range model.All() {
		log.Printf("Table for %T present: %v", m, db.Migrator().HasTable(m))
	}

	log.Println("Migration completed successfully")
}
