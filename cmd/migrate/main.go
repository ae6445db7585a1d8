package main

import (
	"flag"
	"log"

	"medinfo-be/internal/config"
	"medinfo-be/pkg/database"
)

func main() {
	rollback := flag.Bool("rollback", false, "roll back the last migration instead of migrating")
	flag.Parse()

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDB(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	migrator := database.GetMigrator(db)

	if *rollback {
		log.Println("Rolling back last migration...")
		if err := migrator.RollbackLast(); err != nil {
			log.Fatalf("Error: Rollback failed: %v", err)
		}
		log.Println("Rollback complete")
		return
	}

	log.Println("Running migrations...")
	if err := migrator.Migrate(); err != nil {
		log.Fatalf("Error: Migration failed: %v", err)
	}
	log.Println("Migration complete")
}
