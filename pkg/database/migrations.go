package database

import (
	"log"

	"medinfo-be/internal/model"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func GetMigrator(db *gorm.DB) *gormigrate.Gormigrate {
	migrator := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "0001_initial",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.User{}, &model.Medicine{}, &model.SavedMedicine{}, &model.BlogPost{}, &model.Kendra{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("saved_medicines", "blog_posts", "kendras", "medicines", "users")
			},
		},
		{
			ID: "0002_saved_medicine_unique",
			Migrate: func(tx *gorm.DB) error {
				if tx.Migrator().HasIndex(&model.SavedMedicine{}, "idx_saved_user_medicine") {
					return nil
				}
				return tx.Migrator().CreateIndex(&model.SavedMedicine{}, "idx_saved_user_medicine")
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropIndex(&model.SavedMedicine{}, "idx_saved_user_medicine")
			},
		},
	})

	migrator.InitSchema(func(tx *gorm.DB) error {
		// Clean database: create the latest schema directly instead of replaying every migration
		log.Println("clean database detected, running full schema initialization")

		dbType := tx.Dialector.Name()
		if dbType == "sqlite" || dbType == "sqlite3" {
			if err := tx.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
				log.Printf("error enabling foreign keys for SQLite: %v", err)
			}
		}

		return tx.AutoMigrate(&model.User{}, &model.Medicine{}, &model.SavedMedicine{}, &model.BlogPost{}, &model.Kendra{})
	})

	return migrator
}
