package database

import (
	"fmt"
	"log"

	"github.com/adventureworks/models"
	"gorm.io/gorm"
)

// AutoMigrate creates the analysis schema and all source tables
func AutoMigrate(db *gorm.DB, schema string) error {
	log.Println("Starting GORM AutoMigrate...")

	if err := db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schema)).Error; err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if err := db.Exec(fmt.Sprintf("SET search_path TO %s", schema)).Error; err != nil {
		return fmt.Errorf("failed to set search path: %w", err)
	}

	// Parents first; the order comes from AllModels
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	log.Println("Migration completed")
	return nil
}

// DropTables drops all source tables, children first
func DropTables(db *gorm.DB, schema string) error {
	if err := db.Exec(fmt.Sprintf("SET search_path TO %s", schema)).Error; err != nil {
		return fmt.Errorf("failed to set search path: %w", err)
	}

	all := models.AllModels()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("failed to drop table for %T: %w", all[i], err)
		}
	}
	return nil
}
