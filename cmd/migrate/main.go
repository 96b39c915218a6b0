package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/adventureworks/config"
	"github.com/adventureworks/database"
)

func main() {
	// Command line flags
	var (
		drop = flag.Bool("drop", false, "Drop all tables before migration")
		help = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fmt.Println("🚀 Starting Database Migration Tool")
	fmt.Printf("📊 Database: %s@%s:%s/%s schema=%s\n",
		cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName, cfg.Database.Schema)

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Check connection
	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatalf("❌ Database connection check failed: %v", err)
	}

	// Drop tables if requested
	if *drop {
		fmt.Printf("⚠️  Dropping all tables in %s schema...\n", cfg.Database.Schema)
		if err := database.DropTables(database.DB, cfg.Database.Schema); err != nil {
			log.Fatalf("❌ Failed to drop tables: %v", err)
		}
		fmt.Println("✅ All tables dropped")
	}

	// Run AutoMigrate
	fmt.Println("🔄 Running GORM AutoMigrate...")
	if err := database.AutoMigrate(database.DB, cfg.Database.Schema); err != nil {
		log.Fatalf("❌ Failed to run migration: %v", err)
	}

	fmt.Println("✅ Migration completed successfully!")
}

func showHelp() {
	fmt.Println(`
Database Migration Tool for the Bicycle Manufacturer Sales Analysis

Usage:
  go run cmd/migrate/main.go [options]

Options:
  -drop     Drop all tables before migration (WARNING: Data loss!)
  -help     Show this help message

Examples:
  # Create schema and tables
  go run cmd/migrate/main.go

  # Recreate everything from scratch
  go run cmd/migrate/main.go -drop`)
}
