package database

import (
	"copyadmin/config"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// Store is the global key-value store every collection is read and written
// through. Set by ConnectDb; a nil-backend store degrades to no-ops.
var Store *KVStore

// ConnectDb opens the local SQLite store and prepares the KV table.
// All application state lives in one process-local file; mutations follow
// read-whole-collection / write-whole-collection semantics with a single
// writer, so no locking beyond SQLite's own is needed.
func ConnectDb() {
	db, err := gorm.Open(sqlite.Open(config.AppConfig.DBName), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open store %s: %v", config.AppConfig.DBName, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(1) // single writer
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	runMigrations(db)

	Database = DbInstance{Db: db}
	Store = NewKVStore(NewGormBackend(db))
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
