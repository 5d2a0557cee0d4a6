package db

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the shared handle used by the handlers and the seed command
var DB *gorm.DB

// sqlitePragmas: WAL lets the dashboard and list reads proceed during
// writes; the busy timeout makes parallel API writes queue instead of
// failing with SQLITE_BUSY.
const sqlitePragmas = "?_journal_mode=WAL&_busy_timeout=5000"

// Initialize opens the sqlite database at dbPath and stores the handle in DB
func Initialize(dbPath string, environment string) error {
	var err error

	DB, err = gorm.Open(sqlite.Open(dbPath+sqlitePragmas), &gorm.Config{
		Logger: logger.Default.LogMode(logLevelFor(environment)),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Printf("[INFO] Database ready at %s (WAL, 5s busy timeout)", dbPath)
	return nil
}

// logLevelFor keeps SQL logging quiet outside development
func logLevelFor(environment string) logger.LogLevel {
	if environment == "production" {
		return logger.Warn
	}
	return logger.Info
}

// AutoMigrate runs schema migrations for the provided models
func AutoMigrate(models ...interface{}) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	if err := DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("[INFO] Database migrations completed")
	return nil
}

// Close closes the underlying database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
