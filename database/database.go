package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"treadmill/models"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// LoadConfig reads the server configuration from environment variables,
// falling back to the documented defaults.
func LoadConfig() models.Config {
	config := models.Config{
		Port:         getenv("PORT", "3000"),
		AuthUsername: getenv("AUTH_USERNAME", "admin"),
		AuthPassword: getenv("AUTH_PASSWORD", "password123"),
	}

	// FLY は Fly.io デプロイ用。マウントされたボリュームにDBを置きます。
	if os.Getenv("FLY") != "" {
		config.DBPath = "/data/treadmill.db"
	} else {
		config.DBPath = getenv("DB_PATH", "./data/treadmill.db")
	}
	return config
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitSQLite opens the sqlite database and migrates the sessions table.
func InitSQLite(config models.Config, logger *zap.Logger) (*gorm.DB, error) {
	if dir := filepath.Dir(config.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	const maxRetries = 3
	const retryInterval = 5 * time.Second
	var err error
	for i := 0; i <= maxRetries; i++ {
		var gormDB *gorm.DB
		gormDB, err = gorm.Open(sqlite.Open(config.DBPath), &gorm.Config{})
		if err == nil {
			if err := gormDB.AutoMigrate(&models.Session{}); err != nil {
				return nil, fmt.Errorf("failed to migrate sessions table: %w", err)
			}
			logger.Info("connected to sqlite database", zap.String("path", config.DBPath))
			return gormDB, nil
		}
		logger.Error("database open retry", zap.Int("retry", i), zap.Error(err))
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("failed to open database: %v", err)
}

// OpenExisting opens an already-initialized database for the query tool.
// No migration, no retries; a missing file is a user error, reported
// immediately.
func OpenExisting(path string) (*gorm.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("database not found at %s: %w", path, err)
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
