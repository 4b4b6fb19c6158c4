package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/binzaridot/binzari-backend/config"
	"github.com/binzaridot/binzari-backend/pkg/logger"
)

// Initialize opens the database connection pool. The returned handle is passed
// explicitly to every repository; there is no package-level instance.
func Initialize(cfg *config.DatabaseConfig) (*sql.DB, error) {
	logger.Info("Connecting to database", map[string]interface{}{
		"host":     cfg.Host,
		"port":     cfg.Port,
		"database": cfg.DBName,
		"user":     cfg.User,
	})

	database, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	database.SetMaxIdleConns(10)
	database.SetMaxOpenConns(100)
	database.SetConnMaxLifetime(5 * time.Minute)

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established successfully", map[string]interface{}{
		"max_idle_conns": 10,
		"max_open_conns": 100,
	})
	return database, nil
}
