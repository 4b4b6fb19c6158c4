package main

import (
	"context"
	"flag"
	"time"

	"github.com/binzaridot/binzari-backend/config"
	"github.com/binzaridot/binzari-backend/internal/app/repository"
	"github.com/binzaridot/binzari-backend/internal/db"
	"github.com/binzaridot/binzari-backend/pkg/logger"
	"github.com/binzaridot/binzari-backend/pkg/util"
)

// Creates a dashboard account. There is no signup endpoint; accounts are
// provisioned from the command line.
//
//	go run ./cmd/seed -name admin -password <password>
func main() {
	name := flag.String("name", "", "dashboard account name")
	password := flag.String("password", "", "dashboard account password")
	flag.Parse()

	logger.Initialize(logger.Config{
		Level:       "info",
		Format:      "console",
		EnableColor: true,
	})

	if *name == "" || *password == "" {
		logger.Fatal("Both -name and -password are required", nil)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	database, err := db.Initialize(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	hash, err := util.HashPassword(*password)
	if err != nil {
		logger.Fatal("Failed to hash password", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminRepo := repository.NewAdminRepository(database)
	admin, err := adminRepo.Create(ctx, *name, hash)
	if err != nil {
		logger.Fatal("Failed to create dashboard account", err)
	}

	logger.Info("Dashboard account created", map[string]interface{}{
		"id":   admin.ID,
		"name": admin.Name,
	})
}
