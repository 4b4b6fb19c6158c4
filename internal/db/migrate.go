package db

import (
	"database/sql"

	"github.com/binzaridot/binzari-backend/pkg/logger"
)

// Schema statements are idempotent so Migrate can run on every start.
var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

	`CREATE TABLE IF NOT EXISTS users (
		id            uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name          text NOT NULL,
		image         text NOT NULL,
		phone         text NOT NULL UNIQUE,
		is_verified   boolean NOT NULL DEFAULT false,
		college_auth  uuid[] NOT NULL DEFAULT '{}',
		refresh_token text,
		created_at    timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS college_auths (
		id           uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id      uuid NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		info21_image text NOT NULL,
		created_at   timestamptz NOT NULL DEFAULT now(),
		updated_at   timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS stores (
		id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name       text NOT NULL,
		category   text NOT NULL,
		lat        double precision,
		lon        double precision,
		url        text NOT NULL,
		image      text,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS partners (
		id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name       text NOT NULL,
		image      text NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS partnerships (
		id                uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		store_id          uuid NOT NULL REFERENCES stores(id) ON DELETE CASCADE,
		partner_id        uuid NOT NULL REFERENCES partners(id) ON DELETE CASCADE,
		short_description text NOT NULL,
		long_description  text NOT NULL,
		created_at        timestamptz NOT NULL DEFAULT now(),
		updated_at        timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS dashboard_users (
		id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name       text NOT NULL UNIQUE,
		password   text NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS user_logs (
		id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id    uuid NOT NULL,
		store_id   uuid NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(database *sql.DB) error {
	logger.Info("Running database migrations...")

	for _, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			logger.Error("Failed to run migration statement", err)
			return err
		}
	}

	logger.Info("Database migrations completed")
	return nil
}
