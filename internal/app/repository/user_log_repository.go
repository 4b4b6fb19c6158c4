package repository

import (
	"context"
	"database/sql"
)

type UserLogRepository interface {
	Create(ctx context.Context, userID, storeID string) error
}

type userLogRepository struct {
	db *sql.DB
}

func NewUserLogRepository(db *sql.DB) UserLogRepository {
	return &userLogRepository{db: db}
}

func (r *userLogRepository) Create(ctx context.Context, userID, storeID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_logs (user_id, store_id) VALUES ($1, $2)`,
		userID, storeID,
	)
	return err
}
