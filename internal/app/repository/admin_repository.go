package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/binzaridot/binzari-backend/internal/app/model"
)

type AdminRepository interface {
	FindByName(ctx context.Context, name string) (*model.Admin, error)
	Create(ctx context.Context, name, passwordHash string) (*model.Admin, error)
}

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindByName(ctx context.Context, name string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, password, created_at
		FROM dashboard_users WHERE name = $1`,
		name,
	).Scan(&admin.ID, &admin.Name, &admin.PasswordHash, &admin.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) Create(ctx context.Context, name, passwordHash string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO dashboard_users (name, password)
		VALUES ($1, $2)
		RETURNING id, name, password, created_at`,
		name, passwordHash,
	).Scan(&admin.ID, &admin.Name, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
