package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/binzaridot/binzari-backend/internal/app/model"
)

type CollegeAuthRepository interface {
	Create(ctx context.Context, userID, info21Image string) error
	FindByUserID(ctx context.Context, userID string) (*model.CollegeAuth, error)
	DeleteByUserID(ctx context.Context, userID string) error
	ExistsForUser(ctx context.Context, userID string) (bool, error)
	FindAll(ctx context.Context) ([]model.CollegeAuth, error)
}

type collegeAuthRepository struct {
	db *sql.DB
}

func NewCollegeAuthRepository(db *sql.DB) CollegeAuthRepository {
	return &collegeAuthRepository{db: db}
}

func (r *collegeAuthRepository) Create(ctx context.Context, userID, info21Image string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO college_auths (user_id, info21_image) VALUES ($1, $2)`,
		userID, info21Image,
	)
	return err
}

func (r *collegeAuthRepository) FindByUserID(ctx context.Context, userID string) (*model.CollegeAuth, error) {
	var auth model.CollegeAuth
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, info21_image, created_at, updated_at
		FROM college_auths WHERE user_id = $1`,
		userID,
	).Scan(&auth.ID, &auth.UserID, &auth.Info21Image, &auth.CreatedAt, &auth.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

func (r *collegeAuthRepository) DeleteByUserID(ctx context.Context, userID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM college_auths WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *collegeAuthRepository) ExistsForUser(ctx context.Context, userID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM college_auths WHERE user_id = $1 LIMIT 1`,
		userID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *collegeAuthRepository) FindAll(ctx context.Context) ([]model.CollegeAuth, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, info21_image, created_at, updated_at
		FROM college_auths ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	auths := []model.CollegeAuth{}
	for rows.Next() {
		var auth model.CollegeAuth
		if err := rows.Scan(&auth.ID, &auth.UserID, &auth.Info21Image,
			&auth.CreatedAt, &auth.UpdatedAt); err != nil {
			return nil, err
		}
		auths = append(auths, auth)
	}
	return auths, rows.Err()
}
