package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/binzaridot/binzari-backend/internal/app/model"
)

// ErrNotFound is returned when a lookup or single-row mutation matches nothing.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	// Upsert inserts a user keyed by phone, updating name/image on conflict.
	// The second return value reports whether the row was newly created.
	Upsert(ctx context.Context, name, image, phone string) (string, bool, error)
	SetRefreshToken(ctx context.Context, id, refreshToken string) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	CollegeAuthIDs(ctx context.Context, id string) ([]string, error)
	SetCollegeAuth(ctx context.Context, id string, collegeIDs []string, verified bool) error
	FindAll(ctx context.Context) ([]model.User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Upsert(ctx context.Context, name, image, phone string) (string, bool, error) {
	var id string
	var isNew bool
	// xmax = 0 distinguishes a fresh insert from a conflict-update.
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (name, image, phone)
		VALUES ($1, $2, $3)
		ON CONFLICT (phone) DO UPDATE SET
			name = EXCLUDED.name,
			image = EXCLUDED.image
		RETURNING id, (xmax = 0) AS is_new`,
		name, image, phone,
	).Scan(&id, &isNew)
	if err != nil {
		return "", false, err
	}
	return id, isNew, nil
}

func (r *userRepository) SetRefreshToken(ctx context.Context, id, refreshToken string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET refresh_token = $1 WHERE id = $2`,
		refreshToken, id,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, image, phone, is_verified, college_auth, created_at
		FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Name, &user.Image, &user.Phone, &user.IsVerified,
		&user.CollegeAuth, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CollegeAuthIDs(ctx context.Context, id string) ([]string, error) {
	var ids pq.StringArray
	err := r.db.QueryRowContext(ctx,
		`SELECT college_auth FROM users WHERE id = $1`,
		id,
	).Scan(&ids)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *userRepository) SetCollegeAuth(ctx context.Context, id string, collegeIDs []string, verified bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET college_auth = $1, is_verified = $2 WHERE id = $3`,
		pq.Array(collegeIDs), verified, id,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *userRepository) FindAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, image, phone, is_verified, college_auth, created_at
		FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Image, &user.Phone,
			&user.IsVerified, &user.CollegeAuth, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// requireAffected maps a zero-row mutation to ErrNotFound.
func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
