package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/binzaridot/binzari-backend/internal/app/model"
)

type PartnerRepository interface {
	Create(ctx context.Context, name, image string) (*model.Partner, error)
	Update(ctx context.Context, id, name, image string) (*model.Partner, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Partner, error)
	ListByIDs(ctx context.Context, ids []string) ([]model.Partner, error)
	NamesByIDs(ctx context.Context, ids []string) ([]string, error)
	FindAll(ctx context.Context) ([]model.Partner, error)
}

type partnerRepository struct {
	db *sql.DB
}

func NewPartnerRepository(db *sql.DB) PartnerRepository {
	return &partnerRepository{db: db}
}

func scanPartner(row *sql.Row) (*model.Partner, error) {
	var partner model.Partner
	err := row.Scan(&partner.ID, &partner.Name, &partner.Image, &partner.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

func (r *partnerRepository) Create(ctx context.Context, name, image string) (*model.Partner, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO partners (name, image)
		VALUES ($1, $2)
		RETURNING id, name, image, created_at`,
		name, image,
	)
	return scanPartner(row)
}

func (r *partnerRepository) Update(ctx context.Context, id, name, image string) (*model.Partner, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE partners SET name = $1, image = $2
		WHERE id = $3
		RETURNING id, name, image, created_at`,
		name, image, id,
	)
	return scanPartner(row)
}

func (r *partnerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *partnerRepository) FindByID(ctx context.Context, id string) (*model.Partner, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, image, created_at FROM partners WHERE id = $1`, id)
	return scanPartner(row)
}

func (r *partnerRepository) ListByIDs(ctx context.Context, ids []string) ([]model.Partner, error) {
	if len(ids) == 0 {
		return []model.Partner{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, image, created_at FROM partners
		WHERE id = ANY($1::uuid[])`,
		pq.Array(ids),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := []model.Partner{}
	for rows.Next() {
		var partner model.Partner
		if err := rows.Scan(&partner.ID, &partner.Name, &partner.Image, &partner.CreatedAt); err != nil {
			return nil, err
		}
		partners = append(partners, partner)
	}
	return partners, rows.Err()
}

func (r *partnerRepository) NamesByIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT name FROM partners WHERE id = ANY($1::uuid[])`,
		pq.Array(ids),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *partnerRepository) FindAll(ctx context.Context) ([]model.Partner, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, image, created_at FROM partners ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := []model.Partner{}
	for rows.Next() {
		var partner model.Partner
		if err := rows.Scan(&partner.ID, &partner.Name, &partner.Image, &partner.CreatedAt); err != nil {
			return nil, err
		}
		partners = append(partners, partner)
	}
	return partners, rows.Err()
}
