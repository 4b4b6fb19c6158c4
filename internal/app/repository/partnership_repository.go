package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/binzaridot/binzari-backend/internal/app/model"
)

type PartnershipRepository interface {
	Create(ctx context.Context, storeID, partnerID, shortDescription, longDescription string) (*model.Partnership, error)
	Update(ctx context.Context, id, storeID, partnerID, shortDescription, longDescription string) (*model.Partnership, error)
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]model.Partnership, error)
	// ListRowsByPartnerIDs runs the joined map query: every partnership held by
	// one of the given partners, with its store and partner attributes, limited
	// to stores that have coordinates.
	ListRowsByPartnerIDs(ctx context.Context, partnerIDs []string) ([]model.PartnershipRow, error)
}

type partnershipRepository struct {
	db *sql.DB
}

func NewPartnershipRepository(db *sql.DB) PartnershipRepository {
	return &partnershipRepository{db: db}
}

const partnershipColumns = `id, store_id, partner_id, short_description, long_description, created_at, updated_at`

func scanPartnership(row *sql.Row) (*model.Partnership, error) {
	var ps model.Partnership
	err := row.Scan(&ps.ID, &ps.StoreID, &ps.PartnerID, &ps.ShortDescription,
		&ps.LongDescription, &ps.CreatedAt, &ps.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ps, nil
}

func (r *partnershipRepository) Create(ctx context.Context, storeID, partnerID, shortDescription, longDescription string) (*model.Partnership, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO partnerships (store_id, partner_id, short_description, long_description)
		VALUES ($1, $2, $3, $4)
		RETURNING `+partnershipColumns,
		storeID, partnerID, shortDescription, longDescription,
	)
	return scanPartnership(row)
}

func (r *partnershipRepository) Update(ctx context.Context, id, storeID, partnerID, shortDescription, longDescription string) (*model.Partnership, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE partnerships
		SET store_id = $1, partner_id = $2, short_description = $3,
		    long_description = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING `+partnershipColumns,
		storeID, partnerID, shortDescription, longDescription, id,
	)
	return scanPartnership(row)
}

func (r *partnershipRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM partnerships WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *partnershipRepository) FindAll(ctx context.Context) ([]model.Partnership, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+partnershipColumns+` FROM partnerships ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partnerships := []model.Partnership{}
	for rows.Next() {
		var ps model.Partnership
		if err := rows.Scan(&ps.ID, &ps.StoreID, &ps.PartnerID, &ps.ShortDescription,
			&ps.LongDescription, &ps.CreatedAt, &ps.UpdatedAt); err != nil {
			return nil, err
		}
		partnerships = append(partnerships, ps)
	}
	return partnerships, rows.Err()
}

func (r *partnershipRepository) ListRowsByPartnerIDs(ctx context.Context, partnerIDs []string) ([]model.PartnershipRow, error) {
	if len(partnerIDs) == 0 {
		return []model.PartnershipRow{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			s.id AS store_id,
			s.name AS store_name,
			s.lat,
			s.lon,
			s.category,
			s.url,
			p.id AS partner_id,
			p.name AS partner_name,
			p.image AS partner_image,
			ps.id AS partnership_id,
			ps.short_description,
			ps.long_description
		FROM partnerships ps
		JOIN stores s ON ps.store_id = s.id
		JOIN partners p ON ps.partner_id = p.id
		WHERE ps.partner_id = ANY($1::uuid[])
		  AND s.lat IS NOT NULL
		  AND s.lon IS NOT NULL
		ORDER BY ps.created_at`,
		pq.Array(partnerIDs),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.PartnershipRow{}
	for rows.Next() {
		var row model.PartnershipRow
		if err := rows.Scan(&row.StoreID, &row.StoreName, &row.Lat, &row.Lon,
			&row.Category, &row.URL, &row.PartnerID, &row.PartnerName,
			&row.PartnerImage, &row.PartnershipID, &row.ShortDescription,
			&row.LongDescription); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
