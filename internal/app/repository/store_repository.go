package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/binzaridot/binzari-backend/internal/app/model"
)

type StoreRepository interface {
	Create(ctx context.Context, name, category string, lat, lon float64, url string) (*model.Store, error)
	Update(ctx context.Context, id, name, category string, lat, lon float64, url string) (*model.Store, error)
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]model.Store, error)
}

type storeRepository struct {
	db *sql.DB
}

func NewStoreRepository(db *sql.DB) StoreRepository {
	return &storeRepository{db: db}
}

const storeColumns = `id, name, category, lat, lon, url, image, created_at`

func scanStore(row *sql.Row) (*model.Store, error) {
	var store model.Store
	err := row.Scan(&store.ID, &store.Name, &store.Category, &store.Lat,
		&store.Lon, &store.URL, &store.Image, &store.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) Create(ctx context.Context, name, category string, lat, lon float64, url string) (*model.Store, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO stores (name, category, lat, lon, url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+storeColumns,
		name, category, lat, lon, url,
	)
	return scanStore(row)
}

func (r *storeRepository) Update(ctx context.Context, id, name, category string, lat, lon float64, url string) (*model.Store, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE stores
		SET name = $1, category = $2, lat = $3, lon = $4, url = $5
		WHERE id = $6
		RETURNING `+storeColumns,
		name, category, lat, lon, url, id,
	)
	return scanStore(row)
}

func (r *storeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *storeRepository) FindAll(ctx context.Context) ([]model.Store, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+storeColumns+` FROM stores ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := []model.Store{}
	for rows.Next() {
		var store model.Store
		if err := rows.Scan(&store.ID, &store.Name, &store.Category, &store.Lat,
			&store.Lon, &store.URL, &store.Image, &store.CreatedAt); err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}
	return stores, rows.Err()
}
