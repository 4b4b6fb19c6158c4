package service

import (
	"context"
	"errors"

	"github.com/binzaridot/binzari-backend/internal/app/model"
	"github.com/binzaridot/binzari-backend/internal/app/repository"
	"github.com/binzaridot/binzari-backend/pkg/logger"
)

var ErrStoreNotFound = errors.New("store not found")

type StoreService interface {
	Create(ctx context.Context, name, category string, lat, lon float64, url string) (*model.Store, error)
	Update(ctx context.Context, id, name, category string, lat, lon float64, url string) (*model.Store, error)
	Delete(ctx context.Context, id string) error
}

type storeService struct {
	storeRepo repository.StoreRepository
}

func NewStoreService(storeRepo repository.StoreRepository) StoreService {
	return &storeService{storeRepo: storeRepo}
}

func (s *storeService) Create(ctx context.Context, name, category string, lat, lon float64, url string) (*model.Store, error) {
	store, err := s.storeRepo.Create(ctx, name, category, lat, lon, url)
	if err != nil {
		logger.Error("Failed to create store", err, map[string]interface{}{
			"name": name,
		})
		return nil, err
	}

	logger.Info("Store created", map[string]interface{}{
		"store_id": store.ID,
		"name":     store.Name,
	})
	return store, nil
}

func (s *storeService) Update(ctx context.Context, id, name, category string, lat, lon float64, url string) (*model.Store, error) {
	store, err := s.storeRepo.Update(ctx, id, name, category, lat, lon, url)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		logger.Error("Failed to update store", err, map[string]interface{}{
			"store_id": id,
		})
		return nil, err
	}
	return store, nil
}

func (s *storeService) Delete(ctx context.Context, id string) error {
	if err := s.storeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrStoreNotFound
		}
		logger.Error("Failed to delete store", err, map[string]interface{}{
			"store_id": id,
		})
		return err
	}
	return nil
}
