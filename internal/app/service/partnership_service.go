package service

import (
	"context"
	"errors"

	"github.com/binzaridot/binzari-backend/internal/app/model"
	"github.com/binzaridot/binzari-backend/internal/app/repository"
	"github.com/binzaridot/binzari-backend/pkg/logger"
)

var ErrPartnershipNotFound = errors.New("partnership not found")

type PartnershipService interface {
	Create(ctx context.Context, storeID, partnerID, shortDescription, longDescription string) (*model.Partnership, error)
	Update(ctx context.Context, id, storeID, partnerID, shortDescription, longDescription string) (*model.Partnership, error)
	Delete(ctx context.Context, id string) error
}

type partnershipService struct {
	partnershipRepo repository.PartnershipRepository
}

func NewPartnershipService(partnershipRepo repository.PartnershipRepository) PartnershipService {
	return &partnershipService{partnershipRepo: partnershipRepo}
}

func (s *partnershipService) Create(ctx context.Context, storeID, partnerID, shortDescription, longDescription string) (*model.Partnership, error) {
	partnership, err := s.partnershipRepo.Create(ctx, storeID, partnerID, shortDescription, longDescription)
	if err != nil {
		logger.Error("Failed to create partnership", err, map[string]interface{}{
			"store_id":   storeID,
			"partner_id": partnerID,
		})
		return nil, err
	}

	logger.Info("Partnership created", map[string]interface{}{
		"partnership_id": partnership.ID,
		"store_id":       storeID,
		"partner_id":     partnerID,
	})
	return partnership, nil
}

func (s *partnershipService) Update(ctx context.Context, id, storeID, partnerID, shortDescription, longDescription string) (*model.Partnership, error) {
	partnership, err := s.partnershipRepo.Update(ctx, id, storeID, partnerID, shortDescription, longDescription)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPartnershipNotFound
		}
		logger.Error("Failed to update partnership", err, map[string]interface{}{
			"partnership_id": id,
		})
		return nil, err
	}
	return partnership, nil
}

func (s *partnershipService) Delete(ctx context.Context, id string) error {
	if err := s.partnershipRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPartnershipNotFound
		}
		logger.Error("Failed to delete partnership", err, map[string]interface{}{
			"partnership_id": id,
		})
		return err
	}
	return nil
}
