package service

import (
	"context"
	"errors"

	"github.com/binzaridot/binzari-backend/internal/app/model"
	"github.com/binzaridot/binzari-backend/internal/app/repository"
	"github.com/binzaridot/binzari-backend/pkg/logger"
)

var ErrPartnerNotFound = errors.New("partner not found")

type PartnerService interface {
	Create(ctx context.Context, name, image string) (*model.Partner, error)
	// Update keeps the stored image when newImage is empty (no file uploaded).
	Update(ctx context.Context, id, name, newImage string) (*model.Partner, error)
	Delete(ctx context.Context, id string) error
}

type partnerService struct {
	partnerRepo repository.PartnerRepository
}

func NewPartnerService(partnerRepo repository.PartnerRepository) PartnerService {
	return &partnerService{partnerRepo: partnerRepo}
}

func (s *partnerService) Create(ctx context.Context, name, image string) (*model.Partner, error) {
	partner, err := s.partnerRepo.Create(ctx, name, image)
	if err != nil {
		logger.Error("Failed to create partner", err, map[string]interface{}{
			"name": name,
		})
		return nil, err
	}

	logger.Info("Partner created", map[string]interface{}{
		"partner_id": partner.ID,
		"name":       partner.Name,
	})
	return partner, nil
}

func (s *partnerService) Update(ctx context.Context, id, name, newImage string) (*model.Partner, error) {
	existing, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}

	image := newImage
	if image == "" {
		image = existing.Image
	}

	partner, err := s.partnerRepo.Update(ctx, id, name, image)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPartnerNotFound
		}
		logger.Error("Failed to update partner", err, map[string]interface{}{
			"partner_id": id,
		})
		return nil, err
	}
	return partner, nil
}

func (s *partnerService) Delete(ctx context.Context, id string) error {
	if err := s.partnerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPartnerNotFound
		}
		logger.Error("Failed to delete partner", err, map[string]interface{}{
			"partner_id": id,
		})
		return err
	}
	return nil
}
