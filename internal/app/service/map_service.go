package service

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"

	"github.com/binzaridot/binzari-backend/internal/app/model"
	"github.com/binzaridot/binzari-backend/internal/app/repository"
	"github.com/binzaridot/binzari-backend/pkg/logger"
)

type MapService interface {
	// StoresForUser resolves the caller's verified partner ids and assembles
	// the nested store list for them.
	StoresForUser(ctx context.Context, userID string) ([]model.MapStore, error)
	// StoresForPartners assembles the nested store list for an explicit
	// partner-id set (the public map variant).
	StoresForPartners(ctx context.Context, partnerIDs []string) ([]model.MapStore, error)
	// RenderPage renders the embeddable map HTML document for a WebView.
	RenderPage(stores []model.MapStore) (string, error)
	LogClick(ctx context.Context, userID, storeID string) error
}

type mapService struct {
	userRepo        repository.UserRepository
	partnershipRepo repository.PartnershipRepository
	userLogRepo     repository.UserLogRepository
}

func NewMapService(
	userRepo repository.UserRepository,
	partnershipRepo repository.PartnershipRepository,
	userLogRepo repository.UserLogRepository,
) MapService {
	return &mapService{
		userRepo:        userRepo,
		partnershipRepo: partnershipRepo,
		userLogRepo:     userLogRepo,
	}
}

func (s *mapService) StoresForUser(ctx context.Context, userID string) ([]model.MapStore, error) {
	partnerIDs, err := s.userRepo.CollegeAuthIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.StoresForPartners(ctx, partnerIDs)
}

func (s *mapService) StoresForPartners(ctx context.Context, partnerIDs []string) ([]model.MapStore, error) {
	rows, err := s.partnershipRepo.ListRowsByPartnerIDs(ctx, partnerIDs)
	if err != nil {
		logger.Error("Failed to query map rows", err, map[string]interface{}{
			"partner_count": len(partnerIDs),
		})
		return nil, err
	}
	return groupRowsByStore(rows), nil
}

// groupRowsByStore folds flat join rows into one entry per store. Single pass;
// store order follows first appearance in the row set.
func groupRowsByStore(rows []model.PartnershipRow) []model.MapStore {
	stores := []model.MapStore{}
	index := make(map[string]int, len(rows))

	for _, row := range rows {
		i, seen := index[row.StoreID]
		if !seen {
			i = len(stores)
			index[row.StoreID] = i
			stores = append(stores, model.MapStore{
				ID:           row.StoreID,
				Name:         row.StoreName,
				Lat:          row.Lat,
				Lon:          row.Lon,
				Category:     row.Category,
				URL:          row.URL,
				Partnerships: []model.MapPartnership{},
			})
		}

		stores[i].Partnerships = append(stores[i].Partnerships, model.MapPartnership{
			ID:               row.PartnershipID,
			ShortDescription: row.ShortDescription,
			LongDescription:  row.LongDescription,
			Partner: model.MapPartner{
				ID:    row.PartnerID,
				Name:  row.PartnerName,
				Image: row.PartnerImage,
			},
		})
	}

	return stores
}

func (s *mapService) RenderPage(stores []model.MapStore) (string, error) {
	storesJSON, err := json.Marshal(stores)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = mapPageTemplate.Execute(&buf, mapPageData{
		StoresJSON:     template.JS(storesJSON),
		AppKey:         kakaoAppKey,
		CenterLat:      defaultCenterLat,
		CenterLon:      defaultCenterLon,
		Level:          defaultLevel,
		MarkerImageURL: markerImageURL,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *mapService) LogClick(ctx context.Context, userID, storeID string) error {
	return s.userLogRepo.Create(ctx, userID, storeID)
}
