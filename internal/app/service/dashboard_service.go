package service

import (
	"context"

	"github.com/binzaridot/binzari-backend/internal/app/model"
	"github.com/binzaridot/binzari-backend/internal/app/repository"
)

// MainDump is the full-table snapshot the dashboard main screen renders from.
type MainDump struct {
	Users        []model.User        `json:"users"`
	CollegeAuths []model.CollegeAuth `json:"college_auths"`
	Stores       []model.Store       `json:"stores"`
	Partners     []model.Partner     `json:"partners"`
	Partnerships []model.Partnership `json:"partnerships"`
}

type DashboardService interface {
	Main(ctx context.Context) (*MainDump, error)
}

type dashboardService struct {
	userRepo        repository.UserRepository
	collegeAuthRepo repository.CollegeAuthRepository
	storeRepo       repository.StoreRepository
	partnerRepo     repository.PartnerRepository
	partnershipRepo repository.PartnershipRepository
}

func NewDashboardService(
	userRepo repository.UserRepository,
	collegeAuthRepo repository.CollegeAuthRepository,
	storeRepo repository.StoreRepository,
	partnerRepo repository.PartnerRepository,
	partnershipRepo repository.PartnershipRepository,
) DashboardService {
	return &dashboardService{
		userRepo:        userRepo,
		collegeAuthRepo: collegeAuthRepo,
		storeRepo:       storeRepo,
		partnerRepo:     partnerRepo,
		partnershipRepo: partnershipRepo,
	}
}

func (s *dashboardService) Main(ctx context.Context) (*MainDump, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	collegeAuths, err := s.collegeAuthRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	stores, err := s.storeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	partners, err := s.partnerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	partnerships, err := s.partnershipRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &MainDump{
		Users:        users,
		CollegeAuths: collegeAuths,
		Stores:       stores,
		Partners:     partners,
		Partnerships: partnerships,
	}, nil
}
