package service

import (
	"context"
	"errors"
	"time"

	"github.com/binzaridot/binzari-backend/internal/app/repository"
	"github.com/binzaridot/binzari-backend/pkg/logger"
	"github.com/binzaridot/binzari-backend/pkg/util"
)

var (
	ErrAdminNotFound = errors.New("admin account not found")
	ErrWrongPassword = errors.New("wrong password")
)

type AdminService interface {
	// Login returns an access-only token; dashboard accounts have no refresh flow.
	Login(ctx context.Context, name, password string) (string, error)
}

type adminService struct {
	adminRepo    repository.AdminRepository
	accessSecret string
	tokenExpiry  time.Duration
}

func NewAdminService(adminRepo repository.AdminRepository, accessSecret string, tokenExpiry time.Duration) AdminService {
	return &adminService{
		adminRepo:    adminRepo,
		accessSecret: accessSecret,
		tokenExpiry:  tokenExpiry,
	}
}

func (s *adminService) Login(ctx context.Context, name, password string) (string, error) {
	admin, err := s.adminRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Dashboard login failed: no such account", map[string]interface{}{
				"name": name,
			})
			return "", ErrAdminNotFound
		}
		return "", err
	}

	if !util.VerifyPassword(admin.PasswordHash, password) {
		logger.Warn("Dashboard login failed: wrong password", map[string]interface{}{
			"name": name,
		})
		return "", ErrWrongPassword
	}

	token, err := util.GenerateAdminToken(admin.ID, admin.Name, s.accessSecret, s.tokenExpiry)
	if err != nil {
		logger.Error("Failed to generate dashboard token", err, map[string]interface{}{
			"name": name,
		})
		return "", err
	}

	logger.Info("Dashboard login succeeded", map[string]interface{}{
		"admin_id": admin.ID,
		"name":     admin.Name,
	})
	return token, nil
}
