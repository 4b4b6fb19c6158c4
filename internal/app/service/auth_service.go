package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/binzaridot/binzari-backend/internal/app/model"
	"github.com/binzaridot/binzari-backend/internal/app/repository"
	"github.com/binzaridot/binzari-backend/pkg/logger"
	"github.com/binzaridot/binzari-backend/pkg/util"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// LoginResult is everything the login endpoint reports back to the app.
type LoginResult struct {
	Tokens     *util.TokenPair
	IsRegister bool
}

// Profile is the /api/me response payload.
type Profile struct {
	Name             string          `json:"name"`
	IsVerified       bool            `json:"is_verified"`
	Phone            string          `json:"phone"`
	Image            string          `json:"image"`
	CollegeAuth      []model.Partner `json:"college_auth"`
	IsAuthenticating bool            `json:"is_authenticating"`
}

type AuthService interface {
	Login(ctx context.Context, name, image, phone string) (*LoginResult, error)
	RefreshAccessToken(id, phone string) (string, error)
	Me(ctx context.Context, userID string) (*Profile, error)
	UserCollegeNames(ctx context.Context, userID string) (string, error)
}

type authService struct {
	userRepo        repository.UserRepository
	partnerRepo     repository.PartnerRepository
	collegeAuthRepo repository.CollegeAuthRepository
	accessSecret    string
	refreshSecret   string
	accessExpiry    time.Duration
	refreshExpiry   time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	partnerRepo repository.PartnerRepository,
	collegeAuthRepo repository.CollegeAuthRepository,
	accessSecret, refreshSecret string,
	accessExpiry, refreshExpiry time.Duration,
) AuthService {
	return &authService{
		userRepo:        userRepo,
		partnerRepo:     partnerRepo,
		collegeAuthRepo: collegeAuthRepo,
		accessSecret:    accessSecret,
		refreshSecret:   refreshSecret,
		accessExpiry:    accessExpiry,
		refreshExpiry:   refreshExpiry,
	}
}

// Login upserts the user by phone and issues a fresh token pair. The refresh
// token is persisted on the row, so a new login invalidates the previous one.
func (s *authService) Login(ctx context.Context, name, image, phone string) (*LoginResult, error) {
	id, isNew, err := s.userRepo.Upsert(ctx, name, image, phone)
	if err != nil {
		logger.Error("Failed to upsert user on login", err, map[string]interface{}{
			"phone": phone,
		})
		return nil, err
	}

	tokens, err := util.GenerateUserTokenPair(id, phone,
		s.accessSecret, s.refreshSecret, s.accessExpiry, s.refreshExpiry)
	if err != nil {
		logger.Error("Failed to generate tokens", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, err
	}

	if err := s.userRepo.SetRefreshToken(ctx, id, tokens.RefreshToken); err != nil {
		logger.Error("Failed to persist refresh token", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, err
	}

	logger.Info("User logged in", map[string]interface{}{
		"user_id":     id,
		"is_register": isNew,
	})

	return &LoginResult{Tokens: tokens, IsRegister: isNew}, nil
}

// RefreshAccessToken issues a new access token from refresh-token claims only.
// The refresh token itself is not rotated.
func (s *authService) RefreshAccessToken(id, phone string) (string, error) {
	return util.GenerateUserToken(id, phone, s.accessSecret, s.accessExpiry)
}

func (s *authService) Me(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	colleges, err := s.partnerRepo.ListByIDs(ctx, user.CollegeAuth)
	if err != nil {
		return nil, err
	}

	isAuthenticating, err := s.collegeAuthRepo.ExistsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		Name:             user.Name,
		IsVerified:       user.IsVerified,
		Phone:            user.Phone,
		Image:            user.Image,
		CollegeAuth:      colleges,
		IsAuthenticating: isAuthenticating,
	}, nil
}

// UserCollegeNames returns the user's verified college names comma-joined,
// e.g. "공과대학, 자연과학대학".
func (s *authService) UserCollegeNames(ctx context.Context, userID string) (string, error) {
	ids, err := s.userRepo.CollegeAuthIDs(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	names, err := s.partnerRepo.NamesByIDs(ctx, ids)
	if err != nil {
		return "", err
	}
	return strings.Join(names, ", "), nil
}
