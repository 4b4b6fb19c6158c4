package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/binzaridot/binzari-backend/internal/app/repository"
	"github.com/binzaridot/binzari-backend/pkg/logger"
)

var (
	ErrImageRequired       = errors.New("image file is required")
	ErrCollegesRequired    = errors.New("college list is required")
	ErrCollegeAuthNotFound = errors.New("college auth request not found")
)

// DecisionAccepted is the status value that approves a pending request;
// every other value rejects it.
const DecisionAccepted = "accepted"

type CollegeAuthService interface {
	// Request opens a pending verification request for the user.
	Request(ctx context.Context, userID, imageURL string) error
	// Decide resolves the user's pending request. Acceptance overwrites the
	// user's college list and marks the user verified; rejection changes
	// nothing on the user. Either way the pending row and its uploaded image
	// are removed.
	Decide(ctx context.Context, userID, status string, collegeIDs []string) error
}

type collegeAuthService struct {
	collegeAuthRepo repository.CollegeAuthRepository
	userRepo        repository.UserRepository
	usersUploadDir  string
}

func NewCollegeAuthService(
	collegeAuthRepo repository.CollegeAuthRepository,
	userRepo repository.UserRepository,
	usersUploadDir string,
) CollegeAuthService {
	return &collegeAuthService{
		collegeAuthRepo: collegeAuthRepo,
		userRepo:        userRepo,
		usersUploadDir:  usersUploadDir,
	}
}

func (s *collegeAuthService) Request(ctx context.Context, userID, imageURL string) error {
	if imageURL == "" {
		return ErrImageRequired
	}

	if err := s.collegeAuthRepo.Create(ctx, userID, imageURL); err != nil {
		logger.Error("Failed to create college auth request", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}

	logger.Info("College auth requested", map[string]interface{}{
		"user_id": userID,
	})
	return nil
}

func (s *collegeAuthService) Decide(ctx context.Context, userID, status string, collegeIDs []string) error {
	if status == DecisionAccepted && len(collegeIDs) == 0 {
		return ErrCollegesRequired
	}

	// The image path must come from the stored row; it is gone once the row
	// is deleted.
	pending, err := s.collegeAuthRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCollegeAuthNotFound
		}
		return err
	}

	if status == DecisionAccepted {
		if err := s.userRepo.SetCollegeAuth(ctx, userID, collegeIDs, true); err != nil {
			logger.Error("Failed to apply college auth acceptance", err, map[string]interface{}{
				"user_id": userID,
			})
			return err
		}
	}

	if err := s.collegeAuthRepo.DeleteByUserID(ctx, userID); err != nil {
		logger.Error("Failed to delete college auth request", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}

	s.removeUploadedImage(pending.Info21Image)

	logger.Info("College auth decided", map[string]interface{}{
		"user_id":  userID,
		"status":   status,
		"accepted": status == DecisionAccepted,
	})
	return nil
}

// removeUploadedImage deletes the uploaded file belonging to a resolved
// request. Row deletion and file deletion are not atomic; a missing file is
// tolerated so a retried decision stays clean.
func (s *collegeAuthService) removeUploadedImage(imageURL string) {
	if imageURL == "" {
		return
	}

	path := filepath.Join(s.usersUploadDir, filepath.Base(imageURL))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to remove uploaded image", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}
}
