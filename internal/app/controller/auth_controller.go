package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/binzaridot/binzari-backend/internal/app/service"
	apperrors "github.com/binzaridot/binzari-backend/internal/errors"
	"github.com/binzaridot/binzari-backend/internal/middleware"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

type LoginRequest struct {
	Name  string `json:"name" binding:"required"`
	Image string `json:"image"`
	Phone string `json:"phone" binding:"required"`
}

// Login handles phone-based login. An unknown phone registers a new account;
// a known one updates name and image in place.
// POST /api/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid login request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	result, err := ctrl.authService.Login(c.Request.Context(), req.Name, req.Image, req.Phone)
	if err != nil {
		log.Error("Login failed", err, map[string]interface{}{
			"phone": req.Phone,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken":  result.Tokens.AccessToken,
		"refreshToken": result.Tokens.RefreshToken,
		"isRegister":   result.IsRegister,
	})
}

// Refresh reissues an access token from the refresh token's claims.
// GET /api/refresh
func (ctrl *AuthController) Refresh(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, _ := middleware.GetUserID(c)
	phone, _ := middleware.GetUserPhone(c)

	accessToken, err := ctrl.authService.RefreshAccessToken(userID, phone)
	if err != nil {
		log.Error("Failed to reissue access token", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": accessToken,
	})
}

// Me returns the caller's profile with verified colleges resolved to
// partner objects.
// GET /api/me
func (ctrl *AuthController) Me(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, _ := middleware.GetUserID(c)

	profile, err := ctrl.authService.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "사용자를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to load profile", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    profile,
	})
}

// GetUserCollege returns the caller's verified college names as one
// comma-joined string.
// GET /api/getUserCollege
func (ctrl *AuthController) GetUserCollege(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, _ := middleware.GetUserID(c)

	names, err := ctrl.authService.UserCollegeNames(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "사용자를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to load user colleges", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"college_auth": names,
	})
}
