package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/binzaridot/binzari-backend/internal/app/service"
	apperrors "github.com/binzaridot/binzari-backend/internal/errors"
	"github.com/binzaridot/binzari-backend/internal/middleware"
)

type DashboardController struct {
	adminService     service.AdminService
	dashboardService service.DashboardService
}

func NewDashboardController(adminService service.AdminService, dashboardService service.DashboardService) *DashboardController {
	return &DashboardController{
		adminService:     adminService,
		dashboardService: dashboardService,
	}
}

type DashboardLoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a dashboard account. Dashboard sessions get a short
// access token and no refresh token.
// POST /dashboard/login
func (ctrl *DashboardController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req DashboardLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	accessToken, err := ctrl.adminService.Login(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) || errors.Is(err, service.ErrWrongPassword) {
			apperrors.Unauthorized(c, apperrors.AuthInvalidCredentials, "이름 또는 비밀번호가 올바르지 않습니다")
			return
		}
		log.Error("Dashboard login failed", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": accessToken,
	})
}

// Main dumps every table the dashboard renders from.
// GET /dashboard/main
func (ctrl *DashboardController) Main(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	dump, err := ctrl.dashboardService.Main(c.Request.Context())
	if err != nil {
		log.Error("Failed to load dashboard dump", err, nil)
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dump)
}
