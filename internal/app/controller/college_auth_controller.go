package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/binzaridot/binzari-backend/internal/app/service"
	apperrors "github.com/binzaridot/binzari-backend/internal/errors"
	"github.com/binzaridot/binzari-backend/internal/middleware"
)

type CollegeAuthController struct {
	collegeAuthService service.CollegeAuthService
}

func NewCollegeAuthController(collegeAuthService service.CollegeAuthService) *CollegeAuthController {
	return &CollegeAuthController{
		collegeAuthService: collegeAuthService,
	}
}

// Request files a college verification request with the image the upload
// middleware already saved. A request without a file is a 400.
// POST /api/college-auth/request
func (ctrl *CollegeAuthController) Request(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, _ := middleware.GetUserID(c)

	imageURL, ok := middleware.GetUploadedImageURL(c)
	if !ok {
		apperrors.BadRequest(c, apperrors.UploadFileRequired, "인증 이미지가 필요합니다")
		return
	}

	if err := ctrl.collegeAuthService.Request(c.Request.Context(), userID, imageURL); err != nil {
		log.Error("Failed to file college auth request", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "인증 요청이 접수되었습니다",
	})
}

type DecideRequest struct {
	Status   string   `json:"status" binding:"required"`
	Colleges []string `json:"colleges"`
}

// Decide approves or rejects a pending request. Approval overwrites the
// user's verified colleges; either way the request row and its uploaded
// image are removed.
// PATCH /dashboard/college_auths/:user_id
func (ctrl *CollegeAuthController) Decide(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	targetUserID := c.Param("user_id")

	var req DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	err := ctrl.collegeAuthService.Decide(c.Request.Context(), targetUserID, req.Status, req.Colleges)
	if err != nil {
		if errors.Is(err, service.ErrCollegesRequired) {
			apperrors.BadRequest(c, apperrors.ValidationRequired, "승인할 단과대 목록이 필요합니다")
			return
		}
		if errors.Is(err, service.ErrCollegeAuthNotFound) {
			apperrors.NotFound(c, apperrors.CollegeAuthNotFound, "대기 중인 인증 요청이 없습니다")
			return
		}
		log.Error("Failed to decide college auth request", err, map[string]interface{}{
			"target_user_id": targetUserID,
			"status":         req.Status,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
