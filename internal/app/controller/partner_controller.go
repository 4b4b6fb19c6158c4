package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/binzaridot/binzari-backend/internal/app/service"
	apperrors "github.com/binzaridot/binzari-backend/internal/errors"
	"github.com/binzaridot/binzari-backend/internal/middleware"
)

type PartnerController struct {
	partnerService service.PartnerService
}

func NewPartnerController(partnerService service.PartnerService) *PartnerController {
	return &PartnerController{
		partnerService: partnerService,
	}
}

// Create registers a college. The request is multipart: a "name" field plus
// an "image" file the upload middleware has already saved.
// POST /dashboard/partners
func (ctrl *PartnerController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	name := c.PostForm("name")
	if name == "" {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "이름이 필요합니다")
		return
	}

	imageURL, ok := middleware.GetUploadedImageURL(c)
	if !ok {
		apperrors.BadRequest(c, apperrors.UploadFileRequired, "이미지 파일이 필요합니다")
		return
	}

	partner, err := ctrl.partnerService.Create(c.Request.Context(), name, imageURL)
	if err != nil {
		log.Error("Failed to create partner", err, map[string]interface{}{
			"name": name,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, partner)
}

// Update renames a college and optionally replaces its image; without a new
// file the stored image stays.
// PUT /dashboard/partners/:id
func (ctrl *PartnerController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id := c.Param("id")

	name := c.PostForm("name")
	if name == "" {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "이름이 필요합니다")
		return
	}

	// Empty URL means no file was uploaded; the service keeps the old image.
	imageURL, _ := middleware.GetUploadedImageURL(c)

	partner, err := ctrl.partnerService.Update(c.Request.Context(), id, name, imageURL)
	if err != nil {
		if errors.Is(err, service.ErrPartnerNotFound) {
			apperrors.NotFound(c, apperrors.PartnerNotFound, "단과대를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to update partner", err, map[string]interface{}{
			"partner_id": id,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, partner)
}

// Delete removes a college along with its partnerships.
// DELETE /dashboard/partners/:id
func (ctrl *PartnerController) Delete(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id := c.Param("id")

	if err := ctrl.partnerService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPartnerNotFound) {
			apperrors.NotFound(c, apperrors.PartnerNotFound, "단과대를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to delete partner", err, map[string]interface{}{
			"partner_id": id,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
