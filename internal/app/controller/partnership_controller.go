package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/binzaridot/binzari-backend/internal/app/service"
	apperrors "github.com/binzaridot/binzari-backend/internal/errors"
	"github.com/binzaridot/binzari-backend/internal/middleware"
)

type PartnershipController struct {
	partnershipService service.PartnershipService
}

func NewPartnershipController(partnershipService service.PartnershipService) *PartnershipController {
	return &PartnershipController{
		partnershipService: partnershipService,
	}
}

type PartnershipRequest struct {
	StoreID          string `json:"store_id" binding:"required,uuid"`
	PartnerID        string `json:"partner_id" binding:"required,uuid"`
	ShortDescription string `json:"short_description" binding:"required"`
	LongDescription  string `json:"long_description" binding:"required"`
}

// Create links a store to a college with discount descriptions.
// POST /dashboard/partnerships
func (ctrl *PartnershipController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req PartnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	partnership, err := ctrl.partnershipService.Create(c.Request.Context(),
		req.StoreID, req.PartnerID, req.ShortDescription, req.LongDescription)
	if err != nil {
		log.Error("Failed to create partnership", err, map[string]interface{}{
			"store_id":   req.StoreID,
			"partner_id": req.PartnerID,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, partnership)
}

// Update replaces a partnership's fields.
// PUT /dashboard/partnerships/:id
func (ctrl *PartnershipController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id := c.Param("id")

	var req PartnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	partnership, err := ctrl.partnershipService.Update(c.Request.Context(),
		id, req.StoreID, req.PartnerID, req.ShortDescription, req.LongDescription)
	if err != nil {
		if errors.Is(err, service.ErrPartnershipNotFound) {
			apperrors.NotFound(c, apperrors.PartnershipNotFound, "제휴를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to update partnership", err, map[string]interface{}{
			"partnership_id": id,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, partnership)
}

// Delete removes a partnership.
// DELETE /dashboard/partnerships/:id
func (ctrl *PartnershipController) Delete(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id := c.Param("id")

	if err := ctrl.partnershipService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPartnershipNotFound) {
			apperrors.NotFound(c, apperrors.PartnershipNotFound, "제휴를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to delete partnership", err, map[string]interface{}{
			"partnership_id": id,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
