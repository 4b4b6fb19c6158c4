package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/binzaridot/binzari-backend/internal/app/model"
	"github.com/binzaridot/binzari-backend/internal/app/service"
	apperrors "github.com/binzaridot/binzari-backend/internal/errors"
	"github.com/binzaridot/binzari-backend/internal/middleware"
)

type MapController struct {
	mapService service.MapService
}

func NewMapController(mapService service.MapService) *MapController {
	return &MapController{
		mapService: mapService,
	}
}

// Page renders the embeddable map HTML. An authenticated caller gets the
// stores of their verified colleges; a guest supplies college ids with
// ?partners=id1,id2.
// GET /api/map
func (ctrl *MapController) Page(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	ctx := c.Request.Context()

	var (
		stores []model.MapStore
		err    error
	)
	if userID, ok := middleware.GetUserID(c); ok {
		stores, err = ctrl.mapService.StoresForUser(ctx, userID)
	} else {
		stores, err = ctrl.mapService.StoresForPartners(ctx, splitIDs(c.Query("partners")))
	}
	if err != nil {
		log.Error("Failed to load map stores", err, nil)
		apperrors.InternalError(c, err)
		return
	}

	html, err := ctrl.mapService.RenderPage(stores)
	if err != nil {
		log.Error("Failed to render map page", err, nil)
		apperrors.InternalError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

type LogClickRequest struct {
	StoreID string `json:"store_id" binding:"required,uuid"`
}

// LogClick records that the caller tapped a store marker.
// POST /api/logUserClick
func (ctrl *MapController) LogClick(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LogClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	userID, _ := middleware.GetUserID(c)
	if err := ctrl.mapService.LogClick(c.Request.Context(), userID, req.StoreID); err != nil {
		log.Error("Failed to log store click", err, map[string]interface{}{
			"user_id":  userID,
			"store_id": req.StoreID,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
