package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/recoleta-app/collector-api/internal/dto"
	"github.com/recoleta-app/collector-api/internal/models"
	"github.com/recoleta-app/collector-api/internal/service"
	appErrors "github.com/recoleta-app/collector-api/pkg/errors"
	"github.com/recoleta-app/collector-api/pkg/response"
)

type discardService interface {
	Refresh(ctx context.Context, collectorID int64, token string) (*service.Snapshot, error)
	List(ctx context.Context, collectorID int64, token string, criteria service.FilterCriteria) (*service.Snapshot, []models.Discard, error)
}

type markerService interface {
	Markers(discards []models.Discard) *dto.MapResponse
}

// DiscardHandler serves the collection request listing and map payloads.
type DiscardHandler struct {
	discards discardService
	geo      markerService
}

// NewDiscardHandler constructs the handler.
func NewDiscardHandler(discards discardService, geo markerService) *DiscardHandler {
	return &DiscardHandler{discards: discards, geo: geo}
}

// List godoc
// @Summary Collection requests for the authenticated collector
// @Tags Discards
// @Produce json
// @Param refresh query bool false "Force an upstream refresh"
// @Param status query string false "Backend status filter"
// @Param mode query string false "Mode filter"
// @Param category query string false "Report category filter"
// @Param q query string false "Text search"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /discards [get]
func (h *DiscardHandler) List(c *gin.Context) {
	if h.discards == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	collectorID, token, _, ok := identityFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	ctx := c.Request.Context()
	if force, _ := strconv.ParseBool(c.Query("refresh")); force {
		if _, err := h.discards.Refresh(ctx, collectorID, token); err != nil {
			response.Error(c, err)
			return
		}
	}

	snapshot, filtered, err := h.discards.List(ctx, collectorID, token, parseFilterCriteria(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := map[string]interface{}{
		"snapshot_version": snapshot.Version,
		"fetched_at":       snapshot.FetchedAt,
		"total_records":    len(snapshot.Discards),
	}
	response.JSON(c, http.StatusOK, dto.NewDiscardViews(filtered), nil, meta)
}

// Markers godoc
// @Summary GeoJSON markers and map center for plottable requests
// @Tags Discards
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /discards/markers [get]
func (h *DiscardHandler) Markers(c *gin.Context) {
	if h.discards == nil || h.geo == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	collectorID, token, _, ok := identityFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	snapshot, filtered, err := h.discards.List(c.Request.Context(), collectorID, token, parseFilterCriteria(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	payload := h.geo.Markers(filtered)
	meta := map[string]interface{}{"snapshot_version": snapshot.Version}
	response.JSON(c, http.StatusOK, payload, nil, meta)
}
