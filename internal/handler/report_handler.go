package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/recoleta-app/collector-api/internal/dto"
	"github.com/recoleta-app/collector-api/internal/middleware"
	"github.com/recoleta-app/collector-api/internal/service"
	appErrors "github.com/recoleta-app/collector-api/pkg/errors"
	"github.com/recoleta-app/collector-api/pkg/response"
)

type reportService interface {
	Dashboard(ctx context.Context, collectorID int64, token string) (*dto.DashboardResponse, bool, error)
	History(ctx context.Context, collectorID int64, token string, criteria service.FilterCriteria) (*dto.HistoryResponse, bool, error)
}

// ReportHandler wires the report assembler to HTTP endpoints.
type ReportHandler struct {
	service reportService
}

// NewReportHandler constructs the handler.
func NewReportHandler(service reportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Dashboard godoc
// @Summary Weekly overview with recent totals
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	collectorID, token, _, ok := identityFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	start := time.Now()
	payload, cacheHit, err := h.service.Dashboard(c.Request.Context(), collectorID, token)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, payload, nil, meta)
}

// History godoc
// @Summary Twelve-month history with filters and month drill-down
// @Tags Reports
// @Produce json
// @Param status query string false "Backend status filter"
// @Param mode query string false "Mode filter (PICKUP or COLLECTION_POINT)"
// @Param category query string false "Report category filter (pending, accepted, received)"
// @Param q query string false "Text search on client name and description"
// @Param bucket query string false "Chart bucket key (01..12 for months, 0..6 for weekdays)"
// @Param view query string false "Bucket view, monthly (default) or weekly"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /history [get]
func (h *ReportHandler) History(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	collectorID, token, _, ok := identityFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	start := time.Now()
	payload, cacheHit, err := h.service.History(c.Request.Context(), collectorID, token, parseFilterCriteria(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, payload, nil, meta)
}
