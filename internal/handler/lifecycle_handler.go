package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/recoleta-app/collector-api/internal/dto"
	appErrors "github.com/recoleta-app/collector-api/pkg/errors"
	"github.com/recoleta-app/collector-api/pkg/response"
)

type lifecycleService interface {
	Advance(ctx context.Context, collectorID, requestID int64, actorName string) (*dto.AdvanceResponse, error)
	Log(ctx context.Context, collectorID int64) (*dto.LifecycleLogResponse, error)
	Reset(ctx context.Context, collectorID int64) error
}

// LifecycleHandler exposes the acceptance progression endpoints.
type LifecycleHandler struct {
	service lifecycleService
}

// NewLifecycleHandler constructs the handler.
func NewLifecycleHandler(service lifecycleService) *LifecycleHandler {
	return &LifecycleHandler{service: service}
}

// Advance godoc
// @Summary Advance a request one lifecycle step
// @Tags Lifecycle
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /discards/{id}/advance [post]
func (h *LifecycleHandler) Advance(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	collectorID, _, claims, ok := identityFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || requestID <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request id"))
		return
	}

	result, err := h.service.Advance(c.Request.Context(), collectorID, requestID, claims.DisplayName())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Log godoc
// @Summary Session acceptance log
// @Tags Lifecycle
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /lifecycle/log [get]
func (h *LifecycleHandler) Log(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	collectorID, _, _, ok := identityFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	log, err := h.service.Log(c.Request.Context(), collectorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, log, nil)
}

// Reset godoc
// @Summary Clear lifecycle state and acceptance log
// @Tags Lifecycle
// @Success 204
// @Security BearerAuth
// @Router /lifecycle/log [delete]
func (h *LifecycleHandler) Reset(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	collectorID, _, _, ok := identityFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.service.Reset(c.Request.Context(), collectorID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
