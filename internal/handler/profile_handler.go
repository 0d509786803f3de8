package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/recoleta-app/collector-api/internal/models"
	appErrors "github.com/recoleta-app/collector-api/pkg/errors"
	"github.com/recoleta-app/collector-api/pkg/response"
)

type profileService interface {
	Me(ctx context.Context, token string) (*models.CollectorProfile, error)
	Update(ctx context.Context, collectorID, targetID int64, token string, profile models.CollectorProfile) (*models.CollectorProfile, error)
}

// ProfileHandler proxies collector account endpoints.
type ProfileHandler struct {
	service profileService
}

// NewProfileHandler constructs the handler.
func NewProfileHandler(service profileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Me godoc
// @Summary Authenticated collector profile
// @Tags Collectors
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /collectors/me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	_, token, _, ok := identityFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	profile, err := h.service.Me(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile, nil)
}

// Update godoc
// @Summary Update a collector profile
// @Tags Collectors
// @Accept json
// @Produce json
// @Param id path int true "Collector ID"
// @Param profile body models.CollectorProfile true "Profile payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /collectors/{id} [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	collectorID, token, _, ok := identityFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || targetID <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid collector id"))
		return
	}

	var payload models.CollectorProfile
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid profile payload"))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), collectorID, targetID, token, payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, updated, nil)
}
