package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/recoleta-app/collector-api/internal/service"
	appErrors "github.com/recoleta-app/collector-api/pkg/errors"
	"github.com/recoleta-app/collector-api/pkg/response"
)

type exportService interface {
	Monthly(ctx context.Context, collectorID int64, token string, format service.ExportFormat) (*service.ExportResult, error)
}

// ExportHandler streams report downloads.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Monthly godoc
// @Summary Download the monthly report
// @Tags Reports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /reports/monthly/export [get]
func (h *ExportHandler) Monthly(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	collectorID, token, _, ok := identityFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	format := service.ExportFormat(strings.ToLower(strings.TrimSpace(c.Query("format"))))
	if format == "" {
		format = service.FormatCSV
	}

	result, err := h.service.Monthly(c.Request.Context(), collectorID, token, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
