package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/recoleta-app/collector-api/internal/dto"
	"github.com/recoleta-app/collector-api/pkg/export"
	appErrors "github.com/recoleta-app/collector-api/pkg/errors"
)

// monthlyBucketSource is the slice of the report service exports need.
type monthlyBucketSource interface {
	MonthlyBuckets(ctx context.Context, collectorID int64, token string) ([]dto.ReportBucket, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportFormat names a supported report download format.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportResult is a rendered report ready for download.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportServiceParams bundles dependencies for NewExportService.
type ExportServiceParams struct {
	Reports monthlyBucketSource
	CSV     csvRenderer
	PDF     pdfRenderer
	Logger  *zap.Logger
	Now     func() time.Time
	Enabled bool
}

// ExportService renders the monthly report as a downloadable file.
type ExportService struct {
	reports monthlyBucketSource
	csv     csvRenderer
	pdf     pdfRenderer
	logger  *zap.Logger
	now     func() time.Time
	enabled bool
}

// NewExportService constructs an export service.
func NewExportService(params ExportServiceParams) *ExportService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	csv := params.CSV
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	pdf := params.PDF
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		reports: params.Reports,
		csv:     csv,
		pdf:     pdf,
		logger:  logger,
		now:     now,
		enabled: params.Enabled,
	}
}

// Enabled indicates whether report downloads are switched on.
func (s *ExportService) Enabled() bool {
	return s != nil && s.enabled
}

var exportHeaders = []string{"Mês", "Pendentes", "Aceitos", "Recebidos", "Total"}

// Monthly renders the twelve-month aggregation in the requested format.
func (s *ExportService) Monthly(ctx context.Context, collectorID int64, token string, format ExportFormat) (*ExportResult, error) {
	if !s.Enabled() {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "report downloads are disabled")
	}

	buckets, err := s.reports.MonthlyBuckets(ctx, collectorID, token)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: exportHeaders, Rows: make([]map[string]string, 0, len(buckets))}
	for _, b := range buckets {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Mês":       b.Label,
			"Pendentes": strconv.Itoa(b.Pending),
			"Aceitos":   strconv.Itoa(b.Accepted),
			"Recebidos": strconv.Itoa(b.Received),
			"Total":     strconv.Itoa(b.Pending + b.Accepted + b.Received),
		})
	}

	stamp := s.now().Format("2006-01-02")
	switch format {
	case FormatCSV:
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, fmt.Errorf("render csv export: %w", err)
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("relatorio-mensal-%s.csv", stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case FormatPDF:
		data, err := s.pdf.Render(dataset, "Relatório mensal de coletas")
		if err != nil {
			return nil, fmt.Errorf("render pdf export: %w", err)
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("relatorio-mensal-%s.pdf", stamp),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", strings.TrimSpace(string(format))))
	}
}
