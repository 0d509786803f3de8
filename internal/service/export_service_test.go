package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recoleta-app/collector-api/internal/dto"
	appErrors "github.com/recoleta-app/collector-api/pkg/errors"
)

type staticBuckets struct {
	buckets []dto.ReportBucket
	err     error
}

func (s *staticBuckets) MonthlyBuckets(_ context.Context, _ int64, _ string) ([]dto.ReportBucket, error) {
	return s.buckets, s.err
}

func newExportService(source monthlyBucketSource, enabled bool) *ExportService {
	return NewExportService(ExportServiceParams{
		Reports: source,
		Logger:  zap.NewNop(),
		Now:     func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) },
		Enabled: enabled,
	})
}

func TestExportMonthlyCSV(t *testing.T) {
	source := &staticBuckets{buckets: []dto.ReportBucket{
		{Label: "Jan", PeriodKey: "01", Pending: 2, Accepted: 1, Received: 3},
		{Label: "Fev", PeriodKey: "02"},
	}}
	svc := newExportService(source, true)

	result, err := svc.Monthly(context.Background(), 1, "token", FormatCSV)

	require.NoError(t, err)
	assert.Equal(t, "relatorio-mensal-2025-06-15.csv", result.Filename)
	assert.Equal(t, "text/csv", result.ContentType)

	body := strings.TrimPrefix(string(result.Data), "\ufeff")
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Mês,Pendentes,Aceitos,Recebidos,Total", lines[0])
	assert.Equal(t, "Jan,2,1,3,6", lines[1])
	assert.Equal(t, "Fev,0,0,0,0", lines[2])
}

func TestExportMonthlyPDF(t *testing.T) {
	source := &staticBuckets{buckets: []dto.ReportBucket{{Label: "Jan", PeriodKey: "01", Pending: 1}}}
	svc := newExportService(source, true)

	result, err := svc.Monthly(context.Background(), 1, "token", FormatPDF)

	require.NoError(t, err)
	assert.Equal(t, "relatorio-mensal-2025-06-15.pdf", result.Filename)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasPrefix(string(result.Data), "%PDF"))
}

func TestExportMonthlyDisabled(t *testing.T) {
	svc := newExportService(&staticBuckets{}, false)

	_, err := svc.Monthly(context.Background(), 1, "token", FormatCSV)

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestExportMonthlyUnsupportedFormat(t *testing.T) {
	svc := newExportService(&staticBuckets{}, true)

	_, err := svc.Monthly(context.Background(), 1, "token", ExportFormat("xlsx"))

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
