package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recoleta-app/collector-api/internal/dto"
	"github.com/recoleta-app/collector-api/internal/middleware"
	"github.com/recoleta-app/collector-api/internal/models"
	"github.com/recoleta-app/collector-api/internal/service"
	appErrors "github.com/recoleta-app/collector-api/pkg/errors"
)

type responseEnvelope struct {
	Data  map[string]interface{} `json:"data"`
	Error map[string]interface{} `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

func collectorClaims(id int64) *models.JWTClaims {
	return &models.JWTClaims{CollectorID: &id, Name: "Maria"}
}

func authedContext(t *testing.T, method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, target, nil)
	c.Set(middleware.ContextUserKey, collectorClaims(42))
	c.Set(middleware.ContextTokenKey, "token-abc")
	return c, rec
}

type fakeReportSrv struct {
	dashboard    *dto.DashboardResponse
	dashboardHit bool
	history      *dto.HistoryResponse
	err          error
	lastCriteria service.FilterCriteria
	lastToken    string
}

func (f *fakeReportSrv) Dashboard(_ context.Context, _ int64, token string) (*dto.DashboardResponse, bool, error) {
	f.lastToken = token
	return f.dashboard, f.dashboardHit, f.err
}

func (f *fakeReportSrv) History(_ context.Context, _ int64, token string, criteria service.FilterCriteria) (*dto.HistoryResponse, bool, error) {
	f.lastToken = token
	f.lastCriteria = criteria
	return f.history, false, f.err
}

func TestReportHandlerDashboardRequiresIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewReportHandler(&fakeReportSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard", nil)

	handler.Dashboard(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestReportHandlerDashboardSuccess(t *testing.T) {
	srv := &fakeReportSrv{
		dashboard:    &dto.DashboardResponse{TotalsWindowDays: 30},
		dashboardHit: true,
	}
	handler := NewReportHandler(srv)
	c, rec := authedContext(t, http.MethodGet, "/dashboard")

	handler.Dashboard(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "token-abc", srv.lastToken)

	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, true, envelope.Meta["cache_hit"])
	assert.Equal(t, float64(30), envelope.Data["totalsWindowDays"])
}

func TestReportHandlerHistoryParsesCriteria(t *testing.T) {
	srv := &fakeReportSrv{history: &dto.HistoryResponse{}}
	handler := NewReportHandler(srv)
	c, rec := authedContext(t, http.MethodGet, "/history?status=pending&category=RECEIVED&q=papel&bucket=06")

	handler.History(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StatusPending, srv.lastCriteria.Status)
	assert.Equal(t, models.CategoryReceived, srv.lastCriteria.Category)
	assert.Equal(t, "papel", srv.lastCriteria.Text)
	assert.Equal(t, "06", srv.lastCriteria.BucketKey)
	assert.Equal(t, service.BucketViewMonthly, srv.lastCriteria.BucketView)
}

func TestReportHandlerHistoryWeeklyView(t *testing.T) {
	srv := &fakeReportSrv{history: &dto.HistoryResponse{}}
	handler := NewReportHandler(srv)
	c, _ := authedContext(t, http.MethodGet, "/history?bucket=1&view=weekly")

	handler.History(c)

	assert.Equal(t, service.BucketViewWeekly, srv.lastCriteria.BucketView)
}

func TestReportHandlerPropagatesUpstreamError(t *testing.T) {
	handler := NewReportHandler(&fakeReportSrv{err: appErrors.Clone(appErrors.ErrUpstream, "backend offline")})
	c, rec := authedContext(t, http.MethodGet, "/dashboard")

	handler.Dashboard(c)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "backend offline", envelope.Error["message"])
}
