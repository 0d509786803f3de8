package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recoleta-app/collector-api/internal/dto"
	"github.com/recoleta-app/collector-api/internal/models"
	"github.com/recoleta-app/collector-api/internal/service"
)

type fakeDiscardSrv struct {
	snapshot  *service.Snapshot
	err       error
	refreshes int
	lastCrit  service.FilterCriteria
}

func (f *fakeDiscardSrv) Refresh(_ context.Context, _ int64, _ string) (*service.Snapshot, error) {
	f.refreshes++
	return f.snapshot, f.err
}

func (f *fakeDiscardSrv) List(_ context.Context, _ int64, _ string, criteria service.FilterCriteria) (*service.Snapshot, []models.Discard, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	f.lastCrit = criteria
	if criteria.IsZero() {
		return f.snapshot, f.snapshot.Discards, nil
	}
	filtered := make([]models.Discard, 0, len(f.snapshot.Discards))
	for _, d := range f.snapshot.Discards {
		if criteria.Category != "" && models.Category(d.Status) != criteria.Category {
			continue
		}
		filtered = append(filtered, d)
	}
	return f.snapshot, filtered, nil
}

type fakeGeoSrv struct {
	response *dto.MapResponse
	lastLen  int
}

func (f *fakeGeoSrv) Markers(discards []models.Discard) *dto.MapResponse {
	f.lastLen = len(discards)
	return f.response
}

func discardSnapshot() *service.Snapshot {
	return &service.Snapshot{
		CollectorID: 42,
		Version:     5,
		FetchedAt:   time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		Discards: []models.Discard{
			{ID: 1, Mode: models.ModePickup, Status: models.StatusPending, CreatedAt: time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)},
			{ID: 2, Mode: models.ModePickup, Status: models.StatusCompleted, CreatedAt: time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC)},
		},
	}
}

type listEnvelope struct {
	Data []dto.DiscardView      `json:"data"`
	Meta map[string]interface{} `json:"meta"`
}

func TestDiscardHandlerList(t *testing.T) {
	srv := &fakeDiscardSrv{snapshot: discardSnapshot()}
	handler := NewDiscardHandler(srv, &fakeGeoSrv{})
	c, rec := authedContext(t, http.MethodGet, "/discards")

	handler.List(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, srv.refreshes)

	var envelope listEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "Pendente", envelope.Data[0].StatusLabel)
	assert.Equal(t, float64(5), envelope.Meta["snapshot_version"])
	assert.Equal(t, float64(2), envelope.Meta["total_records"])
}

func TestDiscardHandlerListForcesRefresh(t *testing.T) {
	srv := &fakeDiscardSrv{snapshot: discardSnapshot()}
	handler := NewDiscardHandler(srv, &fakeGeoSrv{})
	c, rec := authedContext(t, http.MethodGet, "/discards?refresh=true")

	handler.List(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, srv.refreshes)
}

func TestDiscardHandlerListFiltered(t *testing.T) {
	srv := &fakeDiscardSrv{snapshot: discardSnapshot()}
	handler := NewDiscardHandler(srv, &fakeGeoSrv{})
	c, rec := authedContext(t, http.MethodGet, "/discards?category=received")

	handler.List(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope listEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, int64(2), envelope.Data[0].ID)
	// The meta keeps the unfiltered count so the panel can show "1 of 2".
	assert.Equal(t, float64(2), envelope.Meta["total_records"])
}

func TestDiscardHandlerMarkersPassesFilteredSet(t *testing.T) {
	srv := &fakeDiscardSrv{snapshot: discardSnapshot()}
	geo := &fakeGeoSrv{response: &dto.MapResponse{Skipped: 2}}
	handler := NewDiscardHandler(srv, geo)
	c, rec := authedContext(t, http.MethodGet, "/discards/markers?category=pending")

	handler.Markers(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, geo.lastLen)
}

func TestDiscardHandlerRequiresIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDiscardHandler(&fakeDiscardSrv{snapshot: discardSnapshot()}, &fakeGeoSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/discards", nil)

	handler.List(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
