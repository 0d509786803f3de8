package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recoleta-app/collector-api/internal/models"
	appErrors "github.com/recoleta-app/collector-api/pkg/errors"
)

func TestNormalizeDiscardsBareArray(t *testing.T) {
	payload := []byte(`[
		{"id":1,"mode":"PICKUP","status":"PENDING","lines":["VERDE"],"createdAt":"2025-06-10T14:30:00Z","client":{"name":"Maria"}},
		{"id":2,"mode":"COLLECTION_POINT","status":"COMPLETED","created_at":"2025-06-11T09:00:00Z"}
	]`)

	discards, err := normalizeDiscards(payload, time.Now(), zap.NewNop())

	require.NoError(t, err)
	require.Len(t, discards, 2)
	assert.Equal(t, int64(1), discards[0].ID)
	assert.Equal(t, []models.MaterialLine{models.LineVerde}, discards[0].Lines)
	assert.Equal(t, "Maria", discards[0].Client.Name)
	assert.False(t, discards[0].CreatedAtAssumed)

	// snake_case timestamp fallback
	assert.Equal(t, time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC), discards[1].CreatedAt)
	assert.Equal(t, []models.MaterialLine{}, discards[1].Lines)
}

func TestNormalizeDiscardsWrappedObject(t *testing.T) {
	payload := []byte(`{"discards":[{"id":7,"mode":"PICKUP","status":"OFFERED","createdAt":"2025-06-10T14:30:00Z"}]}`)

	discards, err := normalizeDiscards(payload, time.Now(), zap.NewNop())

	require.NoError(t, err)
	require.Len(t, discards, 1)
	assert.Equal(t, int64(7), discards[0].ID)
	assert.Equal(t, models.StatusOffered, discards[0].Status)
}

func TestNormalizeDiscardsMissingCreatedAtAssumesNow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	payload := []byte(`[{"id":3,"mode":"PICKUP","status":"PENDING"}]`)

	discards, err := normalizeDiscards(payload, now, zap.NewNop())

	require.NoError(t, err)
	require.Len(t, discards, 1)
	assert.True(t, discards[0].CreatedAtAssumed)
	assert.Equal(t, now, discards[0].CreatedAt)
}

func TestNormalizeDiscardsUnparsableCreatedAtStaysZero(t *testing.T) {
	payload := []byte(`[{"id":4,"mode":"PICKUP","status":"PENDING","createdAt":"amanhã"}]`)

	discards, err := normalizeDiscards(payload, time.Now(), zap.NewNop())

	require.NoError(t, err)
	require.Len(t, discards, 1)
	assert.True(t, discards[0].CreatedAt.IsZero())
	assert.False(t, discards[0].CreatedAtAssumed)
}

func TestNormalizeDiscardsEmptyAndNullPayloads(t *testing.T) {
	for _, payload := range []string{"", "null", "  "} {
		discards, err := normalizeDiscards([]byte(payload), time.Now(), zap.NewNop())
		require.NoError(t, err, "payload %q", payload)
		assert.Empty(t, discards)
	}
}

func TestNormalizeDiscardsMalformedPayload(t *testing.T) {
	discards, err := normalizeDiscards([]byte(`{"message":"oops"`), time.Now(), zap.NewNop())

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrMalformed.Code, appErr.Code)
	assert.Empty(t, discards)
}

func TestNormalizeDiscardsInvalidLinesDefaultEmpty(t *testing.T) {
	payload := []byte(`[{"id":5,"mode":"PICKUP","status":"PENDING","lines":"VERDE","createdAt":"2025-06-10T14:30:00Z"}]`)

	discards, err := normalizeDiscards(payload, time.Now(), zap.NewNop())

	require.NoError(t, err)
	require.Len(t, discards, 1)
	assert.NotNil(t, discards[0].Lines)
	assert.Empty(t, discards[0].Lines)
}
