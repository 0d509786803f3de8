package service

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recoleta-app/collector-api/internal/models"
)

func ptr(v float64) *float64 { return &v }

func TestGeoResolveUsesModeAuthoritativeLocation(t *testing.T) {
	geo := NewGeoService(zap.NewNop())

	pickup := models.Discard{
		Mode:            models.ModePickup,
		Address:         &models.Location{Latitude: ptr(-23.5), Longitude: ptr(-46.6)},
		CollectionPoint: &models.Location{Latitude: ptr(-1.0), Longitude: ptr(-1.0)},
	}
	point, ok := geo.Resolve(pickup)
	require.True(t, ok)
	assert.Equal(t, orb.Point{-46.6, -23.5}, point)

	dropOff := models.Discard{
		Mode:            models.ModeCollectionPoint,
		Address:         &models.Location{Latitude: ptr(-1.0), Longitude: ptr(-1.0)},
		CollectionPoint: &models.Location{Latitude: ptr(-22.9), Longitude: ptr(-43.2)},
	}
	point, ok = geo.Resolve(dropOff)
	require.True(t, ok)
	assert.Equal(t, orb.Point{-43.2, -22.9}, point)
}

func TestGeoResolveNeverSubstitutesTheOtherLocation(t *testing.T) {
	geo := NewGeoService(zap.NewNop())

	// Pickup mode with no address coordinates: the collection point must not
	// be used even though it is fully populated.
	d := models.Discard{
		Mode:            models.ModePickup,
		Address:         &models.Location{Latitude: ptr(-23.5)},
		CollectionPoint: &models.Location{Latitude: ptr(-22.9), Longitude: ptr(-43.2)},
	}

	_, ok := geo.Resolve(d)
	assert.False(t, ok)
}

func TestGeoComputeCenterUsesFirstPlottable(t *testing.T) {
	geo := NewGeoService(zap.NewNop())

	discards := []models.Discard{
		{Mode: models.ModePickup, Address: &models.Location{Latitude: ptr(-10.0), Longitude: ptr(-40.0)}},
		{Mode: models.ModePickup, Address: &models.Location{Latitude: ptr(-20.0), Longitude: ptr(-50.0)}},
	}

	assert.Equal(t, orb.Point{-40.0, -10.0}, geo.ComputeCenter(discards))

	// An unplottable record ahead of the line does not decide the center.
	skipFirst := append([]models.Discard{{Mode: models.ModePickup}}, discards...)
	assert.Equal(t, orb.Point{-40.0, -10.0}, geo.ComputeCenter(skipFirst))
}

func TestGeoComputeCenterFallsBack(t *testing.T) {
	geo := NewGeoService(zap.NewNop())

	assert.Equal(t, fallbackCenter, geo.ComputeCenter(nil))
	assert.Equal(t, fallbackCenter, geo.ComputeCenter([]models.Discard{{Mode: models.ModePickup}}))
}

func TestGeoMarkersBuildsFeaturesAndCountsSkipped(t *testing.T) {
	geo := NewGeoService(zap.NewNop())

	discards := []models.Discard{
		{
			ID:     1,
			Mode:   models.ModePickup,
			Status: models.StatusPending,
			Address: &models.Location{
				AddressName: "Rua Augusta", Number: "100", City: "São Paulo",
				Latitude: ptr(-23.55), Longitude: ptr(-46.64),
			},
			Description: "vidro",
		},
		{ID: 2, Mode: models.ModePickup, Status: models.StatusOffered},
	}

	response := geo.Markers(discards)

	require.NotNil(t, response.Markers)
	require.Len(t, response.Markers.Features, 1)
	assert.Equal(t, 1, response.Skipped)

	feature := response.Markers.Features[0]
	assert.Equal(t, orb.Point{-46.64, -23.55}, feature.Geometry)
	assert.Equal(t, "Pendente", feature.Properties["statusLabel"])
	assert.Equal(t, "Coleta em casa", feature.Properties["modeLabel"])
	assert.Equal(t, "Rua Augusta, 100, São Paulo", feature.Properties["shortAddress"])
	assert.Equal(t, "vidro", feature.Properties["description"])

	assert.InDelta(t, -23.55, response.Center.Latitude, 1e-9)
	assert.InDelta(t, -46.64, response.Center.Longitude, 1e-9)
}
