package service

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/recoleta-app/collector-api/internal/dto"
	"github.com/recoleta-app/collector-api/internal/models"
)

// fallbackCenter keeps the map usable when nothing is plottable.
// São Paulo city center, lon/lat order per orb.
var fallbackCenter = orb.Point{-46.633308, -23.55052}

const markerPopupMax = 80

// GeoService resolves plottable coordinates and builds the map payload.
type GeoService struct {
	logger *zap.Logger
}

// NewGeoService constructs a geo service.
func NewGeoService(logger *zap.Logger) *GeoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeoService{logger: logger}
}

// Resolve returns the plottable point for a discard. The mode decides which
// location object is consulted; a record is plottable only when that object
// carries both coordinates. The other location object is never used as a
// substitute, even when it has coordinates.
func (s *GeoService) Resolve(d models.Discard) (orb.Point, bool) {
	loc := d.AuthoritativeLocation()
	if loc == nil || loc.Latitude == nil || loc.Longitude == nil {
		return orb.Point{}, false
	}
	return orb.Point{*loc.Longitude, *loc.Latitude}, true
}

// ComputeCenter returns the first plottable record's coordinates, falling
// back to the default viewport when no record is plottable.
func (s *GeoService) ComputeCenter(discards []models.Discard) orb.Point {
	for i := range discards {
		if point, ok := s.Resolve(discards[i]); ok {
			return point
		}
	}
	return fallbackCenter
}

// Markers builds the GeoJSON feature collection the map widget renders, one
// feature per plottable record. Unplottable records are counted, not dropped
// silently.
func (s *GeoService) Markers(discards []models.Discard) *dto.MapResponse {
	collection := geojson.NewFeatureCollection()
	skipped := 0

	for i := range discards {
		d := discards[i]
		point, ok := s.Resolve(d)
		if !ok {
			skipped++
			continue
		}

		feature := geojson.NewFeature(point)
		feature.ID = d.ID
		feature.Properties = geojson.Properties{
			"id":           d.ID,
			"status":       string(d.Status),
			"statusLabel":  models.StatusLabel(d.Status),
			"mode":         string(d.Mode),
			"modeLabel":    models.ModeLabel(d.Mode),
			"shortAddress": d.ShortAddress(),
		}
		if d.Description != "" {
			feature.Properties["description"] = dto.Truncate(d.Description, markerPopupMax)
		}
		collection.Append(feature)
	}

	if skipped > 0 {
		s.logger.Debug("markers skipped for missing coordinates", zap.Int("skipped", skipped))
	}

	center := s.ComputeCenter(discards)
	return &dto.MapResponse{
		Center:  dto.Coordinates{Latitude: center.Lat(), Longitude: center.Lon()},
		Markers: collection,
		Skipped: skipped,
	}
}
