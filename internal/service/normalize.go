package service

import (
	"bytes"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/recoleta-app/collector-api/internal/models"
	appErrors "github.com/recoleta-app/collector-api/pkg/errors"
)

// rawDiscard mirrors the upstream record loosely. Backend versions disagree
// on the timestamp field name and occasionally omit lines entirely.
type rawDiscard struct {
	ID              int64                `json:"id"`
	Mode            models.DiscardMode   `json:"mode"`
	Status          models.DiscardStatus `json:"status"`
	Lines           json.RawMessage      `json:"lines"`
	CreatedAt       string               `json:"createdAt"`
	CreatedAtSnake  string               `json:"created_at"`
	Description     string               `json:"description"`
	Client          *models.Client       `json:"client"`
	Address         *models.Location     `json:"address"`
	CollectionPoint *models.Location     `json:"collectionPoint"`
}

var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// normalizeDiscards turns an upstream pending-pickup payload into canonical
// records. The payload is either a bare array or an object wrapping it under
// "discards". A payload that is neither yields an empty slice plus an error,
// so callers render an empty state instead of a partial one.
func normalizeDiscards(payload []byte, now time.Time, logger *zap.Logger) ([]models.Discard, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []models.Discard{}, nil
	}

	var raws []rawDiscard
	if err := json.Unmarshal(trimmed, &raws); err != nil {
		var wrapper struct {
			Discards []rawDiscard `json:"discards"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			logger.Warn("unrecognized pending-pickup payload shape", zap.Error(err))
			return []models.Discard{}, appErrors.Clone(appErrors.ErrMalformed, "")
		}
		raws = wrapper.Discards
	}

	discards := make([]models.Discard, 0, len(raws))
	for _, raw := range raws {
		discards = append(discards, normalizeOne(raw, now, logger))
	}
	return discards, nil
}

func normalizeOne(raw rawDiscard, now time.Time, logger *zap.Logger) models.Discard {
	d := models.Discard{
		ID:              raw.ID,
		Mode:            raw.Mode,
		Status:          raw.Status,
		Lines:           normalizeLines(raw.Lines),
		Description:     raw.Description,
		Client:          raw.Client,
		Address:         raw.Address,
		CollectionPoint: raw.CollectionPoint,
	}

	stamp := raw.CreatedAt
	if stamp == "" {
		stamp = raw.CreatedAtSnake
	}

	switch {
	case stamp == "":
		d.CreatedAt = now
		d.CreatedAtAssumed = true
		logger.Warn("discard missing createdAt, assuming ingestion time", zap.Int64("discard_id", raw.ID))
	default:
		parsed, ok := parseCreatedAt(stamp)
		if !ok {
			// Left at the zero value: the record stays listable but is
			// excluded from time-bucket aggregation.
			logger.Warn("discard createdAt unparsable", zap.Int64("discard_id", raw.ID), zap.String("created_at", stamp))
			break
		}
		d.CreatedAt = parsed
	}

	return d
}

func parseCreatedAt(stamp string) (time.Time, bool) {
	for _, layout := range createdAtLayouts {
		if parsed, err := time.Parse(layout, stamp); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func normalizeLines(raw json.RawMessage) []models.MaterialLine {
	if len(raw) == 0 {
		return []models.MaterialLine{}
	}
	var lines []models.MaterialLine
	if err := json.Unmarshal(raw, &lines); err != nil || lines == nil {
		return []models.MaterialLine{}
	}
	return lines
}
