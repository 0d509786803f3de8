package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/recoleta-app/collector-api/internal/models"
)

// CollectorRepository proxies collector account operations to the upstream API.
type CollectorRepository struct {
	upstream *Upstream
	logger   *zap.Logger
}

// NewCollectorRepository constructs a collector repository.
func NewCollectorRepository(upstream *Upstream, logger *zap.Logger) *CollectorRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollectorRepository{upstream: upstream, logger: logger}
}

// FetchProfile loads the authenticated collector's profile.
func (r *CollectorRepository) FetchProfile(ctx context.Context, token string) (*models.CollectorProfile, error) {
	raw, err := r.upstream.do(ctx, "GET", "/collectors/me", token, nil)
	if err != nil {
		return nil, err
	}

	var profile models.CollectorProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("decode collector profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile pushes profile changes for the given collector.
func (r *CollectorRepository) UpdateProfile(ctx context.Context, collectorID int64, token string, profile models.CollectorProfile) (*models.CollectorProfile, error) {
	path := fmt.Sprintf("/collectors/%d", collectorID)
	raw, err := r.upstream.do(ctx, "PUT", path, token, profile)
	if err != nil {
		r.logger.Warn("profile update failed", zap.Int64("collector_id", collectorID), zap.Error(err))
		return nil, err
	}

	var updated models.CollectorProfile
	if err := json.Unmarshal(raw, &updated); err != nil {
		// Some backend versions answer updates with an empty body. Echo the
		// submitted profile so callers still get a concrete payload.
		updated = profile
		updated.ID = collectorID
	}
	return &updated, nil
}
