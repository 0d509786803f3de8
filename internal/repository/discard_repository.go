package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// DiscardRepository fetches collection requests from the upstream API.
type DiscardRepository struct {
	upstream *Upstream
	logger   *zap.Logger
}

// NewDiscardRepository constructs a discard repository.
func NewDiscardRepository(upstream *Upstream, logger *zap.Logger) *DiscardRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiscardRepository{upstream: upstream, logger: logger}
}

// FetchPendingPickup returns the raw pending-pickup listing for a collector.
// The payload shape varies by backend version, so decoding is left to the
// normalization layer.
func (r *DiscardRepository) FetchPendingPickup(ctx context.Context, collectorID int64, token string) ([]byte, error) {
	path := fmt.Sprintf("/discards/collectors/%d/pending-pickup", collectorID)
	raw, err := r.upstream.do(ctx, "GET", path, token, nil)
	if err != nil {
		r.logger.Warn("pending-pickup fetch failed", zap.Int64("collector_id", collectorID), zap.Error(err))
		return nil, err
	}
	return raw, nil
}
