package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/recoleta-app/collector-api/internal/models"
	appErrors "github.com/recoleta-app/collector-api/pkg/errors"
)

// LifecycleRepository persists per-collector lifecycle state and the
// session-scoped acceptance log in Redis. Both keys share the session TTL so
// a collector's workflow resets together once the session expires.
type LifecycleRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewLifecycleRepository constructs a lifecycle repository.
func NewLifecycleRepository(client *redis.Client, ttl time.Duration, logger *zap.Logger) *LifecycleRepository {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LifecycleRepository{client: client, ttl: ttl, logger: logger}
}

func stateKey(collectorID int64) string {
	return fmt.Sprintf("lifecycle:state:%d", collectorID)
}

func logKey(collectorID int64) string {
	return fmt.Sprintf("lifecycle:log:%d", collectorID)
}

// errNoStore surfaces when the service runs without Redis. Lifecycle writes
// cannot degrade silently the way report caching does.
var errNoStore = appErrors.Clone(appErrors.ErrInternal, "lifecycle persistence unavailable")

// State returns the stored lifecycle state for a request, defaulting to
// pending when the request was never advanced.
func (r *LifecycleRepository) State(ctx context.Context, collectorID, requestID int64) (models.LifecycleState, error) {
	if r.client == nil {
		return models.LifecyclePending, errNoStore
	}
	raw, err := r.client.HGet(ctx, stateKey(collectorID), strconv.FormatInt(requestID, 10)).Result()
	if err != nil {
		if err == redis.Nil {
			return models.LifecyclePending, nil
		}
		return models.LifecyclePending, fmt.Errorf("redis hget lifecycle state: %w", err)
	}
	return models.LifecycleState(raw), nil
}

// SetState stores the lifecycle state for a request and refreshes the
// session TTL.
func (r *LifecycleRepository) SetState(ctx context.Context, collectorID, requestID int64, state models.LifecycleState) error {
	if r.client == nil {
		return errNoStore
	}
	key := stateKey(collectorID)
	if err := r.client.HSet(ctx, key, strconv.FormatInt(requestID, 10), string(state)).Err(); err != nil {
		return fmt.Errorf("redis hset lifecycle state: %w", err)
	}
	if err := r.client.Expire(ctx, key, r.ttl).Err(); err != nil {
		r.logger.Warn("lifecycle state expire failed", zap.Int64("collector_id", collectorID), zap.Error(err))
	}
	return nil
}

// RegisterEntry appends an acceptance-log entry for the request unless one
// already exists. HSetNX makes registration atomic, so concurrent advances
// for the same request id produce exactly one entry. Returns true when this
// call created the entry.
func (r *LifecycleRepository) RegisterEntry(ctx context.Context, collectorID int64, entry models.LifecycleEntry) (bool, error) {
	if r.client == nil {
		return false, errNoStore
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		return false, fmt.Errorf("marshal lifecycle entry: %w", err)
	}

	key := logKey(collectorID)
	created, err := r.client.HSetNX(ctx, key, strconv.FormatInt(entry.RequestID, 10), payload).Result()
	if err != nil {
		return false, fmt.Errorf("redis hsetnx lifecycle entry: %w", err)
	}
	if err := r.client.Expire(ctx, key, r.ttl).Err(); err != nil {
		r.logger.Warn("lifecycle log expire failed", zap.Int64("collector_id", collectorID), zap.Error(err))
	}
	return created, nil
}

// Entries lists the acceptance log for a collector ordered by timestamp.
func (r *LifecycleRepository) Entries(ctx context.Context, collectorID int64) ([]models.LifecycleEntry, error) {
	if r.client == nil {
		return []models.LifecycleEntry{}, nil
	}
	raw, err := r.client.HGetAll(ctx, logKey(collectorID)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall lifecycle log: %w", err)
	}

	entries := make([]models.LifecycleEntry, 0, len(raw))
	for field, value := range raw {
		var entry models.LifecycleEntry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			r.logger.Warn("skipping corrupt lifecycle entry", zap.String("field", field), zap.Error(err))
			continue
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].RequestID < entries[j].RequestID
		}
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	return entries, nil
}

// Clear drops the lifecycle state and acceptance log for a collector.
func (r *LifecycleRepository) Clear(ctx context.Context, collectorID int64) error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Del(ctx, stateKey(collectorID), logKey(collectorID)).Err(); err != nil {
		return fmt.Errorf("redis del lifecycle keys: %w", err)
	}
	return nil
}
