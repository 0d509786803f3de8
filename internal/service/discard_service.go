package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/recoleta-app/collector-api/internal/models"
)

// pendingPickupFetcher is the slice of the discard repository this service needs.
type pendingPickupFetcher interface {
	FetchPendingPickup(ctx context.Context, collectorID int64, token string) ([]byte, error)
}

// Snapshot is one collector's normalized record set at a point in time. The
// version increases with every completed refresh, so derived payloads can be
// cached against it and stale fetches detected.
type Snapshot struct {
	CollectorID int64
	Version     uint64
	FetchedAt   time.Time
	Discards    []models.Discard
}

// DiscardServiceParams bundles dependencies for NewDiscardService.
type DiscardServiceParams struct {
	Repo        pendingPickupFetcher
	Metrics     *MetricsService
	Logger      *zap.Logger
	SnapshotTTL time.Duration
	Now         func() time.Time
}

// DiscardService owns the per-collector record snapshots. Refreshes follow
// last-write-wins: when fetches overlap, the one that started last decides
// the stored snapshot and slower stragglers are discarded.
type DiscardService struct {
	repo        pendingPickupFetcher
	metrics     *MetricsService
	logger      *zap.Logger
	snapshotTTL time.Duration
	now         func() time.Time

	mu        sync.Mutex
	snapshots map[int64]*Snapshot
	tickets   map[int64]uint64
	applied   map[int64]uint64
}

// NewDiscardService constructs a discard service.
func NewDiscardService(params DiscardServiceParams) *DiscardService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	ttl := params.SnapshotTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &DiscardService{
		repo:        params.Repo,
		metrics:     params.Metrics,
		logger:      logger,
		snapshotTTL: ttl,
		now:         now,
		snapshots:   make(map[int64]*Snapshot),
		tickets:     make(map[int64]uint64),
		applied:     make(map[int64]uint64),
	}
}

// Refresh fetches and normalizes the collector's pending-pickup records. The
// stored snapshot is only replaced when no newer refresh finished while this
// one was in flight. On error the previous snapshot stays untouched.
func (s *DiscardService) Refresh(ctx context.Context, collectorID int64, token string) (*Snapshot, error) {
	s.mu.Lock()
	s.tickets[collectorID]++
	ticket := s.tickets[collectorID]
	s.mu.Unlock()

	// Fetch latency is measured on the wall clock; s.now is the domain
	// clock for record timestamps and snapshot ages.
	start := time.Now()
	raw, err := s.repo.FetchPendingPickup(ctx, collectorID, token)
	if s.metrics != nil {
		s.metrics.ObserveUpstreamFetch("pending_pickup", time.Since(start))
	}
	if err != nil {
		return nil, err
	}

	discards, err := normalizeDiscards(raw, s.now(), s.logger)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket < s.applied[collectorID] {
		// A refresh that started later already landed. Drop this result.
		s.logger.Debug("discarding stale refresh",
			zap.Int64("collector_id", collectorID),
			zap.Uint64("ticket", ticket),
			zap.Uint64("applied", s.applied[collectorID]))
		return s.snapshots[collectorID], nil
	}

	snapshot := &Snapshot{
		CollectorID: collectorID,
		Version:     ticket,
		FetchedAt:   s.now(),
		Discards:    discards,
	}
	s.snapshots[collectorID] = snapshot
	s.applied[collectorID] = ticket
	return snapshot, nil
}

// Load returns the collector's current snapshot, refreshing when none exists
// or the stored one aged past the snapshot TTL.
func (s *DiscardService) Load(ctx context.Context, collectorID int64, token string) (*Snapshot, error) {
	s.mu.Lock()
	snapshot := s.snapshots[collectorID]
	s.mu.Unlock()

	if snapshot != nil && s.now().Sub(snapshot.FetchedAt) <= s.snapshotTTL {
		return snapshot, nil
	}
	return s.Refresh(ctx, collectorID, token)
}

// List loads the snapshot and applies the filter, preserving record order.
func (s *DiscardService) List(ctx context.Context, collectorID int64, token string, criteria FilterCriteria) (*Snapshot, []models.Discard, error) {
	snapshot, err := s.Load(ctx, collectorID, token)
	if err != nil {
		return nil, nil, err
	}
	return snapshot, applyFilter(snapshot.Discards, criteria), nil
}
