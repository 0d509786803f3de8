package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recoleta-app/collector-api/internal/dto"
	"github.com/recoleta-app/collector-api/internal/models"
)

// lifecycleStore abstracts persistence for lifecycle state and the
// acceptance log.
type lifecycleStore interface {
	State(ctx context.Context, collectorID, requestID int64) (models.LifecycleState, error)
	SetState(ctx context.Context, collectorID, requestID int64, state models.LifecycleState) error
	RegisterEntry(ctx context.Context, collectorID int64, entry models.LifecycleEntry) (bool, error)
	Entries(ctx context.Context, collectorID int64) ([]models.LifecycleEntry, error)
	Clear(ctx context.Context, collectorID int64) error
}

// LifecycleServiceParams bundles dependencies for NewLifecycleService.
type LifecycleServiceParams struct {
	Store  lifecycleStore
	Logger *zap.Logger
	Now    func() time.Time
}

// LifecycleService drives the collector-side acceptance progression
// (Pendente, Confirmado, Em andamento) and its audit log. The progression is
// session-scoped and never written back to the upstream backend.
type LifecycleService struct {
	store  lifecycleStore
	logger *zap.Logger
	now    func() time.Time

	// Serializes advances in-process. The store's conditional write is what
	// keeps the log single-entry across processes.
	mu sync.Mutex
}

// NewLifecycleService constructs a lifecycle service.
func NewLifecycleService(params LifecycleServiceParams) *LifecycleService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &LifecycleService{store: params.Store, logger: logger, now: now}
}

// Advance moves a request one step forward. Advancing past the terminal
// state is a harmless no-op. An audit entry is registered only for the first
// state change a request ever sees in the session, so repeated or racing
// clicks cannot inflate the log.
func (s *LifecycleService) Advance(ctx context.Context, collectorID, requestID int64, actorName string) (*dto.AdvanceResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.State(ctx, collectorID, requestID)
	if err != nil {
		return nil, err
	}

	next, ok := current.Next()
	if !ok {
		return &dto.AdvanceResponse{RequestID: requestID, State: current}, nil
	}

	if err := s.store.SetState(ctx, collectorID, requestID, next); err != nil {
		return nil, err
	}

	entry := models.LifecycleEntry{
		ID:          uuid.NewString(),
		RequestID:   requestID,
		ActorName:   actorName,
		ActionLabel: next.ActionLabel(),
		Timestamp:   s.now(),
	}
	registered, err := s.store.RegisterEntry(ctx, collectorID, entry)
	if err != nil {
		return nil, err
	}

	s.logger.Info("lifecycle advanced",
		zap.Int64("collector_id", collectorID),
		zap.Int64("request_id", requestID),
		zap.String("state", string(next)),
		zap.Bool("entry_registered", registered))

	return &dto.AdvanceResponse{
		RequestID:       requestID,
		State:           next,
		Changed:         true,
		EntryRegistered: registered,
	}, nil
}

// Log lists the session's audit entries in chronological order.
func (s *LifecycleService) Log(ctx context.Context, collectorID int64) (*dto.LifecycleLogResponse, error) {
	entries, err := s.store.Entries(ctx, collectorID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.LifecycleEntry{}
	}
	return &dto.LifecycleLogResponse{Entries: entries}, nil
}

// Reset clears all lifecycle state and audit entries for the collector.
func (s *LifecycleService) Reset(ctx context.Context, collectorID int64) error {
	return s.store.Clear(ctx, collectorID)
}
