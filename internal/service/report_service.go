package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/recoleta-app/collector-api/internal/dto"
)

// snapshotLoader is the slice of the discard service report assembly needs.
type snapshotLoader interface {
	Load(ctx context.Context, collectorID int64, token string) (*Snapshot, error)
}

// ReportServiceParams bundles dependencies for NewReportService.
type ReportServiceParams struct {
	Discards     snapshotLoader
	Cache        *CacheService
	Logger       *zap.Logger
	Now          func() time.Time
	CacheTTL     time.Duration
	TotalsWindow time.Duration
	WeeklyWindow time.Duration
}

// ReportService assembles the dashboard and history payloads from a record
// snapshot. Derived payloads are cached per collector and snapshot version,
// so a cache entry can never outlive the data it was computed from.
type ReportService struct {
	discards     snapshotLoader
	cache        *CacheService
	logger       *zap.Logger
	now          func() time.Time
	cacheTTL     time.Duration
	totalsWindow time.Duration
	weeklyWindow time.Duration
}

// NewReportService constructs a report service.
func NewReportService(params ReportServiceParams) *ReportService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	totalsWindow := params.TotalsWindow
	if totalsWindow <= 0 {
		totalsWindow = 30 * 24 * time.Hour
	}
	weeklyWindow := params.WeeklyWindow
	if weeklyWindow <= 0 {
		weeklyWindow = 7 * 24 * time.Hour
	}
	return &ReportService{
		discards:     params.Discards,
		cache:        params.Cache,
		logger:       logger,
		now:          now,
		cacheTTL:     params.CacheTTL,
		totalsWindow: totalsWindow,
		weeklyWindow: weeklyWindow,
	}
}

// Dashboard builds the overview payload: weekday buckets for the last seven
// days plus category totals over the recent window. The second return
// reports whether the payload came from cache.
func (s *ReportService) Dashboard(ctx context.Context, collectorID int64, token string) (*dto.DashboardResponse, bool, error) {
	snapshot, err := s.discards.Load(ctx, collectorID, token)
	if err != nil {
		return nil, false, err
	}

	cacheKey := fmt.Sprintf("report:dashboard:%d:v%d", collectorID, snapshot.Version)
	var cached dto.DashboardResponse
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return &cached, true, nil
	}

	now := s.now()
	week := bucketWeekly(snapshot.Discards, now, s.weeklyWindow)
	payload := &dto.DashboardResponse{
		TotalsWindowDays: int(s.totalsWindow.Hours() / 24),
		Totals:           categoryTotals(snapshot.Discards, now, s.totalsWindow),
		Week:             week,
		Stacked:          stackedSeries(week),
		Area:             areaSeries(week),
	}

	if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.Int64("collector_id", collectorID), zap.Error(err))
	}
	return payload, false, nil
}

// History builds the yearly payload: twelve month buckets, whole-set totals
// and the record table narrowed by the filter. A month key in the criteria
// additionally echoes that bucket as the drill-down selection. Only the
// unfiltered payload is cached; filtered variants are cheap to recompute.
func (s *ReportService) History(ctx context.Context, collectorID int64, token string, criteria FilterCriteria) (*dto.HistoryResponse, bool, error) {
	snapshot, err := s.discards.Load(ctx, collectorID, token)
	if err != nil {
		return nil, false, err
	}

	cacheable := criteria.IsZero()
	cacheKey := fmt.Sprintf("report:history:%d:v%d", collectorID, snapshot.Version)
	if cacheable {
		var cached dto.HistoryResponse
		if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
			return &cached, true, nil
		}
	}

	months := bucketMonthly(snapshot.Discards)
	payload := &dto.HistoryResponse{
		Months:  months,
		Stacked: stackedSeries(months),
		Area:    areaSeries(months),
		Totals:  categoryTotals(snapshot.Discards, s.now(), 0),
		Records: dto.NewDiscardViews(applyFilter(snapshot.Discards, criteria)),
	}

	if criteria.BucketKey != "" && criteria.BucketView != BucketViewWeekly {
		payload.Selected = selectMonth(months, criteria.BucketKey)
	}

	if cacheable {
		if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL); err != nil {
			s.logger.Warn("history cache write failed", zap.Int64("collector_id", collectorID), zap.Error(err))
		}
	}
	return payload, false, nil
}

// MonthlyBuckets exposes the twelve-month aggregation for report exports.
func (s *ReportService) MonthlyBuckets(ctx context.Context, collectorID int64, token string) ([]dto.ReportBucket, error) {
	snapshot, err := s.discards.Load(ctx, collectorID, token)
	if err != nil {
		return nil, err
	}
	return bucketMonthly(snapshot.Discards), nil
}

// selectMonth finds the bucket for a month key. Unknown keys yield no
// selection rather than an error, mirroring a chart click that misses.
func selectMonth(months []dto.ReportBucket, key string) *dto.MonthSummary {
	for _, b := range months {
		if b.PeriodKey == key {
			return &dto.MonthSummary{
				PeriodKey: b.PeriodKey,
				Label:     b.Label,
				Pending:   b.Pending,
				Accepted:  b.Accepted,
				Received:  b.Received,
			}
		}
	}
	return nil
}
