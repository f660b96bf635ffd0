package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/noah-isme/sma-schedule-api/internal/models"
	appErrors "github.com/noah-isme/sma-schedule-api/pkg/errors"
)

// defaultLoadTimeout bounds one shared source load, which outlives the
// request that started it.
const defaultLoadTimeout = 30 * time.Second

type scheduleSource interface {
	ListEntries(ctx context.Context) ([]models.ScheduleEntry, error)
	ListTeacherEntries(ctx context.Context, teacherID string) ([]models.TeacherScheduleEntry, error)
}

// ScheduleSourceService loads whole schedule listings from the configured
// source, caching them and collapsing concurrent loads of the same listing.
// Returned slices are shared and must be treated as read-only.
type ScheduleSourceService struct {
	source  scheduleSource
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
	ttl     time.Duration
	group   singleflight.Group

	loadTimeout time.Duration
}

// NewScheduleSourceService constructs a ScheduleSourceService.
func NewScheduleSourceService(source scheduleSource, cache *CacheService, metrics *MetricsService, ttl time.Duration, logger *zap.Logger) *ScheduleSourceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleSourceService{source: source, cache: cache, metrics: metrics, ttl: ttl, logger: logger, loadTimeout: defaultLoadTimeout}
}

// Entries returns the general schedule.
func (s *ScheduleSourceService) Entries(ctx context.Context) ([]models.ScheduleEntry, error) {
	return loadListing(ctx, s, models.ScheduleKindGeneral, "", s.source.ListEntries)
}

// TeacherEntries returns one teacher's schedule, or all when teacherID is empty.
func (s *ScheduleSourceService) TeacherEntries(ctx context.Context, teacherID string) ([]models.TeacherScheduleEntry, error) {
	return loadListing(ctx, s, models.ScheduleKindTeacher, teacherID, func(ctx context.Context) ([]models.TeacherScheduleEntry, error) {
		return s.source.ListTeacherEntries(ctx, teacherID)
	})
}

// Invalidate drops cached arrays of kind so the next load hits the source.
func (s *ScheduleSourceService) Invalidate(ctx context.Context, kind models.ScheduleKind) error {
	return s.cache.Invalidate(ctx, ScheduleCachePattern(kind))
}

func loadListing[T any](ctx context.Context, s *ScheduleSourceService, kind models.ScheduleKind, teacherID string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	key := ScheduleCacheKey(kind, teacherID)

	var cached []T
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	// The shared load is detached from every caller; a caller stops waiting
	// only when its own context ends.
	ch := s.group.DoChan(key, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.loadTimeout)
		defer cancel()

		start := time.Now()
		records, err := fetch(loadCtx)
		s.metrics.ObserveSourceLoad(kind, time.Since(start))
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(loadCtx, key, records, s.ttl); err != nil {
			s.logger.Debug("schedule cache write skipped", zap.String("key", key), zap.Error(err))
		}
		return records, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			s.logger.Error("schedule source load failed", zap.String("kind", string(kind)), zap.Error(res.Err))
			return nil, appErrors.Wrap(res.Err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("failed to load %s schedules", kind))
		}
		if res.Shared {
			s.logger.Debug("schedule load shared", zap.String("key", key))
		}
		return res.Val.([]T), nil
	}
}
