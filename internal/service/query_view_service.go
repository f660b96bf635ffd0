package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-schedule-api/internal/dto"
	"github.com/noah-isme/sma-schedule-api/internal/models"
	appErrors "github.com/noah-isme/sma-schedule-api/pkg/errors"
	"github.com/noah-isme/sma-schedule-api/pkg/query"
)

type sourceInvalidator interface {
	Invalidate(ctx context.Context, kind models.ScheduleKind) error
}

// QueryViewConfig tunes interactive view lifecycles.
type QueryViewConfig struct {
	DefaultPageSize int
	MaxPageSize     int
	IdleTTL         time.Duration
	MaxViews        int
}

// scheduleView is the type-erased surface of a query.State over one listing.
type scheduleView interface {
	kind() models.ScheduleKind
	render(metrics *MetricsService) (query.Spec, interface{}, *models.Pagination)
	setFilters(patch query.Patch) error
	setSort(field string) error
	clear()
	setPage(n int)
	setPageSize(n int) error
	reload(ctx context.Context) error
}

type typedView[T any] struct {
	listing models.ScheduleKind
	state   *query.State[T]
	load    func(ctx context.Context) ([]T, error)
}

func (v *typedView[T]) kind() models.ScheduleKind { return v.listing }
func (v *typedView[T]) clear()                    { v.state.ClearAll() }
func (v *typedView[T]) setPage(n int)             { v.state.SetPage(n) }

func (v *typedView[T]) render(metrics *MetricsService) (query.Spec, interface{}, *models.Pagination) {
	start := time.Now()
	spec, result := v.state.Snapshot()
	metrics.ObservePipeline(v.listing, result.TotalItems, time.Since(start))
	return spec, result.Items, PaginationOf(result)
}

func (v *typedView[T]) setFilters(patch query.Patch) error { return v.state.SetFilters(patch) }
func (v *typedView[T]) setSort(field string) error         { return v.state.SetSort(field) }
func (v *typedView[T]) setPageSize(n int) error            { return v.state.SetPageSize(n) }

func (v *typedView[T]) reload(ctx context.Context) error {
	records, err := v.load(ctx)
	if err != nil {
		return err
	}
	v.state.SetRecords(records)
	return nil
}

type viewEntry struct {
	id         string
	owner      string
	teacherID  string
	view       scheduleView
	lastAccess time.Time
}

// QueryViewService keeps interactive list views in memory. Each view wraps a
// query.State, so every mutation recomputes the visible page.
type QueryViewService struct {
	loader      scheduleLoader
	invalidator sourceInvalidator
	general     *query.Pipeline[models.ScheduleEntry]
	teacher     *query.Pipeline[models.TeacherScheduleEntry]
	metrics     *MetricsService
	logger      *zap.Logger
	cfg         QueryViewConfig
	now         func() time.Time

	mu    sync.Mutex
	views map[string]*viewEntry
}

// NewQueryViewService constructs a QueryViewService.
func NewQueryViewService(loader scheduleLoader, invalidator sourceInvalidator, metrics *MetricsService, cfg QueryViewConfig, logger *zap.Logger) *QueryViewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 10
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 30 * time.Minute
	}
	if cfg.MaxViews <= 0 {
		cfg.MaxViews = 1000
	}
	return &QueryViewService{
		loader:      loader,
		invalidator: invalidator,
		general:     NewSchedulePipeline(),
		teacher:     NewTeacherSchedulePipeline(),
		metrics:     metrics,
		logger:      logger,
		cfg:         cfg,
		now:         time.Now,
		views:       make(map[string]*viewEntry),
	}
}

// Create opens a view over the requested listing. Teacher views need an
// authenticated teacher or admin.
func (s *QueryViewService) Create(ctx context.Context, session models.Session, req dto.CreateViewRequest) (*dto.QueryViewResponse, error) {
	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = s.cfg.DefaultPageSize
	}

	var (
		view      scheduleView
		teacherID string
		err       error
	)
	switch req.Kind {
	case models.ScheduleKindGeneral:
		view, err = newTypedView(ctx, models.ScheduleKindGeneral, s.general, s.loader.Entries, pageSize, s.cfg.MaxPageSize)
	case models.ScheduleKindTeacher:
		teacherID, err = ResolveTeacherScope(session, req.TeacherID)
		if err != nil {
			return nil, err
		}
		scope := teacherID
		view, err = newTypedView(ctx, models.ScheduleKindTeacher, s.teacher, func(ctx context.Context) ([]models.TeacherScheduleEntry, error) {
			return s.loader.TeacherEntries(ctx, scope)
		}, pageSize, s.cfg.MaxPageSize)
	default:
		return nil, unknownKind(req.Kind)
	}
	if err != nil {
		return nil, err
	}

	entry := &viewEntry{
		id:         uuid.NewString(),
		owner:      session.UserID,
		teacherID:  teacherID,
		view:       view,
		lastAccess: s.now(),
	}

	s.mu.Lock()
	s.evictExpiredLocked()
	if len(s.views) >= s.cfg.MaxViews {
		s.evictOldestLocked()
	}
	s.views[entry.id] = entry
	count := len(s.views)
	s.mu.Unlock()

	s.metrics.SetActiveViews(count)
	s.logger.Debug("query view created", zap.String("view_id", entry.id), zap.String("kind", string(req.Kind)), zap.Int("active", count))
	return s.respond(entry), nil
}

func newTypedView[T any](ctx context.Context, kind models.ScheduleKind, pipeline *query.Pipeline[T], load func(context.Context) ([]T, error), pageSize, maxPageSize int) (scheduleView, error) {
	records, err := load(ctx)
	if err != nil {
		return nil, err
	}
	state, err := query.NewState(pipeline, records, pageSize, maxPageSize)
	if err != nil {
		return nil, validationError(err)
	}
	return &typedView[T]{listing: kind, state: state, load: load}, nil
}

// Get renders the current page of a view.
func (s *QueryViewService) Get(ctx context.Context, session models.Session, id string) (*dto.QueryViewResponse, error) {
	entry, err := s.lookup(session, id)
	if err != nil {
		return nil, err
	}
	return s.respond(entry), nil
}

// SetFilters merges search, filter and date range changes and returns to page 1.
func (s *QueryViewService) SetFilters(ctx context.Context, session models.Session, id string, req dto.UpdateViewFiltersRequest) (*dto.QueryViewResponse, error) {
	entry, err := s.lookup(session, id)
	if err != nil {
		return nil, err
	}
	patch := query.Patch{}
	if req.Search != nil {
		search := strings.TrimSpace(*req.Search)
		patch.Search = &search
	}
	if len(req.Filters) > 0 {
		patch.Filters = make(map[string]string, len(req.Filters))
		for field, value := range req.Filters {
			patch.Filters[field] = strings.TrimSpace(value)
		}
	}
	if req.DateRange != nil {
		r, err := ParseDateRange(req.DateRange.From, req.DateRange.To)
		if err != nil {
			return nil, err
		}
		patch.DateRange = &r
	}
	if err := entry.view.setFilters(patch); err != nil {
		return nil, validationError(err)
	}
	return s.respond(entry), nil
}

// SetSort toggles or switches the sort field.
func (s *QueryViewService) SetSort(ctx context.Context, session models.Session, id, field string) (*dto.QueryViewResponse, error) {
	entry, err := s.lookup(session, id)
	if err != nil {
		return nil, err
	}
	if err := entry.view.setSort(field); err != nil {
		return nil, validationError(err)
	}
	return s.respond(entry), nil
}

// Clear restores the default spec, keeping the page size.
func (s *QueryViewService) Clear(ctx context.Context, session models.Session, id string) (*dto.QueryViewResponse, error) {
	entry, err := s.lookup(session, id)
	if err != nil {
		return nil, err
	}
	entry.view.clear()
	return s.respond(entry), nil
}

// SetPage moves to a page, clamped into range.
func (s *QueryViewService) SetPage(ctx context.Context, session models.Session, id string, page int) (*dto.QueryViewResponse, error) {
	entry, err := s.lookup(session, id)
	if err != nil {
		return nil, err
	}
	entry.view.setPage(page)
	return s.respond(entry), nil
}

// SetPageSize changes the page size and returns to page 1.
func (s *QueryViewService) SetPageSize(ctx context.Context, session models.Session, id string, size int) (*dto.QueryViewResponse, error) {
	entry, err := s.lookup(session, id)
	if err != nil {
		return nil, err
	}
	if err := entry.view.setPageSize(size); err != nil {
		return nil, validationError(err)
	}
	return s.respond(entry), nil
}

// Refresh drops the cached listing and reloads the view's records.
func (s *QueryViewService) Refresh(ctx context.Context, session models.Session, id string) (*dto.QueryViewResponse, error) {
	entry, err := s.lookup(session, id)
	if err != nil {
		return nil, err
	}
	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx, entry.view.kind()); err != nil {
			s.logger.Warn("schedule cache invalidation failed", zap.String("view_id", id), zap.Error(err))
		}
	}
	if err := entry.view.reload(ctx); err != nil {
		return nil, err
	}
	return s.respond(entry), nil
}

// Delete discards a view.
func (s *QueryViewService) Delete(ctx context.Context, session models.Session, id string) error {
	if _, err := s.lookup(session, id); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.views, id)
	count := len(s.views)
	s.mu.Unlock()
	s.metrics.SetActiveViews(count)
	return nil
}

// EvictExpired drops views idle for longer than the configured TTL.
func (s *QueryViewService) EvictExpired(ctx context.Context) error {
	s.mu.Lock()
	removed := s.evictExpiredLocked()
	count := len(s.views)
	s.mu.Unlock()

	s.metrics.SetActiveViews(count)
	if removed > 0 {
		s.logger.Info("expired query views evicted", zap.Int("removed", removed), zap.Int("active", count))
	}
	return nil
}

// Count returns the number of live views.
func (s *QueryViewService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}

// lookup hides views owned by someone else behind the same not-found error.
func (s *QueryViewService) lookup(session models.Session, id string) (*viewEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.views[id]
	if !ok || s.expired(entry) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "view not found")
	}
	if entry.owner != "" && entry.owner != session.UserID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "view not found")
	}
	entry.lastAccess = s.now()
	return entry, nil
}

func (s *QueryViewService) expired(entry *viewEntry) bool {
	return s.now().Sub(entry.lastAccess) > s.cfg.IdleTTL
}

func (s *QueryViewService) evictExpiredLocked() int {
	removed := 0
	for id, entry := range s.views {
		if s.expired(entry) {
			delete(s.views, id)
			removed++
		}
	}
	return removed
}

func (s *QueryViewService) evictOldestLocked() {
	entries := make([]*viewEntry, 0, len(s.views))
	for _, entry := range s.views {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].lastAccess.Before(entries[j].lastAccess) })
	for _, entry := range entries[:len(entries)-s.cfg.MaxViews+1] {
		delete(s.views, entry.id)
		s.logger.Debug("query view evicted at capacity", zap.String("view_id", entry.id))
	}
}

func (s *QueryViewService) respond(entry *viewEntry) *dto.QueryViewResponse {
	spec, items, pagination := entry.view.render(s.metrics)
	return &dto.QueryViewResponse{
		ID:         entry.id,
		Kind:       entry.view.kind(),
		TeacherID:  entry.teacherID,
		Spec:       SpecPayload(spec),
		Items:      items,
		Pagination: *pagination,
	}
}

// SpecPayload converts a spec into its response shape.
func SpecPayload(spec query.Spec) dto.QuerySpecPayload {
	payload := dto.QuerySpecPayload{
		Search:   spec.Search,
		Filters:  make(map[string]string, len(spec.Filters)),
		SortBy:   spec.Sort.Field,
		Order:    string(spec.Sort.Direction),
		Page:     spec.Page,
		PageSize: spec.PageSize,
	}
	for k, v := range spec.Filters {
		payload.Filters[k] = v
	}
	if spec.DateRange.From != nil {
		payload.From = spec.DateRange.From.Format(models.DateLayout)
	}
	if spec.DateRange.To != nil {
		payload.To = spec.DateRange.To.Format(models.DateLayout)
	}
	return payload
}
