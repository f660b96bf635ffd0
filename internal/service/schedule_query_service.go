package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-schedule-api/internal/dto"
	"github.com/noah-isme/sma-schedule-api/internal/models"
	appErrors "github.com/noah-isme/sma-schedule-api/pkg/errors"
	"github.com/noah-isme/sma-schedule-api/pkg/query"
)

type scheduleLoader interface {
	Entries(ctx context.Context) ([]models.ScheduleEntry, error)
	TeacherEntries(ctx context.Context, teacherID string) ([]models.TeacherScheduleEntry, error)
}

// ScheduleQueryConfig bounds page sizes for schedule listings.
type ScheduleQueryConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

// ScheduleQueryService runs one-shot pipeline queries over schedule listings.
type ScheduleQueryService struct {
	loader   scheduleLoader
	general  *query.Pipeline[models.ScheduleEntry]
	teacher  *query.Pipeline[models.TeacherScheduleEntry]
	exporter *ExportService
	metrics  *MetricsService
	logger   *zap.Logger
	cfg      ScheduleQueryConfig
}

// NewScheduleQueryService constructs a ScheduleQueryService.
func NewScheduleQueryService(loader scheduleLoader, exporter *ExportService, metrics *MetricsService, cfg ScheduleQueryConfig, logger *zap.Logger) *ScheduleQueryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 10
	}
	if exporter == nil {
		exporter = NewExportService(nil, nil, logger)
	}
	return &ScheduleQueryService{
		loader:   loader,
		general:  NewSchedulePipeline(),
		teacher:  NewTeacherSchedulePipeline(),
		exporter: exporter,
		metrics:  metrics,
		logger:   logger,
		cfg:      cfg,
	}
}

// Filterable lists the filter fields of a listing.
func (s *ScheduleQueryService) Filterable(kind models.ScheduleKind) []string {
	if kind == models.ScheduleKindTeacher {
		return s.teacher.Filterable()
	}
	return s.general.Filterable()
}

// ListGeneral returns one page of the general schedule.
func (s *ScheduleQueryService) ListGeneral(ctx context.Context, q dto.ScheduleListQuery) ([]models.ScheduleEntry, *models.Pagination, error) {
	spec, err := BuildSpec(s.general, q, s.cfg)
	if err != nil {
		return nil, nil, err
	}
	records, err := s.loader.Entries(ctx)
	if err != nil {
		return nil, nil, err
	}
	result := runPipeline(s.metrics, models.ScheduleKindGeneral, s.general, records, spec)
	return result.Items, PaginationOf(result), nil
}

// ListTeacher returns one page of a teacher's schedule. An empty teacherID
// queries every teacher.
func (s *ScheduleQueryService) ListTeacher(ctx context.Context, teacherID string, q dto.ScheduleListQuery) ([]models.TeacherScheduleEntry, *models.Pagination, error) {
	spec, err := BuildSpec(s.teacher, q, s.cfg)
	if err != nil {
		return nil, nil, err
	}
	records, err := s.loader.TeacherEntries(ctx, teacherID)
	if err != nil {
		return nil, nil, err
	}
	result := runPipeline(s.metrics, models.ScheduleKindTeacher, s.teacher, records, spec)
	return result.Items, PaginationOf(result), nil
}

// FilterOptions lists the distinct values of every filterable field.
func (s *ScheduleQueryService) FilterOptions(ctx context.Context, kind models.ScheduleKind, teacherID string) (*dto.FilterOptionsResponse, error) {
	var options map[string][]string
	switch kind {
	case models.ScheduleKindGeneral:
		records, err := s.loader.Entries(ctx)
		if err != nil {
			return nil, err
		}
		options = distinctAll(s.general, records)
	case models.ScheduleKindTeacher:
		records, err := s.loader.TeacherEntries(ctx, teacherID)
		if err != nil {
			return nil, err
		}
		options = distinctAll(s.teacher, records)
	default:
		return nil, unknownKind(kind)
	}
	return &dto.FilterOptionsResponse{Kind: kind, Options: options}, nil
}

// Export renders the filtered and sorted listing without pagination.
func (s *ScheduleQueryService) Export(ctx context.Context, kind models.ScheduleKind, teacherID string, q dto.ScheduleListQuery, format ExportFormat) (*ExportFile, error) {
	q.Page, q.PageSize = 0, 0
	switch kind {
	case models.ScheduleKindGeneral:
		spec, err := BuildSpec(s.general, q, s.cfg)
		if err != nil {
			return nil, err
		}
		records, err := s.loader.Entries(ctx)
		if err != nil {
			return nil, err
		}
		rows := s.general.Sorted(records, spec)
		return s.exporter.Render(format, "schedules_general", "General Schedule", spec, ScheduleDataset(rows))
	case models.ScheduleKindTeacher:
		spec, err := BuildSpec(s.teacher, q, s.cfg)
		if err != nil {
			return nil, err
		}
		records, err := s.loader.TeacherEntries(ctx, teacherID)
		if err != nil {
			return nil, err
		}
		rows := s.teacher.Sorted(records, spec)
		name := "schedules_teacher"
		if teacherID != "" {
			name += "_" + teacherID
		}
		return s.exporter.Render(format, name, "Teacher Schedule", spec, TeacherScheduleDataset(rows))
	default:
		return nil, unknownKind(kind)
	}
}

// BuildSpec converts raw list parameters into a validated spec. Zero page
// values fall back to page 1 and the configured default size.
func BuildSpec[T any](pipeline *query.Pipeline[T], q dto.ScheduleListQuery, cfg ScheduleQueryConfig) (query.Spec, error) {
	spec := pipeline.DefaultSpec(cfg.DefaultPageSize)
	spec.Search = strings.TrimSpace(q.Search)

	for field, value := range q.Filters {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if spec.Filters == nil {
			spec.Filters = make(map[string]string, len(q.Filters))
		}
		spec.Filters[field] = value
	}

	var err error
	if spec.DateRange, err = ParseDateRange(q.From, q.To); err != nil {
		return query.Spec{}, err
	}

	if sortField := strings.TrimSpace(q.Sort); sortField != "" {
		spec.Sort = query.Sort{Field: sortField, Direction: query.Asc}
	}
	if order := strings.TrimSpace(q.Order); order != "" {
		spec.Sort.Direction = query.Direction(strings.ToLower(order))
	}
	if q.Page != 0 {
		spec.Page = q.Page
	}
	if q.PageSize != 0 {
		spec.PageSize = q.PageSize
	}

	if err := pipeline.Validate(spec, cfg.MaxPageSize); err != nil {
		return query.Spec{}, validationError(err)
	}
	return spec, nil
}

// ParseDateRange parses optional YYYY-MM-DD bounds.
func ParseDateRange(from, to string) (query.DateRange, error) {
	var r query.DateRange
	if strings.TrimSpace(from) != "" {
		day, err := models.ParseDay(from)
		if err != nil {
			return r, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "from must be YYYY-MM-DD")
		}
		r.From = &day
	}
	if strings.TrimSpace(to) != "" {
		day, err := models.ParseDay(to)
		if err != nil {
			return r, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "to must be YYYY-MM-DD")
		}
		r.To = &day
	}
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return r, validationError(query.ErrInvalidDateRange)
	}
	return r, nil
}

// PaginationOf converts a pipeline result into response pagination metadata.
func PaginationOf[T any](result query.Result[T]) *models.Pagination {
	return &models.Pagination{
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalCount: result.TotalItems,
		TotalPages: result.TotalPages,
	}
}

func runPipeline[T any](metrics *MetricsService, kind models.ScheduleKind, pipeline *query.Pipeline[T], records []T, spec query.Spec) query.Result[T] {
	start := time.Now()
	result := pipeline.Run(records, spec)
	metrics.ObservePipeline(kind, result.TotalItems, time.Since(start))
	return result
}

func distinctAll[T any](pipeline *query.Pipeline[T], records []T) map[string][]string {
	fields := pipeline.Filterable()
	options := make(map[string][]string, len(fields))
	for _, field := range fields {
		options[field] = pipeline.Distinct(records, field)
	}
	return options
}

// validationError maps query package errors to a 400 response.
func validationError(err error) error {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return err
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
}

func unknownKind(kind models.ScheduleKind) error {
	return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown schedule kind %q", kind))
}
