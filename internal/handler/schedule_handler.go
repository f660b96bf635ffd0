package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-schedule-api/internal/dto"
	"github.com/noah-isme/sma-schedule-api/internal/middleware"
	"github.com/noah-isme/sma-schedule-api/internal/models"
	"github.com/noah-isme/sma-schedule-api/internal/service"
	"github.com/noah-isme/sma-schedule-api/pkg/response"
)

type scheduleQueryService interface {
	Filterable(kind models.ScheduleKind) []string
	ListGeneral(ctx context.Context, q dto.ScheduleListQuery) ([]models.ScheduleEntry, *models.Pagination, error)
	ListTeacher(ctx context.Context, teacherID string, q dto.ScheduleListQuery) ([]models.TeacherScheduleEntry, *models.Pagination, error)
	FilterOptions(ctx context.Context, kind models.ScheduleKind, teacherID string) (*dto.FilterOptionsResponse, error)
	Export(ctx context.Context, kind models.ScheduleKind, teacherID string, q dto.ScheduleListQuery, format service.ExportFormat) (*service.ExportFile, error)
}

// ScheduleHandler serves stateless schedule listings.
type ScheduleHandler struct {
	service scheduleQueryService
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(svc scheduleQueryService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// List godoc
// @Summary List the general schedule
// @Tags Schedules
// @Produce json
// @Param search query string false "Case-insensitive text search"
// @Param subject query string false "Exact subject"
// @Param faculty query string false "Exact faculty"
// @Param class_name query string false "Exact class"
// @Param batch query string false "Exact batch"
// @Param room query string false "Exact room"
// @Param mode query string false "online or offline"
// @Param status query string false "scheduled, completed or cancelled"
// @Param from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param sort query string false "Sort field"
// @Param order query string false "asc or desc"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /schedules [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	q, err := parseListQuery(c, h.service.Filterable(models.ScheduleKindGeneral))
	if err != nil {
		response.Error(c, err)
		return
	}
	items, pagination, err := h.service.ListGeneral(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetMeta(c, "kind", models.ScheduleKindGeneral)
	response.JSON(c, http.StatusOK, items, pagination, middleware.ExtractMeta(c))
}

// Filters godoc
// @Summary List filter options of the general schedule
// @Tags Schedules
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedules/filters [get]
func (h *ScheduleHandler) Filters(c *gin.Context) {
	options, err := h.service.FilterOptions(c.Request.Context(), models.ScheduleKindGeneral, "")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, options, nil)
}

// Export godoc
// @Summary Export the filtered general schedule
// @Tags Schedules
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Router /schedules/export [get]
func (h *ScheduleHandler) Export(c *gin.Context) {
	h.export(c, models.ScheduleKindGeneral, "")
}

// ListTeacher godoc
// @Summary List a teacher's schedule
// @Description Teachers see their own entries. Admins may pass teacherId or omit it for every teacher.
// @Tags Schedules
// @Produce json
// @Security BearerAuth
// @Param teacherId query string false "Teacher (admins only)"
// @Param search query string false "Case-insensitive text search"
// @Param subject query string false "Exact subject"
// @Param class_name query string false "Exact class"
// @Param batch query string false "Exact batch"
// @Param room query string false "Exact room"
// @Param mode query string false "online or offline"
// @Param status query string false "scheduled, completed or cancelled"
// @Param from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param sort query string false "Sort field"
// @Param order query string false "asc or desc"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /teacher/schedules [get]
func (h *ScheduleHandler) ListTeacher(c *gin.Context) {
	teacherID, err := service.ResolveTeacherScope(middleware.SessionFromContext(c), c.Query("teacherId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	q, err := parseListQuery(c, h.service.Filterable(models.ScheduleKindTeacher))
	if err != nil {
		response.Error(c, err)
		return
	}
	items, pagination, err := h.service.ListTeacher(c.Request.Context(), teacherID, q)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetMeta(c, "kind", models.ScheduleKindTeacher)
	if teacherID != "" {
		middleware.SetMeta(c, "teacher_id", teacherID)
	}
	response.JSON(c, http.StatusOK, items, pagination, middleware.ExtractMeta(c))
}

// TeacherFilters godoc
// @Summary List filter options of a teacher's schedule
// @Tags Schedules
// @Produce json
// @Security BearerAuth
// @Param teacherId query string false "Teacher (admins only)"
// @Success 200 {object} response.Envelope
// @Router /teacher/schedules/filters [get]
func (h *ScheduleHandler) TeacherFilters(c *gin.Context) {
	teacherID, err := service.ResolveTeacherScope(middleware.SessionFromContext(c), c.Query("teacherId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	options, err := h.service.FilterOptions(c.Request.Context(), models.ScheduleKindTeacher, teacherID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, options, nil)
}

// TeacherExport godoc
// @Summary Export a teacher's filtered schedule
// @Tags Schedules
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param teacherId query string false "Teacher (admins only)"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} binary
// @Router /teacher/schedules/export [get]
func (h *ScheduleHandler) TeacherExport(c *gin.Context) {
	teacherID, err := service.ResolveTeacherScope(middleware.SessionFromContext(c), c.Query("teacherId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.export(c, models.ScheduleKindTeacher, teacherID)
}

func (h *ScheduleHandler) export(c *gin.Context, kind models.ScheduleKind, teacherID string) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	q, err := parseListQuery(c, h.service.Filterable(kind))
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.service.Export(c.Request.Context(), kind, teacherID, q, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}
