package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/sma-schedule-api/internal/dto"
	"github.com/noah-isme/sma-schedule-api/internal/middleware"
	"github.com/noah-isme/sma-schedule-api/internal/models"
	"github.com/noah-isme/sma-schedule-api/pkg/response"
)

type queryViewService interface {
	Create(ctx context.Context, session models.Session, req dto.CreateViewRequest) (*dto.QueryViewResponse, error)
	Get(ctx context.Context, session models.Session, id string) (*dto.QueryViewResponse, error)
	SetFilters(ctx context.Context, session models.Session, id string, req dto.UpdateViewFiltersRequest) (*dto.QueryViewResponse, error)
	SetSort(ctx context.Context, session models.Session, id, field string) (*dto.QueryViewResponse, error)
	Clear(ctx context.Context, session models.Session, id string) (*dto.QueryViewResponse, error)
	SetPage(ctx context.Context, session models.Session, id string, page int) (*dto.QueryViewResponse, error)
	SetPageSize(ctx context.Context, session models.Session, id string, size int) (*dto.QueryViewResponse, error)
	Refresh(ctx context.Context, session models.Session, id string) (*dto.QueryViewResponse, error)
	Delete(ctx context.Context, session models.Session, id string) error
}

// QueryViewHandler exposes interactive list views over HTTP.
type QueryViewHandler struct {
	service  queryViewService
	validate *validator.Validate
}

// NewQueryViewHandler constructs a QueryViewHandler.
func NewQueryViewHandler(svc queryViewService, validate *validator.Validate) *QueryViewHandler {
	if validate == nil {
		validate = validator.New()
	}
	return &QueryViewHandler{service: svc, validate: validate}
}

func (h *QueryViewHandler) render(c *gin.Context, status int, view *dto.QueryViewResponse, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	pagination := view.Pagination
	response.JSON(c, status, view, &pagination)
}

// Create godoc
// @Summary Open an interactive schedule view
// @Tags Views
// @Accept json
// @Produce json
// @Param payload body dto.CreateViewRequest true "View kind and page size"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /views [post]
func (h *QueryViewHandler) Create(c *gin.Context) {
	var req dto.CreateViewRequest
	if err := bindJSON(c, h.validate, &req); err != nil {
		response.Error(c, err)
		return
	}
	view, err := h.service.Create(c.Request.Context(), middleware.SessionFromContext(c), req)
	h.render(c, http.StatusCreated, view, err)
}

// Get godoc
// @Summary Render the current page of a view
// @Tags Views
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /views/{id} [get]
func (h *QueryViewHandler) Get(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context(), middleware.SessionFromContext(c), c.Param("id"))
	h.render(c, http.StatusOK, view, err)
}

// SetFilters godoc
// @Summary Update search, filters or date range
// @Description Omitted members stay as they are. The view returns to page 1.
// @Tags Views
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param payload body dto.UpdateViewFiltersRequest true "Partial filter update"
// @Success 200 {object} response.Envelope
// @Router /views/{id}/filters [patch]
func (h *QueryViewHandler) SetFilters(c *gin.Context) {
	var req dto.UpdateViewFiltersRequest
	if err := bindJSON(c, h.validate, &req); err != nil {
		response.Error(c, err)
		return
	}
	view, err := h.service.SetFilters(c.Request.Context(), middleware.SessionFromContext(c), c.Param("id"), req)
	h.render(c, http.StatusOK, view, err)
}

// SetSort godoc
// @Summary Sort by a field, toggling direction when it is already active
// @Tags Views
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param payload body dto.SortViewRequest true "Sort field"
// @Success 200 {object} response.Envelope
// @Router /views/{id}/sort [post]
func (h *QueryViewHandler) SetSort(c *gin.Context) {
	var req dto.SortViewRequest
	if err := bindJSON(c, h.validate, &req); err != nil {
		response.Error(c, err)
		return
	}
	view, err := h.service.SetSort(c.Request.Context(), middleware.SessionFromContext(c), c.Param("id"), req.Field)
	h.render(c, http.StatusOK, view, err)
}

// Clear godoc
// @Summary Reset search, filters, date range and sort
// @Tags Views
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} response.Envelope
// @Router /views/{id}/clear [post]
func (h *QueryViewHandler) Clear(c *gin.Context) {
	view, err := h.service.Clear(c.Request.Context(), middleware.SessionFromContext(c), c.Param("id"))
	h.render(c, http.StatusOK, view, err)
}

// SetPage godoc
// @Summary Move to a page (clamped into range)
// @Tags Views
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param payload body dto.PageViewRequest true "Page"
// @Success 200 {object} response.Envelope
// @Router /views/{id}/page [put]
func (h *QueryViewHandler) SetPage(c *gin.Context) {
	var req dto.PageViewRequest
	if err := bindJSON(c, h.validate, &req); err != nil {
		response.Error(c, err)
		return
	}
	view, err := h.service.SetPage(c.Request.Context(), middleware.SessionFromContext(c), c.Param("id"), req.Page)
	h.render(c, http.StatusOK, view, err)
}

// SetPageSize godoc
// @Summary Change the page size
// @Tags Views
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param payload body dto.PageSizeViewRequest true "Page size"
// @Success 200 {object} response.Envelope
// @Router /views/{id}/page-size [put]
func (h *QueryViewHandler) SetPageSize(c *gin.Context) {
	var req dto.PageSizeViewRequest
	if err := bindJSON(c, h.validate, &req); err != nil {
		response.Error(c, err)
		return
	}
	view, err := h.service.SetPageSize(c.Request.Context(), middleware.SessionFromContext(c), c.Param("id"), req.PageSize)
	h.render(c, http.StatusOK, view, err)
}

// Refresh godoc
// @Summary Reload the view's records from the source
// @Tags Views
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} response.Envelope
// @Router /views/{id}/refresh [post]
func (h *QueryViewHandler) Refresh(c *gin.Context) {
	view, err := h.service.Refresh(c.Request.Context(), middleware.SessionFromContext(c), c.Param("id"))
	h.render(c, http.StatusOK, view, err)
}

// Delete godoc
// @Summary Discard a view
// @Tags Views
// @Param id path string true "View ID"
// @Success 204
// @Router /views/{id} [delete]
func (h *QueryViewHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.SessionFromContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
