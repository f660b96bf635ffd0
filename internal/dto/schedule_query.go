package dto

import "github.com/noah-isme/sma-schedule-api/internal/models"

// ScheduleListQuery carries the raw list parameters of a schedule request.
type ScheduleListQuery struct {
	Search   string
	Filters  map[string]string
	From     string
	To       string
	Sort     string
	Order    string
	Page     int
	PageSize int
}

// QuerySpecPayload mirrors the active search/filter/sort/page state of a view.
type QuerySpecPayload struct {
	Search   string            `json:"search"`
	Filters  map[string]string `json:"filters"`
	From     string            `json:"from,omitempty"`
	To       string            `json:"to,omitempty"`
	SortBy   string            `json:"sortBy"`
	Order    string            `json:"order"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// FilterOptionsResponse lists the selectable values of each filterable field.
type FilterOptionsResponse struct {
	Kind    models.ScheduleKind `json:"kind"`
	Options map[string][]string `json:"options"`
}

// CreateViewRequest opens an interactive query view.
type CreateViewRequest struct {
	Kind      models.ScheduleKind `json:"kind" validate:"required,oneof=general teacher"`
	TeacherID string              `json:"teacherId"`
	PageSize  int                 `json:"pageSize" validate:"omitempty,min=1"`
}

// UpdateViewFiltersRequest is a partial filter update. Omitted members stay
// as they are; an empty filter value clears that filter.
type UpdateViewFiltersRequest struct {
	Search  *string           `json:"search"`
	Filters map[string]string `json:"filters"`
	// DateRange replaces both bounds when present; empty strings open a side.
	DateRange *DateRangeRequest `json:"dateRange"`
}

// DateRangeRequest carries inclusive YYYY-MM-DD bounds.
type DateRangeRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SortViewRequest selects or toggles the sort field.
type SortViewRequest struct {
	Field string `json:"field" validate:"required"`
}

// PageViewRequest moves a view to another page.
type PageViewRequest struct {
	Page int `json:"page"`
}

// PageSizeViewRequest changes the page size of a view.
type PageSizeViewRequest struct {
	PageSize int `json:"pageSize" validate:"required,min=1"`
}

// QueryViewResponse is the rendered state of an interactive view.
type QueryViewResponse struct {
	ID         string              `json:"id"`
	Kind       models.ScheduleKind `json:"kind"`
	TeacherID  string              `json:"teacherId,omitempty"`
	Spec       QuerySpecPayload    `json:"spec"`
	Items      interface{}         `json:"items"`
	Pagination models.Pagination   `json:"pagination"`
}
