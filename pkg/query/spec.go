package query

import (
	"errors"
	"time"
)

// Direction is the ordering applied to the active sort field.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == Desc {
		return Asc
	}
	return Desc
}

// Sort selects the single active sort key.
type Sort struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// DateRange bounds records by their date. Both bounds are inclusive and a nil
// bound leaves that side open.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Spec is the combined search/filter/sort/pagination state.
type Spec struct {
	Search    string            `json:"search"`
	Filters   map[string]string `json:"filters,omitempty"`
	DateRange DateRange         `json:"date_range"`
	Sort      Sort              `json:"sort"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// Clone returns a deep copy so callers never share the filter map.
func (s Spec) Clone() Spec {
	out := s
	if s.Filters != nil {
		out.Filters = make(map[string]string, len(s.Filters))
		for k, v := range s.Filters {
			out.Filters[k] = v
		}
	}
	if s.DateRange.From != nil {
		from := *s.DateRange.From
		out.DateRange.From = &from
	}
	if s.DateRange.To != nil {
		to := *s.DateRange.To
		out.DateRange.To = &to
	}
	return out
}

// Validation errors returned by Pipeline.Validate and State mutators.
var (
	ErrInvalidPage      = errors.New("page must be at least 1")
	ErrInvalidPageSize  = errors.New("page size out of range")
	ErrUnknownField     = errors.New("unknown field")
	ErrInvalidDirection = errors.New("sort direction must be asc or desc")
	ErrInvalidDateRange = errors.New("date range start is after its end")
)
