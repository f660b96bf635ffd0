package query

import (
	"slices"
	"sync"
)

// Patch is a partial update applied by State.SetFilters. Nil members leave the
// current value untouched. An empty string in Filters clears that filter.
type Patch struct {
	Search    *string
	Filters   map[string]string
	DateRange *DateRange
}

// State owns one Spec and the source records of an interactive list view and
// recomputes the visible page after each mutation.
type State[T any] struct {
	mu          sync.Mutex
	pipeline    *Pipeline[T]
	records     []T
	spec        Spec
	maxPageSize int

	view  Result[T]
	stale bool
}

// NewState creates a view over records with the pipeline's default spec.
// maxPageSize <= 0 leaves page sizes unbounded.
func NewState[T any](pipeline *Pipeline[T], records []T, pageSize, maxPageSize int) (*State[T], error) {
	if pageSize < 1 || (maxPageSize > 0 && pageSize > maxPageSize) {
		return nil, ErrInvalidPageSize
	}
	return &State[T]{
		pipeline:    pipeline,
		records:     records,
		spec:        pipeline.DefaultSpec(pageSize),
		maxPageSize: maxPageSize,
		stale:       true,
	}, nil
}

// Spec returns a copy of the current spec.
func (s *State[T]) Spec() Spec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spec.Clone()
}

// View returns the current page.
func (s *State[T]) View() Result[T] {
	_, view := s.Snapshot()
	return view
}

// Snapshot returns the spec and the page it produces, read under one lock.
func (s *State[T]) Snapshot() (Spec, Result[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	view := s.refresh()
	view.Items = slices.Clone(view.Items)
	return s.spec.Clone(), view
}

// SetFilters merges patch into the current Spec and returns to page 1.
func (s *State[T]) SetFilters(patch Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.spec.Clone()
	if patch.Search != nil {
		next.Search = *patch.Search
	}
	for field, value := range patch.Filters {
		if !s.pipeline.IsFilterable(field) {
			return ErrUnknownField
		}
		if value == "" {
			delete(next.Filters, field)
			continue
		}
		if next.Filters == nil {
			next.Filters = make(map[string]string)
		}
		next.Filters[field] = value
	}
	if patch.DateRange != nil {
		r := *patch.DateRange
		if r.From != nil && r.To != nil && r.From.After(*r.To) {
			return ErrInvalidDateRange
		}
		next.DateRange = Spec{DateRange: r}.Clone().DateRange
	}
	next.Page = 1

	s.spec = next
	s.stale = true
	return nil
}

// SetSort toggles the direction when field is already active and otherwise
// switches to field in ascending order.
func (s *State[T]) SetSort(field string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pipeline.IsSortable(field) {
		return ErrUnknownField
	}
	if s.spec.Sort.Field == field {
		s.spec.Sort.Direction = s.spec.Sort.Direction.Opposite()
	} else {
		s.spec.Sort = Sort{Field: field, Direction: Asc}
	}
	s.stale = true
	s.clampPage()
	return nil
}

// ClearAll restores the default search, filters, date range and sort. The
// page size survives.
func (s *State[T]) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.spec = s.pipeline.DefaultSpec(s.spec.PageSize)
	s.stale = true
}

// SetPage moves to page n, clamped to [1, TotalPages].
func (s *State[T]) SetPage(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.spec.Page = n
	s.stale = true
	s.clampPage()
}

// SetPageSize changes the page size and returns to page 1.
func (s *State[T]) SetPageSize(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < 1 || (s.maxPageSize > 0 && n > s.maxPageSize) {
		return ErrInvalidPageSize
	}
	s.spec.PageSize = n
	s.spec.Page = 1
	s.stale = true
	return nil
}

// SetRecords swaps the source records, keeping the Spec and clamping the page.
func (s *State[T]) SetRecords(records []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = records
	s.stale = true
	s.clampPage()
}

// clampPage must be called with mu held.
func (s *State[T]) clampPage() {
	total := s.refresh().TotalPages
	page := s.spec.Page
	if page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}
	if page != s.spec.Page {
		s.spec.Page = page
		s.stale = true
	}
}

// refresh must be called with mu held.
func (s *State[T]) refresh() Result[T] {
	if s.stale {
		s.view = s.pipeline.Run(s.records, s.spec)
		s.stale = false
	}
	return s.view
}
