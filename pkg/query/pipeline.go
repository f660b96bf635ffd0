// Package query implements the search/filter/sort/paginate pipeline used by
// every list screen. The pipeline is pure: it never mutates its input and
// holds no state between calls.
package query

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Fields describes how the pipeline reads a record type. Field access goes
// through explicit accessors so records never need reflection.
type Fields[T any] struct {
	// Text maps field names to string accessors. Every text field is sortable.
	Text map[string]func(T) string
	// DateField names the date accessor for sorting and range filtering.
	DateField string
	Date      func(T) time.Time
	// Search lists the text fields matched by Spec.Search.
	Search []string
	// Filterable lists the text fields accepted in Spec.Filters.
	Filterable []string
	// DefaultSort is used by DefaultSpec and State.ClearAll.
	DefaultSort Sort
}

// Result is one computed page plus its pagination metadata.
type Result[T any] struct {
	Items      []T
	TotalItems int
	TotalPages int
	Page       int
	PageSize   int
}

// Pipeline runs filter, sort and paginate over records of type T.
type Pipeline[T any] struct {
	fields     Fields[T]
	filterable map[string]struct{}
}

// NewPipeline builds a pipeline for the given accessors.
func NewPipeline[T any](fields Fields[T]) *Pipeline[T] {
	filterable := make(map[string]struct{}, len(fields.Filterable))
	for _, name := range fields.Filterable {
		filterable[name] = struct{}{}
	}
	return &Pipeline[T]{fields: fields, filterable: filterable}
}

// DefaultSpec returns the starting spec of a fresh list view.
func (p *Pipeline[T]) DefaultSpec(pageSize int) Spec {
	return Spec{
		Sort:     p.fields.DefaultSort,
		Page:     1,
		PageSize: pageSize,
	}
}

// Filterable lists the fields accepted as filters.
func (p *Pipeline[T]) Filterable() []string {
	return slices.Clone(p.fields.Filterable)
}

// IsFilterable reports whether field may be used in Spec.Filters.
func (p *Pipeline[T]) IsFilterable(field string) bool {
	_, ok := p.filterable[field]
	return ok
}

// IsSortable reports whether field may be used as the sort key.
func (p *Pipeline[T]) IsSortable(field string) bool {
	if field == "" {
		return false
	}
	if field == p.fields.DateField && p.fields.Date != nil {
		return true
	}
	_, ok := p.fields.Text[field]
	return ok
}

// Validate rejects specs the pipeline would otherwise tolerate silently.
// maxPageSize <= 0 disables the upper page size bound.
func (p *Pipeline[T]) Validate(spec Spec, maxPageSize int) error {
	if spec.Page < 1 {
		return ErrInvalidPage
	}
	if spec.PageSize < 1 || (maxPageSize > 0 && spec.PageSize > maxPageSize) {
		return ErrInvalidPageSize
	}
	for field := range spec.Filters {
		if !p.IsFilterable(field) {
			return fmt.Errorf("%w: filter %q", ErrUnknownField, field)
		}
	}
	if !p.IsSortable(spec.Sort.Field) {
		return fmt.Errorf("%w: sort %q", ErrUnknownField, spec.Sort.Field)
	}
	if spec.Sort.Direction != Asc && spec.Sort.Direction != Desc {
		return ErrInvalidDirection
	}
	if r := spec.DateRange; r.From != nil && r.To != nil && r.From.After(*r.To) {
		return ErrInvalidDateRange
	}
	return nil
}

// ApplyFilters keeps the records that satisfy every active predicate. Filters
// on fields without an accessor are ignored; Validate rejects them upstream.
func (p *Pipeline[T]) ApplyFilters(records []T, spec Spec) []T {
	search := strings.ToLower(spec.Search)
	out := make([]T, 0, len(records))
	for _, record := range records {
		if search != "" && !p.matchesSearch(record, search) {
			continue
		}
		if !p.matchesFilters(record, spec.Filters) {
			continue
		}
		if !p.withinRange(record, spec.DateRange) {
			continue
		}
		out = append(out, record)
	}
	return out
}

func (p *Pipeline[T]) matchesSearch(record T, needle string) bool {
	for _, name := range p.fields.Search {
		get, ok := p.fields.Text[name]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(get(record)), needle) {
			return true
		}
	}
	return false
}

func (p *Pipeline[T]) matchesFilters(record T, filters map[string]string) bool {
	for field, want := range filters {
		if want == "" {
			continue
		}
		get, ok := p.fields.Text[field]
		if !ok {
			continue
		}
		if get(record) != want {
			return false
		}
	}
	return true
}

// withinRange treats a record without a date as outside any bounded range.
func (p *Pipeline[T]) withinRange(record T, r DateRange) bool {
	if r.IsZero() || p.fields.Date == nil {
		return true
	}
	date := p.fields.Date(record)
	if date.IsZero() {
		return false
	}
	if r.From != nil && date.Before(*r.From) {
		return false
	}
	if r.To != nil && date.After(*r.To) {
		return false
	}
	return true
}

// ApplySort returns a stably sorted copy of records. Unknown fields leave the
// order untouched. Records without a date sort last in either direction.
func (p *Pipeline[T]) ApplySort(records []T, sort Sort) []T {
	out := slices.Clone(records)
	if out == nil {
		out = []T{}
	}
	cmp := p.comparator(sort)
	if cmp == nil {
		return out
	}
	slices.SortStableFunc(out, cmp)
	return out
}

func (p *Pipeline[T]) comparator(sort Sort) func(a, b T) int {
	sign := 1
	if sort.Direction == Desc {
		sign = -1
	}
	if sort.Field == p.fields.DateField && p.fields.Date != nil {
		date := p.fields.Date
		return func(a, b T) int {
			ta, tb := date(a), date(b)
			switch {
			case ta.IsZero() && tb.IsZero():
				return 0
			case ta.IsZero():
				return 1
			case tb.IsZero():
				return -1
			}
			return sign * ta.Compare(tb)
		}
	}
	get, ok := p.fields.Text[sort.Field]
	if !ok {
		return nil
	}
	return func(a, b T) int {
		return sign * strings.Compare(get(a), get(b))
	}
}

// Paginate slices out page (1-based) of pageSize records. Pages outside the
// data, or non-positive arguments, yield an empty slice.
func Paginate[T any](records []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(records) {
		return []T{}
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return slices.Clone(records[start:end])
}

// TotalPages is ceil(count/pageSize) with a floor of one page.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 || count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// Run filters, sorts and paginates records. The page in spec is used as is;
// callers clamp it when they want an in-range page.
func (p *Pipeline[T]) Run(records []T, spec Spec) Result[T] {
	matched := p.Sorted(records, spec)
	return Result[T]{
		Items:      Paginate(matched, spec.Page, spec.PageSize),
		TotalItems: len(matched),
		TotalPages: TotalPages(len(matched), spec.PageSize),
		Page:       spec.Page,
		PageSize:   spec.PageSize,
	}
}

// Sorted runs the filter and sort stages without paginating.
func (p *Pipeline[T]) Sorted(records []T, spec Spec) []T {
	return p.ApplySort(p.ApplyFilters(records, spec), spec.Sort)
}

// Distinct returns the sorted set of non-empty values a filterable field takes.
func (p *Pipeline[T]) Distinct(records []T, field string) []string {
	get, ok := p.fields.Text[field]
	if !ok || !p.IsFilterable(field) {
		return []string{}
	}
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, record := range records {
		v := get(record)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}
