package query

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lesson struct {
	ID      string
	Date    time.Time
	Subject string
	Topic   string
	Faculty string
}

var lessonFields = Fields[lesson]{
	Text: map[string]func(lesson) string{
		"id":      func(l lesson) string { return l.ID },
		"subject": func(l lesson) string { return l.Subject },
		"topic":   func(l lesson) string { return l.Topic },
		"faculty": func(l lesson) string { return l.Faculty },
	},
	DateField:   "date",
	Date:        func(l lesson) time.Time { return l.Date },
	Search:      []string{"subject", "topic", "faculty"},
	Filterable:  []string{"subject", "faculty"},
	DefaultSort: Sort{Field: "date", Direction: Asc},
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

// twelveLessons spreads 12 lessons over three days, 7 of them on algebra.
func twelveLessons() []lesson {
	topics := []string{
		"Algebra basics", "Algebra drills", "Poetry", "Poetry",
		"Algebra basics", "Algebra review", "Poetry", "Poetry",
		"Algebra basics", "Algebra drills", "Algebra quiz", "Poetry",
	}
	out := make([]lesson, 0, len(topics))
	for i, topic := range topics {
		out = append(out, lesson{
			ID:      fmt.Sprintf("r%d", i+1),
			Date:    day(1 + i/4),
			Subject: "Math",
			Topic:   topic,
			Faculty: "Dr. Rao",
		})
	}
	return out
}

func ids(items []lesson) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestPipelineSearchSortPaginateScenario(t *testing.T) {
	p := NewPipeline(lessonFields)
	spec := p.DefaultSpec(5)
	spec.Search = "ALGEBRA"
	spec.Sort = Sort{Field: "date", Direction: Desc}

	first := p.Run(twelveLessons(), spec)
	assert.Equal(t, 7, first.TotalItems)
	assert.Equal(t, 2, first.TotalPages)
	assert.Equal(t, []string{"r9", "r10", "r11", "r5", "r6"}, ids(first.Items))

	spec.Page = 2
	second := p.Run(twelveLessons(), spec)
	assert.Equal(t, []string{"r1", "r2"}, ids(second.Items))
}

func TestPipelineEmptyInput(t *testing.T) {
	p := NewPipeline(lessonFields)

	result := p.Run(nil, p.DefaultSpec(10))

	assert.Equal(t, 0, result.TotalItems)
	assert.Equal(t, 1, result.TotalPages)
	require.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
}

func TestPipelineIsIdempotent(t *testing.T) {
	p := NewPipeline(lessonFields)
	records := twelveLessons()
	spec := p.DefaultSpec(4)
	spec.Search = "poetry"
	spec.Sort = Sort{Field: "topic", Direction: Desc}

	assert.Equal(t, p.Run(records, spec), p.Run(records, spec))
	assert.Equal(t, twelveLessons(), records, "input must not be mutated")
}

func TestApplyFiltersConjunction(t *testing.T) {
	p := NewPipeline(lessonFields)
	records := twelveLessons()
	records[0].Faculty = "Ms. Lee"
	records[4].Faculty = "Ms. Lee"

	full := Spec{
		Search:    "algebra",
		Filters:   map[string]string{"faculty": "Ms. Lee"},
		DateRange: DateRange{From: ptr(day(2)), To: ptr(day(3))},
	}
	got := p.ApplyFilters(records, full)
	assert.Equal(t, []string{"r5"}, ids(got))

	for _, l := range got {
		assert.Contains(t, l.Topic, "Algebra")
		assert.Equal(t, "Ms. Lee", l.Faculty)
		assert.False(t, l.Date.Before(day(2)))
	}

	// dropping any predicate can only grow the result
	relaxed := []Spec{
		{Filters: full.Filters, DateRange: full.DateRange},
		{Search: full.Search, DateRange: full.DateRange},
		{Search: full.Search, Filters: full.Filters},
	}
	for _, spec := range relaxed {
		wider := ids(p.ApplyFilters(records, spec))
		assert.GreaterOrEqual(t, len(wider), len(got))
		assert.Subset(t, wider, ids(got))
	}
}

func TestApplyFiltersDateRangeIsInclusive(t *testing.T) {
	p := NewPipeline(lessonFields)

	got := p.ApplyFilters(twelveLessons(), Spec{DateRange: DateRange{From: ptr(day(2)), To: ptr(day(2))}})

	assert.Equal(t, []string{"r5", "r6", "r7", "r8"}, ids(got))
}

func TestApplyFiltersOpenBounds(t *testing.T) {
	p := NewPipeline(lessonFields)

	from := p.ApplyFilters(twelveLessons(), Spec{DateRange: DateRange{From: ptr(day(3))}})
	to := p.ApplyFilters(twelveLessons(), Spec{DateRange: DateRange{To: ptr(day(1))}})

	assert.Len(t, from, 4)
	assert.Len(t, to, 4)
}

func TestApplyFiltersEmptyValueIsNoConstraint(t *testing.T) {
	p := NewPipeline(lessonFields)

	got := p.ApplyFilters(twelveLessons(), Spec{Filters: map[string]string{"subject": ""}})

	assert.Len(t, got, 12)
}

func TestApplyFiltersExactMatchIsCaseSensitive(t *testing.T) {
	p := NewPipeline(lessonFields)

	got := p.ApplyFilters(twelveLessons(), Spec{Filters: map[string]string{"subject": "math"}})

	assert.Empty(t, got)
}

func TestApplySortIsStable(t *testing.T) {
	p := NewPipeline(lessonFields)
	records := twelveLessons()

	asc := p.ApplySort(records, Sort{Field: "subject", Direction: Asc})
	desc := p.ApplySort(records, Sort{Field: "subject", Direction: Desc})

	// every subject is equal, so the original order must survive both ways
	assert.Equal(t, ids(records), ids(asc))
	assert.Equal(t, ids(records), ids(desc))

	byDate := p.ApplySort(records, Sort{Field: "date", Direction: Desc})
	assert.Equal(t, []string{"r9", "r10", "r11", "r12", "r5", "r6", "r7", "r8", "r1", "r2", "r3", "r4"}, ids(byDate))
}

func TestApplySortTextIsCaseSensitive(t *testing.T) {
	p := NewPipeline(lessonFields)
	records := []lesson{{ID: "a", Topic: "beta"}, {ID: "b", Topic: "Gamma"}, {ID: "c", Topic: "alpha"}}

	got := p.ApplySort(records, Sort{Field: "topic", Direction: Asc})

	assert.Equal(t, []string{"b", "c", "a"}, ids(got))
}

func TestApplySortMissingDatesLast(t *testing.T) {
	p := NewPipeline(lessonFields)
	records := []lesson{{ID: "none"}, {ID: "early", Date: day(1)}, {ID: "late", Date: day(5)}}

	asc := p.ApplySort(records, Sort{Field: "date", Direction: Asc})
	desc := p.ApplySort(records, Sort{Field: "date", Direction: Desc})

	assert.Equal(t, []string{"early", "late", "none"}, ids(asc))
	assert.Equal(t, []string{"late", "early", "none"}, ids(desc))
}

func TestApplyFiltersExcludesMissingDatesFromRange(t *testing.T) {
	p := NewPipeline(lessonFields)
	records := []lesson{{ID: "none"}, {ID: "dated", Date: day(2)}}

	assert.Len(t, p.ApplyFilters(records, Spec{}), 2)
	assert.Equal(t, []string{"dated"}, ids(p.ApplyFilters(records, Spec{DateRange: DateRange{To: ptr(day(9))}})))
}

func TestApplySortUnknownFieldKeepsOrder(t *testing.T) {
	p := NewPipeline(lessonFields)
	records := twelveLessons()

	got := p.ApplySort(records, Sort{Field: "room", Direction: Desc})

	assert.Equal(t, ids(records), ids(got))
}

func TestPaginateCoverage(t *testing.T) {
	p := NewPipeline(lessonFields)
	records := twelveLessons()
	sorted := p.ApplySort(records, Sort{Field: "topic", Direction: Asc})

	for size := 1; size <= 13; size++ {
		pages := TotalPages(len(sorted), size)
		var joined []lesson
		for page := 1; page <= pages; page++ {
			chunk := Paginate(sorted, page, size)
			assert.NotEmpty(t, chunk)
			joined = append(joined, chunk...)
		}
		assert.Equal(t, ids(sorted), ids(joined), "page size %d", size)
		assert.Empty(t, Paginate(sorted, pages+1, size))
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	records := twelveLessons()

	assert.Empty(t, Paginate(records, 4, 5))
	assert.Empty(t, Paginate(records, 0, 5))
	assert.Empty(t, Paginate(records, 1, 0))
	assert.Len(t, Paginate(records, 3, 5), 2)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 1, TotalPages(5, 0))
}

func TestDistinct(t *testing.T) {
	p := NewPipeline(lessonFields)
	records := twelveLessons()
	records[3].Faculty = "Ms. Lee"
	records[7].Faculty = ""

	assert.Equal(t, []string{"Dr. Rao", "Ms. Lee"}, p.Distinct(records, "faculty"))
	assert.Empty(t, p.Distinct(records, "topic"))
}

func TestValidate(t *testing.T) {
	p := NewPipeline(lessonFields)
	valid := p.DefaultSpec(10)
	require.NoError(t, p.Validate(valid, 100))

	cases := map[string]struct {
		mutate func(*Spec)
		want   error
	}{
		"page zero":        {func(s *Spec) { s.Page = 0 }, ErrInvalidPage},
		"page size zero":   {func(s *Spec) { s.PageSize = 0 }, ErrInvalidPageSize},
		"page size capped": {func(s *Spec) { s.PageSize = 101 }, ErrInvalidPageSize},
		"unknown filter":   {func(s *Spec) { s.Filters = map[string]string{"topic": "x"} }, ErrUnknownField},
		"unknown sort":     {func(s *Spec) { s.Sort.Field = "room" }, ErrUnknownField},
		"bad direction":    {func(s *Spec) { s.Sort.Direction = "up" }, ErrInvalidDirection},
		"inverted range": {func(s *Spec) {
			s.DateRange = DateRange{From: ptr(day(3)), To: ptr(day(1))}
		}, ErrInvalidDateRange},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			spec := valid.Clone()
			tc.mutate(&spec)
			assert.ErrorIs(t, p.Validate(spec, 100), tc.want)
		})
	}
}
