package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLessonState(t *testing.T, pageSize int) *State[lesson] {
	t.Helper()
	state, err := NewState(NewPipeline(lessonFields), twelveLessons(), pageSize, 50)
	require.NoError(t, err)
	return state
}

func TestNewStateRejectsBadPageSize(t *testing.T) {
	p := NewPipeline(lessonFields)

	_, err := NewState(p, nil, 0, 50)
	assert.ErrorIs(t, err, ErrInvalidPageSize)

	_, err = NewState(p, nil, 51, 50)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestStateDefaults(t *testing.T) {
	state := newLessonState(t, 5)

	spec := state.Spec()
	assert.Equal(t, "", spec.Search)
	assert.Empty(t, spec.Filters)
	assert.True(t, spec.DateRange.IsZero())
	assert.Equal(t, Sort{Field: "date", Direction: Asc}, spec.Sort)
	assert.Equal(t, 1, spec.Page)

	view := state.View()
	assert.Equal(t, 12, view.TotalItems)
	assert.Equal(t, 3, view.TotalPages)
	assert.Equal(t, []string{"r1", "r2", "r3", "r4", "r5"}, ids(view.Items))
}

func TestStateSetFiltersResetsPage(t *testing.T) {
	state := newLessonState(t, 5)
	state.SetPage(3)
	require.Equal(t, 3, state.Spec().Page)

	search := "algebra"
	require.NoError(t, state.SetFilters(Patch{Search: &search}))

	assert.Equal(t, 1, state.Spec().Page)
	assert.Equal(t, 7, state.View().TotalItems)
}

func TestStateSetFiltersMergesAndClears(t *testing.T) {
	state := newLessonState(t, 5)
	require.NoError(t, state.SetFilters(Patch{Filters: map[string]string{"subject": "Math", "faculty": "Dr. Rao"}}))
	require.NoError(t, state.SetFilters(Patch{Filters: map[string]string{"faculty": ""}, DateRange: &DateRange{From: ptr(day(3))}}))

	spec := state.Spec()
	assert.Equal(t, map[string]string{"subject": "Math"}, spec.Filters)
	require.NotNil(t, spec.DateRange.From)
	assert.Equal(t, day(3), *spec.DateRange.From)
	assert.Equal(t, 4, state.View().TotalItems)
}

func TestStateSetFiltersRejectsUnknownField(t *testing.T) {
	state := newLessonState(t, 5)

	err := state.SetFilters(Patch{Filters: map[string]string{"room": "A1"}})

	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Empty(t, state.Spec().Filters)
}

func TestStateSetFiltersRejectsInvertedRange(t *testing.T) {
	state := newLessonState(t, 5)

	err := state.SetFilters(Patch{DateRange: &DateRange{From: ptr(day(3)), To: ptr(day(1))}})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestStateSetSortTogglesSameField(t *testing.T) {
	state := newLessonState(t, 5)

	require.NoError(t, state.SetSort("subject"))
	assert.Equal(t, Sort{Field: "subject", Direction: Asc}, state.Spec().Sort)

	require.NoError(t, state.SetSort("subject"))
	assert.Equal(t, Sort{Field: "subject", Direction: Desc}, state.Spec().Sort)

	require.NoError(t, state.SetSort("subject"))
	assert.Equal(t, Sort{Field: "subject", Direction: Asc}, state.Spec().Sort)
}

func TestStateSetSortDefaultFieldFlips(t *testing.T) {
	state := newLessonState(t, 5)

	require.NoError(t, state.SetSort("date"))
	assert.Equal(t, Desc, state.Spec().Sort.Direction)
	assert.Equal(t, []string{"r9", "r10", "r11", "r12", "r5"}, ids(state.View().Items))

	require.NoError(t, state.SetSort("date"))
	assert.Equal(t, Asc, state.Spec().Sort.Direction)
}

func TestStateSetSortFieldSwitchStartsAscending(t *testing.T) {
	state := newLessonState(t, 5)
	require.NoError(t, state.SetSort("date"))
	require.Equal(t, Desc, state.Spec().Sort.Direction)

	require.NoError(t, state.SetSort("topic"))

	assert.Equal(t, Sort{Field: "topic", Direction: Asc}, state.Spec().Sort)
}

func TestStateSetSortUnknownField(t *testing.T) {
	state := newLessonState(t, 5)

	assert.ErrorIs(t, state.SetSort("room"), ErrUnknownField)
	assert.Equal(t, "date", state.Spec().Sort.Field)
}

func TestStateSetPageClamps(t *testing.T) {
	state := newLessonState(t, 5)

	state.SetPage(99)
	assert.Equal(t, 3, state.Spec().Page)
	assert.Equal(t, []string{"r11", "r12"}, ids(state.View().Items))

	state.SetPage(-4)
	assert.Equal(t, 1, state.Spec().Page)
}

func TestStateSetPageSizeResetsPage(t *testing.T) {
	state := newLessonState(t, 5)
	state.SetPage(2)

	require.NoError(t, state.SetPageSize(4))

	spec := state.Spec()
	assert.Equal(t, 1, spec.Page)
	assert.Equal(t, 4, spec.PageSize)
	assert.Equal(t, 3, state.View().TotalPages)

	assert.ErrorIs(t, state.SetPageSize(0), ErrInvalidPageSize)
	assert.ErrorIs(t, state.SetPageSize(51), ErrInvalidPageSize)
	assert.Equal(t, 4, state.Spec().PageSize)
}

func TestStateClearAllKeepsPageSize(t *testing.T) {
	state := newLessonState(t, 5)
	search := "poetry"
	require.NoError(t, state.SetFilters(Patch{Search: &search, Filters: map[string]string{"faculty": "Dr. Rao"}}))
	require.NoError(t, state.SetSort("topic"))
	require.NoError(t, state.SetPageSize(2))
	state.SetPage(2)

	state.ClearAll()

	spec := state.Spec()
	assert.Equal(t, "", spec.Search)
	assert.Empty(t, spec.Filters)
	assert.Equal(t, Sort{Field: "date", Direction: Asc}, spec.Sort)
	assert.Equal(t, 1, spec.Page)
	assert.Equal(t, 2, spec.PageSize)
}

func TestStateSetRecordsClampsPage(t *testing.T) {
	state := newLessonState(t, 5)
	state.SetPage(3)

	state.SetRecords(twelveLessons()[:4])

	assert.Equal(t, 1, state.Spec().Page)
	assert.Equal(t, 4, state.View().TotalItems)
}

func TestStateViewIsMemoisedAndIsolated(t *testing.T) {
	state := newLessonState(t, 5)

	first := state.View()
	first.Items[0].ID = "mutated"

	assert.Equal(t, "r1", state.View().Items[0].ID)
}

func TestStateSpecIsACopy(t *testing.T) {
	state := newLessonState(t, 5)
	require.NoError(t, state.SetFilters(Patch{Filters: map[string]string{"subject": "Math"}}))

	spec := state.Spec()
	spec.Filters["subject"] = "Art"

	assert.Equal(t, "Math", state.Spec().Filters["subject"])
}

func TestStateSnapshotMatchesSpecUnderConcurrentMutation(t *testing.T) {
	state := newLessonState(t, 2)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			assert.NoError(t, state.SetPageSize(2+i%3))
			state.SetPage(3)
		}
	}()

	for i := 0; i < 500; i++ {
		spec, view := state.Snapshot()
		assert.Equal(t, spec.PageSize, view.PageSize)
		assert.Equal(t, spec.Page, view.Page)
		assert.LessOrEqual(t, len(view.Items), spec.PageSize)
	}
	<-done
}
