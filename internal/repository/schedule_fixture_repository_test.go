package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestScheduleFixtureRepositorySkipsMalformedDates(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	repo := NewScheduleFixtureRepository(ScheduleFixtureSet{
		General: []ScheduleFixture{
			{ID: "ok", Date: "2024-03-04", Subject: "Mathematics"},
			{ID: "bad", Date: "04/03/2024", Subject: "Physics"},
			{ID: "blank", Date: "", Subject: "Physics"},
		},
	}, zap.New(core))

	entries, err := repo.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ok", entries[0].ID)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), entries[0].Date)
	assert.Equal(t, 2, logs.Len())
}

func TestScheduleFixtureRepositoryTeacherScope(t *testing.T) {
	repo := NewScheduleFixtureRepository(DefaultScheduleFixtures(), nil)

	all, err := repo.ListTeacherEntries(context.Background(), "")
	require.NoError(t, err)
	rao, err := repo.ListTeacherEntries(context.Background(), "teacher-rao")
	require.NoError(t, err)

	assert.Len(t, all, 20)
	assert.Len(t, rao, 10)
	for _, entry := range rao {
		assert.Equal(t, "teacher-rao", entry.TeacherID)
	}
}

func TestScheduleFixtureRepositoryReturnsCopies(t *testing.T) {
	repo := NewScheduleFixtureRepository(DefaultScheduleFixtures(), nil)

	first, err := repo.ListEntries(context.Background())
	require.NoError(t, err)
	first[0].Topic = "changed"

	second, err := repo.ListEntries(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "changed", second[0].Topic)
}

func TestScheduleFixtureRepositoryHonoursContext(t *testing.T) {
	repo := NewScheduleFixtureRepository(DefaultScheduleFixtures(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListEntries(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadScheduleFixturesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"general":[{"id":"g1","date":"2024-05-01","subject":"Art"}],"teacher":[]}`), 0o600))

	set, err := LoadScheduleFixtures(path)
	require.NoError(t, err)
	require.Len(t, set.General, 1)
	assert.Equal(t, "Art", set.General[0].Subject)

	_, err = LoadScheduleFixtures(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	def, err := LoadScheduleFixtures("")
	require.NoError(t, err)
	assert.Len(t, def.General, 20)
}
