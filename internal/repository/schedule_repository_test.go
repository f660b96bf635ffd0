package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduleRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestScheduleRepositoryListEntries(t *testing.T) {
	db, mock, cleanup := newScheduleRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	loc := time.FixedZone("WIB", 7*3600)
	rows := sqlmock.NewRows([]string{"id", "session_date", "start_time", "end_time", "subject", "topic", "faculty", "class_name", "batch", "room", "mode", "status"}).
		AddRow("s1", time.Date(2024, 3, 4, 0, 0, 0, 0, loc), "07:30", "09:00", "Mathematics", "Limits", "Dr. Rao", "XI IPA 1", "2024-A", "R-101", "offline", "scheduled").
		AddRow("s2", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "09:15", "10:45", "Physics", "Kinematics", "Mr. Santoso", "XI IPA 2", "2024-B", "R-102", "online", "completed")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, session_date, start_time, end_time, subject, topic, faculty, class_name, batch, room, mode, status FROM schedule_entries ORDER BY position, id")).
		WillReturnRows(rows)

	entries, err := repo.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "s1", entries[0].ID)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), entries[0].Date)
	assert.Equal(t, "Kinematics", entries[1].Topic)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryListTeacherEntriesScoped(t *testing.T) {
	db, mock, cleanup := newScheduleRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	rows := sqlmock.NewRows([]string{"id", "teacher_id", "session_date", "start_time", "end_time", "subject", "topic", "class_name", "batch", "room", "mode", "status"}).
		AddRow("t1", "teacher-rao", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), "07:30", "09:00", "Mathematics", "Limits", "XI IPA 1", "2024-A", "R-101", "offline", "scheduled")
	mock.ExpectQuery(regexp.QuoteMeta("FROM teacher_schedule_entries WHERE teacher_id = $1 ORDER BY position, id")).
		WithArgs("teacher-rao").
		WillReturnRows(rows)

	entries, err := repo.ListTeacherEntries(context.Background(), "teacher-rao")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "teacher-rao", entries[0].TeacherID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryListTeacherEntriesAll(t *testing.T) {
	db, mock, cleanup := newScheduleRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM teacher_schedule_entries ORDER BY position, id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "teacher_id", "session_date"}))

	entries, err := repo.ListTeacherEntries(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryListEntriesError(t *testing.T) {
	db, mock, cleanup := newScheduleRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	mock.ExpectQuery("FROM schedule_entries").WillReturnError(errors.New("connection reset"))

	_, err := repo.ListEntries(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list schedule entries")
}
