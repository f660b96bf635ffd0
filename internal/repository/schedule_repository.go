package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-schedule-api/internal/models"
)

// ScheduleRepository loads schedule entries from PostgreSQL.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository constructs a ScheduleRepository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// ListEntries returns the full general schedule in insertion order.
func (r *ScheduleRepository) ListEntries(ctx context.Context) ([]models.ScheduleEntry, error) {
	const query = `SELECT id, session_date, start_time, end_time, subject, topic, faculty, class_name, batch, room, mode, status FROM schedule_entries ORDER BY position, id`
	entries := make([]models.ScheduleEntry, 0)
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("list schedule entries: %w", err)
	}
	for i := range entries {
		entries[i].Date = models.TruncateDay(entries[i].Date)
	}
	return entries, nil
}

// ListTeacherEntries returns one teacher's schedule, or every teacher's when
// teacherID is empty.
func (r *ScheduleRepository) ListTeacherEntries(ctx context.Context, teacherID string) ([]models.TeacherScheduleEntry, error) {
	query := `SELECT id, teacher_id, session_date, start_time, end_time, subject, topic, class_name, batch, room, mode, status FROM teacher_schedule_entries`
	var args []interface{}
	if teacherID != "" {
		query += ` WHERE teacher_id = $1`
		args = append(args, teacherID)
	}
	query += ` ORDER BY position, id`

	entries := make([]models.TeacherScheduleEntry, 0)
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("list teacher schedule entries: %w", err)
	}
	for i := range entries {
		entries[i].Date = models.TruncateDay(entries[i].Date)
	}
	return entries, nil
}
