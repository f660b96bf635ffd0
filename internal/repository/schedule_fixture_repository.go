package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-schedule-api/internal/models"
)

// ScheduleFixture is the raw seed form of a schedule row. Dates stay strings
// until load so malformed rows can be reported instead of silently zeroed.
type ScheduleFixture struct {
	ID        string `json:"id"`
	TeacherID string `json:"teacher_id,omitempty"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Subject   string `json:"subject"`
	Topic     string `json:"topic"`
	Faculty   string `json:"faculty,omitempty"`
	ClassName string `json:"class_name"`
	Batch     string `json:"batch"`
	Room      string `json:"room"`
	Mode      string `json:"mode"`
	Status    string `json:"status"`
}

// ScheduleFixtureSet groups the seed rows for both listings.
type ScheduleFixtureSet struct {
	General []ScheduleFixture `json:"general"`
	Teacher []ScheduleFixture `json:"teacher"`
}

// ScheduleFixtureRepository serves schedules from in-memory seed data.
type ScheduleFixtureRepository struct {
	general []models.ScheduleEntry
	teacher []models.TeacherScheduleEntry
}

// NewScheduleFixtureRepository parses the fixture set. Rows whose date cannot
// be parsed are dropped and logged.
func NewScheduleFixtureRepository(set ScheduleFixtureSet, logger *zap.Logger) *ScheduleFixtureRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	repo := &ScheduleFixtureRepository{
		general: make([]models.ScheduleEntry, 0, len(set.General)),
		teacher: make([]models.TeacherScheduleEntry, 0, len(set.Teacher)),
	}
	for _, row := range set.General {
		date, err := models.ParseDay(row.Date)
		if err != nil {
			logger.Warn("skipping schedule fixture with malformed date", zap.String("id", row.ID), zap.Error(err))
			continue
		}
		repo.general = append(repo.general, models.ScheduleEntry{
			ID:        row.ID,
			Date:      date,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
			Subject:   row.Subject,
			Topic:     row.Topic,
			Faculty:   row.Faculty,
			ClassName: row.ClassName,
			Batch:     row.Batch,
			Room:      row.Room,
			Mode:      row.Mode,
			Status:    row.Status,
		})
	}
	for _, row := range set.Teacher {
		date, err := models.ParseDay(row.Date)
		if err != nil {
			logger.Warn("skipping teacher schedule fixture with malformed date", zap.String("id", row.ID), zap.Error(err))
			continue
		}
		repo.teacher = append(repo.teacher, models.TeacherScheduleEntry{
			ID:        row.ID,
			TeacherID: row.TeacherID,
			Date:      date,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
			Subject:   row.Subject,
			Topic:     row.Topic,
			ClassName: row.ClassName,
			Batch:     row.Batch,
			Room:      row.Room,
			Mode:      row.Mode,
			Status:    row.Status,
		})
	}
	return repo
}

// LoadScheduleFixtures reads a fixture set from a JSON file. An empty path
// returns the built-in seed data.
func LoadScheduleFixtures(path string) (ScheduleFixtureSet, error) {
	if path == "" {
		return DefaultScheduleFixtures(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScheduleFixtureSet{}, fmt.Errorf("read schedule fixtures: %w", err)
	}
	var set ScheduleFixtureSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return ScheduleFixtureSet{}, fmt.Errorf("decode schedule fixtures: %w", err)
	}
	return set, nil
}

// ListEntries returns a copy of the general schedule.
func (r *ScheduleFixtureRepository) ListEntries(ctx context.Context) ([]models.ScheduleEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.ScheduleEntry, len(r.general))
	copy(out, r.general)
	return out, nil
}

// ListTeacherEntries returns the schedule of one teacher, or every teacher
// when teacherID is empty.
func (r *ScheduleFixtureRepository) ListTeacherEntries(ctx context.Context, teacherID string) ([]models.TeacherScheduleEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.TeacherScheduleEntry, 0, len(r.teacher))
	for _, entry := range r.teacher {
		if teacherID == "" || entry.TeacherID == teacherID {
			out = append(out, entry)
		}
	}
	return out, nil
}
