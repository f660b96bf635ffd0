package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-day format used by record sources and query params.
const DateLayout = "2006-01-02"

// ScheduleKind selects which schedule listing a query runs against.
type ScheduleKind string

const (
	ScheduleKindGeneral ScheduleKind = "general"
	ScheduleKindTeacher ScheduleKind = "teacher"
)

// Valid reports whether k names a known listing.
func (k ScheduleKind) Valid() bool {
	return k == ScheduleKindGeneral || k == ScheduleKindTeacher
}

// ScheduleEntry is one class session on the general schedule.
type ScheduleEntry struct {
	ID        string    `db:"id" json:"id"`
	Date      time.Time `db:"session_date" json:"date"`
	StartTime string    `db:"start_time" json:"start_time"`
	EndTime   string    `db:"end_time" json:"end_time"`
	Subject   string    `db:"subject" json:"subject"`
	Topic     string    `db:"topic" json:"topic"`
	Faculty   string    `db:"faculty" json:"faculty"`
	ClassName string    `db:"class_name" json:"class_name"`
	Batch     string    `db:"batch" json:"batch"`
	Room      string    `db:"room" json:"room"`
	Mode      string    `db:"mode" json:"mode"`
	Status    string    `db:"status" json:"status"`
}

// TeacherScheduleEntry is one class session on a teacher's own schedule.
type TeacherScheduleEntry struct {
	ID        string    `db:"id" json:"id"`
	TeacherID string    `db:"teacher_id" json:"teacher_id"`
	Date      time.Time `db:"session_date" json:"date"`
	StartTime string    `db:"start_time" json:"start_time"`
	EndTime   string    `db:"end_time" json:"end_time"`
	Subject   string    `db:"subject" json:"subject"`
	Topic     string    `db:"topic" json:"topic"`
	ClassName string    `db:"class_name" json:"class_name"`
	Batch     string    `db:"batch" json:"batch"`
	Room      string    `db:"room" json:"room"`
	Mode      string    `db:"mode" json:"mode"`
	Status    string    `db:"status" json:"status"`
}

// ParseDay parses a YYYY-MM-DD calendar day as UTC midnight.
func ParseDay(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return t, nil
}

// TruncateDay drops the time of day, keeping the calendar date in UTC.
func TruncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
