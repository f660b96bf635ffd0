package service

import (
	"time"

	"github.com/noah-isme/sma-schedule-api/internal/models"
	"github.com/noah-isme/sma-schedule-api/pkg/query"
)

// Field names shared by both schedule listings.
const (
	FieldDate      = "date"
	FieldStartTime = "start_time"
	FieldSubject   = "subject"
	FieldTopic     = "topic"
	FieldFaculty   = "faculty"
	FieldClassName = "class_name"
	FieldBatch     = "batch"
	FieldRoom      = "room"
	FieldMode      = "mode"
	FieldStatus    = "status"
)

var defaultScheduleSort = query.Sort{Field: FieldDate, Direction: query.Asc}

// NewSchedulePipeline builds the pipeline for the general schedule.
func NewSchedulePipeline() *query.Pipeline[models.ScheduleEntry] {
	return query.NewPipeline(query.Fields[models.ScheduleEntry]{
		Text: map[string]func(models.ScheduleEntry) string{
			FieldStartTime: func(e models.ScheduleEntry) string { return e.StartTime },
			FieldSubject:   func(e models.ScheduleEntry) string { return e.Subject },
			FieldTopic:     func(e models.ScheduleEntry) string { return e.Topic },
			FieldFaculty:   func(e models.ScheduleEntry) string { return e.Faculty },
			FieldClassName: func(e models.ScheduleEntry) string { return e.ClassName },
			FieldBatch:     func(e models.ScheduleEntry) string { return e.Batch },
			FieldRoom:      func(e models.ScheduleEntry) string { return e.Room },
			FieldMode:      func(e models.ScheduleEntry) string { return e.Mode },
			FieldStatus:    func(e models.ScheduleEntry) string { return e.Status },
		},
		DateField:   FieldDate,
		Date:        func(e models.ScheduleEntry) time.Time { return e.Date },
		Search:      []string{FieldSubject, FieldTopic, FieldFaculty, FieldClassName, FieldBatch},
		Filterable:  []string{FieldSubject, FieldFaculty, FieldClassName, FieldBatch, FieldRoom, FieldMode, FieldStatus},
		DefaultSort: defaultScheduleSort,
	})
}

// NewTeacherSchedulePipeline builds the pipeline for teacher schedules.
func NewTeacherSchedulePipeline() *query.Pipeline[models.TeacherScheduleEntry] {
	return query.NewPipeline(query.Fields[models.TeacherScheduleEntry]{
		Text: map[string]func(models.TeacherScheduleEntry) string{
			FieldStartTime: func(e models.TeacherScheduleEntry) string { return e.StartTime },
			FieldSubject:   func(e models.TeacherScheduleEntry) string { return e.Subject },
			FieldTopic:     func(e models.TeacherScheduleEntry) string { return e.Topic },
			FieldClassName: func(e models.TeacherScheduleEntry) string { return e.ClassName },
			FieldBatch:     func(e models.TeacherScheduleEntry) string { return e.Batch },
			FieldRoom:      func(e models.TeacherScheduleEntry) string { return e.Room },
			FieldMode:      func(e models.TeacherScheduleEntry) string { return e.Mode },
			FieldStatus:    func(e models.TeacherScheduleEntry) string { return e.Status },
		},
		DateField:   FieldDate,
		Date:        func(e models.TeacherScheduleEntry) time.Time { return e.Date },
		Search:      []string{FieldSubject, FieldTopic, FieldClassName, FieldBatch},
		Filterable:  []string{FieldSubject, FieldClassName, FieldBatch, FieldRoom, FieldMode, FieldStatus},
		DefaultSort: defaultScheduleSort,
	})
}
