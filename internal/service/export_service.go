package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-schedule-api/internal/models"
	appErrors "github.com/noah-isme/sma-schedule-api/pkg/errors"
	"github.com/noah-isme/sma-schedule-api/pkg/export"
	"github.com/noah-isme/sma-schedule-api/pkg/query"
)

// ExportFormat names a downloadable rendering.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ParseExportFormat accepts csv or pdf in any case; empty defaults to csv.
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ExportFormatCSV:
		return ExportFormatCSV, nil
	case ExportFormatPDF:
		return ExportFormatPDF, nil
	default:
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", raw))
	}
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title, subtitle string) ([]byte, error)
}

// ExportService turns filtered schedule listings into CSV or PDF files.
type ExportService struct {
	csv    csvRenderer
	pdf    pdfRenderer
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService constructs an ExportService. Nil renderers fall back to the defaults.
func NewExportService(csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{csv: csv, pdf: pdf, logger: logger, now: time.Now}
}

// Render encodes data in format. name seeds the download filename.
func (s *ExportService) Render(format ExportFormat, name, title string, spec query.Spec, data export.Dataset) (*ExportFile, error) {
	var (
		body        []byte
		err         error
		contentType string
	)
	switch format {
	case ExportFormatCSV:
		body, err = s.csv.Render(data)
		contentType = "text/csv"
	case ExportFormatPDF:
		body, err = s.pdf.Render(data, title, DescribeSpec(spec))
		contentType = "application/pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
	if err != nil {
		s.logger.Error("export render failed", zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return &ExportFile{
		Filename:    s.buildFilename(name, format),
		ContentType: contentType,
		Body:        body,
	}, nil
}

func (s *ExportService) buildFilename(name string, format ExportFormat) string {
	timestamp := s.now().UTC().Format("20060102_150405")
	return fmt.Sprintf("%s_%s.%s", sanitizeFilename(name), timestamp, format)
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "export"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".", "__", "_", "\"", "")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}

// DescribeSpec summarises the active search, filters, range and sort in one line.
func DescribeSpec(spec query.Spec) string {
	parts := make([]string, 0, 4)
	if spec.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", spec.Search))
	}
	if len(spec.Filters) > 0 {
		keys := make([]string, 0, len(spec.Filters))
		for k := range spec.Filters {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, spec.Filters[k]))
		}
	}
	if r := spec.DateRange; !r.IsZero() {
		from, to := "*", "*"
		if r.From != nil {
			from = r.From.Format(models.DateLayout)
		}
		if r.To != nil {
			to = r.To.Format(models.DateLayout)
		}
		parts = append(parts, fmt.Sprintf("dates %s..%s", from, to))
	}
	if spec.Sort.Field != "" {
		parts = append(parts, fmt.Sprintf("sorted by %s %s", spec.Sort.Field, spec.Sort.Direction))
	}
	return strings.Join(parts, "; ")
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(models.DateLayout)
}

// ScheduleDataset builds the export table of general schedule entries.
func ScheduleDataset(entries []models.ScheduleEntry) export.Dataset {
	rows := make([]map[string]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, map[string]string{
			FieldDate:      formatDay(e.Date),
			FieldStartTime: e.StartTime,
			"end_time":     e.EndTime,
			FieldSubject:   e.Subject,
			FieldTopic:     e.Topic,
			FieldFaculty:   e.Faculty,
			FieldClassName: e.ClassName,
			FieldBatch:     e.Batch,
			FieldRoom:      e.Room,
			FieldMode:      e.Mode,
			FieldStatus:    e.Status,
		})
	}
	return export.Dataset{
		Columns: []export.Column{
			{Key: FieldDate, Title: "Date", Width: 1.2},
			{Key: FieldStartTime, Title: "Start", Width: 0.8},
			{Key: "end_time", Title: "End", Width: 0.8},
			{Key: FieldSubject, Title: "Subject", Width: 1.6},
			{Key: FieldTopic, Title: "Topic", Width: 2},
			{Key: FieldFaculty, Title: "Faculty", Width: 1.5},
			{Key: FieldClassName, Title: "Class", Width: 1},
			{Key: FieldBatch, Title: "Batch", Width: 0.9},
			{Key: FieldRoom, Title: "Room", Width: 0.8},
			{Key: FieldMode, Title: "Mode", Width: 0.8},
			{Key: FieldStatus, Title: "Status", Width: 1},
		},
		Rows: rows,
	}
}

// TeacherScheduleDataset builds the export table of teacher schedule entries.
func TeacherScheduleDataset(entries []models.TeacherScheduleEntry) export.Dataset {
	rows := make([]map[string]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, map[string]string{
			"teacher_id":   e.TeacherID,
			FieldDate:      formatDay(e.Date),
			FieldStartTime: e.StartTime,
			"end_time":     e.EndTime,
			FieldSubject:   e.Subject,
			FieldTopic:     e.Topic,
			FieldClassName: e.ClassName,
			FieldBatch:     e.Batch,
			FieldRoom:      e.Room,
			FieldMode:      e.Mode,
			FieldStatus:    e.Status,
		})
	}
	return export.Dataset{
		Columns: []export.Column{
			{Key: "teacher_id", Title: "Teacher", Width: 1.3},
			{Key: FieldDate, Title: "Date", Width: 1.2},
			{Key: FieldStartTime, Title: "Start", Width: 0.8},
			{Key: "end_time", Title: "End", Width: 0.8},
			{Key: FieldSubject, Title: "Subject", Width: 1.6},
			{Key: FieldTopic, Title: "Topic", Width: 2},
			{Key: FieldClassName, Title: "Class", Width: 1},
			{Key: FieldBatch, Title: "Batch", Width: 0.9},
			{Key: FieldRoom, Title: "Room", Width: 0.8},
			{Key: FieldMode, Title: "Mode", Width: 0.8},
			{Key: FieldStatus, Title: "Status", Width: 1},
		},
		Rows: rows,
	}
}
