package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Columns: []Column{
			{Key: "date", Title: "Date", Width: 1},
			{Key: "subject", Title: "Subject", Width: 2},
			{Key: "room"},
		},
		Rows: []map[string]string{
			{"date": "2024-03-04", "subject": "Physics, Mechanics", "room": "L1"},
			{"date": "2024-03-05", "subject": "Chemistry"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Subject,room", lines[0])
	assert.Equal(t, `2024-03-04,"Physics, Mechanics",L1`, lines[1])
	assert.Equal(t, "2024-03-05,Chemistry,", lines[2])
}

func TestCSVExporterRequiresColumns(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	data := sampleDataset()
	for i := 0; i < 80; i++ {
		data.Rows = append(data.Rows, map[string]string{"date": "2024-03-06", "subject": "Biology"})
	}
	out, err := NewPDFExporter().Render(data, "Schedule", "search: bio")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestColumnWidthsFillPage(t *testing.T) {
	widths := columnWidths(sampleDataset().Columns)
	require.Len(t, widths, 3)
	assert.InDelta(t, pdfPageWidth, widths[0]+widths[1]+widths[2], 0.001)
	assert.InDelta(t, widths[0]*2, widths[1], 0.001)
}
