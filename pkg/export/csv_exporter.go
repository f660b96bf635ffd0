package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Column describes one exported column. Width is a relative weight used by
// the PDF layout; zero means an even share.
type Column struct {
	Key   string
	Title string
	Width float64
}

// Dataset defines tabular export content.
type Dataset struct {
	Columns []Column
	Rows    []map[string]string
}

func (d Dataset) titles() []string {
	titles := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		titles[i] = col.Title
		if titles[i] == "" {
			titles[i] = col.Key
		}
	}
	return titles
}

func (d Dataset) record(row map[string]string) []string {
	record := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		record[i] = row[col.Key]
	}
	return record
}

// CSVExporter renders Dataset records into CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the dataset.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	if len(data.Columns) == 0 {
		return nil, fmt.Errorf("csv requires at least one column")
	}
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(data.titles()); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range data.Rows {
		if err := writer.Write(data.record(row)); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
