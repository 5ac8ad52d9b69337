package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/yildizm/bfhlctl/internal/bfhl"
)

// csvFormatter formats submission records as CSV
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(record *bfhl.Record) ([]byte, error) {
	return f.FormatList([]*bfhl.Record{record})
}

// FormatList renders records as CSV rows, one submission per row
func (f *csvFormatter) FormatList(records []*bfhl.Record) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	headers := []string{
		"Request ID",
		"Submitted",
		"Duration",
		"Endpoint",
		"Status",
		"Numbers",
		"Alphabets",
		"Highest Lowercase",
		"Error",
	}

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, record := range records {
		status := "ok"
		numbers := ""
		alphabets := ""
		highest := ""

		if record.Error != "" {
			status = "failed"
		}
		if record.Response != nil {
			numbers = strings.Join(record.Response.Numbers, " ")
			alphabets = strings.Join(record.Response.Alphabets, " ")
			highest = strings.Join(record.Response.HighestLowercaseAlphabet, " ")
		}

		row := []string{
			record.ID,
			formatCSVTime(record.SubmittedAt),
			record.Duration.String(),
			record.Endpoint,
			status,
			numbers,
			alphabets,
			highest,
			escapeCSVString(record.Error),
		}

		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}

// formatCSVTime formats time for CSV output
func formatCSVTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

// escapeCSVString removes newlines and truncates long messages
func escapeCSVString(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")

	if len(s) > 100 {
		s = s[:97] + "..."
	}

	return s
}
