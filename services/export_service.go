package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/TheLastAirbenderAng/payment-calculator/models"
)

// csvHeader is the fixed column order of the history export. The format is
// owned by this service byte-for-byte: comma-delimited, \n row separator,
// no trailing newline, header emitted even for an empty collection.
const csvHeader = "Date,Situation,Payer,Total,Currency,Status,Items"

// ExportService renders entry collections as CSV documents
type ExportService struct {
	reports *ReportService
}

// NewExportService creates a new export service
func NewExportService(reports *ReportService) *ExportService {
	return &ExportService{reports: reports}
}

// ToCsv converts entries into the CSV report. Each field is escaped
// independently: wrapped in double quotes, with internal quotes doubled,
// iff it contains a comma, a quote, or a newline.
func (s *ExportService) ToCsv(entries []*models.Entry) string {
	var b strings.Builder
	b.WriteString(csvHeader)

	for _, entry := range entries {
		row := s.reports.Project(entry)
		fields := []string{
			row.Date,
			row.Situation,
			row.Payer,
			formatTotal(row.Total),
			row.Currency,
			row.Status,
			row.Items,
		}
		b.WriteByte('\n')
		for i, field := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeCsvValue(field))
		}
	}
	return b.String()
}

// WriteCsv writes the CSV report to w. This is the download boundary: the
// method holds no resource beyond the call, so the caller's writer is the
// only thing that needs releasing.
func (s *ExportService) WriteCsv(w io.Writer, entries []*models.Entry) error {
	_, err := io.WriteString(w, s.ToCsv(entries))
	return err
}

// CsvFilename returns the attachment filename for a history export
func (s *ExportService) CsvFilename() string {
	return fmt.Sprintf("payment-history_%s.csv", time.Now().Format("2006-01-02"))
}

// escapeCsvValue applies the quoting rule to a single field
func escapeCsvValue(value string) string {
	if !strings.ContainsAny(value, ",\"\n") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// formatTotal stringifies a monetary total without a fixed number of
// decimals, so 100 renders as "100" and 57.5 as "57.5".
func formatTotal(total float64) string {
	return strconv.FormatFloat(total, 'f', -1, 64)
}
