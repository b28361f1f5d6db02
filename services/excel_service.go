package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/TheLastAirbenderAng/payment-calculator/models"
)

// ExcelService handles Excel export of the entry history
type ExcelService struct {
	reports *ReportService
}

// NewExcelService creates a new Excel service
func NewExcelService(reports *ReportService) *ExcelService {
	return &ExcelService{reports: reports}
}

// ExportHistory generates an Excel workbook with the entry history and a
// summary sheet, plus the attachment filename.
func (s *ExcelService) ExportHistory(entries []*models.Entry) (*excelize.File, string, error) {
	f := excelize.NewFile()

	if err := s.createHistorySheet(f, entries); err != nil {
		return nil, "", fmt.Errorf("failed to create history sheet: %v", err)
	}
	if err := s.createSummarySheet(f, entries); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("PaymentHistory_Export_%s.xlsx", time.Now().Format("2006-01-02"))

	return f, filename, nil
}

// createHistorySheet writes one row per entry in report column order
func (s *ExcelService) createHistorySheet(f *excelize.File, entries []*models.Entry) error {
	sheetName := "History"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	headers := []string{"Date", "Situation", "Payer", "Total", "Currency", "Status", "Items"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
	}

	for i, entry := range entries {
		row := s.reports.Project(entry)
		values := []interface{}{
			row.Date, row.Situation, row.Payer, row.Total, row.Currency, row.Status, row.Items,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// createSummarySheet writes the aggregate stats
func (s *ExcelService) createSummarySheet(f *excelize.File, entries []*models.Entry) error {
	sheetName := "Summary"
	f.NewSheet(sheetName)

	summary := s.reports.Summarize(entries)
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total entries", summary.TotalEntries},
		{"Unpaid entries", summary.UnpaidCount},
		{"Paid entries", summary.PaidCount},
		{"Total owed", summary.TotalOwed},
		{"Total paid", summary.TotalPaid},
	}

	for r, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+1)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}

	return nil
}
