package services

import (
	"fmt"
	"strings"

	"github.com/TheLastAirbenderAng/payment-calculator/models"
	"github.com/TheLastAirbenderAng/payment-calculator/utils"
)

// ReportService derives display and report views from stored entries.
// Absent optional fields degrade to defined defaults; projection and
// aggregation never fail on a readable entry.
type ReportService struct{}

// NewReportService creates a new report service
func NewReportService() *ReportService {
	return &ReportService{}
}

// Project derives the report fields for one entry: ISO date, joined item
// list, and the literal Paid/Unpaid status.
func (s *ReportService) Project(entry *models.Entry) models.ReportRow {
	// The calendar date is always the UTC date: decoded timestamps may
	// carry an offset or the session zone, and one instant must project
	// to one date.
	date := ""
	if !entry.CreatedAt.IsZero() {
		date = entry.CreatedAt.UTC().Format("2006-01-02")
	}

	items := make([]string, 0, len(entry.Items))
	for _, item := range entry.Items {
		items = append(items, fmt.Sprintf("%s (%d)", item.Name, int(item.Quantity)))
	}

	status := utils.StatusUnpaid
	if entry.IsPaid {
		status = utils.StatusPaid
	}

	return models.ReportRow{
		Date:      date,
		Situation: entry.Situation,
		Payer:     entry.PayerName,
		Total:     entry.CalculatedTotal,
		Currency:  utils.NormalizeCurrency(entry.Currency),
		Status:    status,
		Items:     strings.Join(items, ", "),
	}
}

// FilterByStatus filters entries by settlement status. "all" returns the
// input unchanged; an unrecognized mode behaves like "all". Entries
// imported without a settlement flag were defaulted to unpaid at the
// deserialization boundary.
func (s *ReportService) FilterByStatus(entries []*models.Entry, mode string) []*models.Entry {
	switch mode {
	case utils.FilterPaid:
		return filter(entries, func(e *models.Entry) bool { return e.IsPaid })
	case utils.FilterUnpaid:
		return filter(entries, func(e *models.Entry) bool { return !e.IsPaid })
	default:
		return entries
	}
}

// SumOutstanding returns the sum of calculated totals over unpaid entries.
func (s *ReportService) SumOutstanding(entries []*models.Entry) float64 {
	var sum float64
	for _, entry := range entries {
		if !entry.IsPaid {
			sum += entry.CalculatedTotal
		}
	}
	return utils.Round(sum)
}

// Summarize returns aggregate counts and sums over the entries. The counts
// partition on the settlement flag, so unpaid + paid always equals total.
func (s *ReportService) Summarize(entries []*models.Entry) models.Summary {
	summary := models.Summary{TotalEntries: len(entries)}
	for _, entry := range entries {
		if entry.IsPaid {
			summary.PaidCount++
			summary.TotalPaid += entry.CalculatedTotal
		} else {
			summary.UnpaidCount++
			summary.TotalOwed += entry.CalculatedTotal
		}
	}
	summary.TotalOwed = utils.Round(summary.TotalOwed)
	summary.TotalPaid = utils.Round(summary.TotalPaid)
	return summary
}

func filter(entries []*models.Entry, keep func(*models.Entry) bool) []*models.Entry {
	filtered := make([]*models.Entry, 0, len(entries))
	for _, entry := range entries {
		if keep(entry) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
