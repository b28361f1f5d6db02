package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/TheLastAirbenderAng/payment-calculator/models"
	"github.com/TheLastAirbenderAng/payment-calculator/utils"
)

func entryAt(total float64, paid bool) *models.Entry {
	return &models.Entry{
		ID:              utils.GenerateID(),
		Situation:       "Dinner",
		PayerName:       "Ana",
		Currency:        "PHP",
		CalculatedTotal: total,
		IsPaid:          paid,
		CreatedAt:       models.FlexTime{Time: time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)},
	}
}

func TestReportService_Project(t *testing.T) {
	service := NewReportService()

	entry := &models.Entry{
		Situation:       "Team lunch",
		PayerName:       "Ben",
		Currency:        "USD",
		CalculatedTotal: 57.5,
		IsPaid:          true,
		CreatedAt:       models.FlexTime{Time: time.Date(2024, 3, 15, 23, 45, 0, 0, time.UTC)},
		Items: []models.LineItem{
			{Name: "Pizza", Price: 20, Quantity: 2},
			{Name: "Soda", Price: 2.5, Quantity: 3},
		},
	}

	row := service.Project(entry)

	assert.Equal(t, "2024-03-15", row.Date)
	assert.Equal(t, "Team lunch", row.Situation)
	assert.Equal(t, "Ben", row.Payer)
	assert.Equal(t, 57.5, row.Total)
	assert.Equal(t, "USD", row.Currency)
	assert.Equal(t, "Paid", row.Status)
	assert.Equal(t, "Pizza (2), Soda (3)", row.Items)
}

func TestReportService_Project_MissingFieldsDegrade(t *testing.T) {
	service := NewReportService()

	// A nearly empty entry must still project, with defined defaults
	row := service.Project(&models.Entry{})

	assert.Equal(t, "", row.Date)
	assert.Equal(t, "", row.Situation)
	assert.Equal(t, "", row.Payer)
	assert.Equal(t, 0.0, row.Total)
	assert.Equal(t, "PHP", row.Currency)
	assert.Equal(t, "Unpaid", row.Status)
	assert.Equal(t, "", row.Items)
}

func TestReportService_Project_DateIsUtcRegardlessOfOffset(t *testing.T) {
	service := NewReportService()

	// The same instant, decoded from a wrapper object (UTC) and from an
	// offset-bearing RFC 3339 string, must project to the same date.
	var fromWrapper, fromOffset models.FlexTime
	assert.NoError(t, json.Unmarshal([]byte(`{"seconds":1710543600,"nanoseconds":0}`), &fromWrapper))
	assert.NoError(t, json.Unmarshal([]byte(`"2024-03-16T07:00:00+08:00"`), &fromOffset))
	assert.True(t, fromWrapper.Equal(fromOffset.Time))

	wrapperRow := service.Project(&models.Entry{CreatedAt: fromWrapper})
	offsetRow := service.Project(&models.Entry{CreatedAt: fromOffset})

	assert.Equal(t, "2024-03-15", wrapperRow.Date)
	assert.Equal(t, wrapperRow.Date, offsetRow.Date)

	// A session-zone time from the database normalizes the same way
	zoned := time.Date(2024, 3, 16, 7, 0, 0, 0, time.FixedZone("PHT", 8*3600))
	zonedRow := service.Project(&models.Entry{CreatedAt: models.FlexTime{Time: zoned}})
	assert.Equal(t, "2024-03-15", zonedRow.Date)
}

func TestReportService_FilterByStatus(t *testing.T) {
	service := NewReportService()

	entries := []*models.Entry{
		entryAt(100, false),
		entryAt(200, true),
		entryAt(150, false),
	}

	all := service.FilterByStatus(entries, utils.FilterAll)
	assert.Equal(t, entries, all, "all returns the input unchanged")

	paid := service.FilterByStatus(entries, utils.FilterPaid)
	unpaid := service.FilterByStatus(entries, utils.FilterUnpaid)
	assert.Len(t, paid, 1)
	assert.Len(t, unpaid, 2)

	// The two filtered views partition the collection
	assert.Equal(t, len(entries), len(paid)+len(unpaid))
}

func TestReportService_SumOutstanding(t *testing.T) {
	service := NewReportService()

	assert.Equal(t, 250.0, service.SumOutstanding([]*models.Entry{
		entryAt(100, false),
		entryAt(200, true),
		entryAt(150, false),
	}))

	assert.Equal(t, 0.0, service.SumOutstanding([]*models.Entry{
		entryAt(100, true),
		entryAt(200, true),
	}))

	assert.Equal(t, 0.0, service.SumOutstanding(nil))
}

func TestReportService_Summarize(t *testing.T) {
	service := NewReportService()

	entries := []*models.Entry{
		entryAt(100, false),
		entryAt(200, true),
		entryAt(150, false),
		entryAt(50, true),
	}

	summary := service.Summarize(entries)

	assert.Equal(t, 4, summary.TotalEntries)
	assert.Equal(t, 2, summary.UnpaidCount)
	assert.Equal(t, 2, summary.PaidCount)
	assert.Equal(t, summary.TotalEntries, summary.UnpaidCount+summary.PaidCount)
	assert.Equal(t, 250.0, summary.TotalOwed)
	assert.Equal(t, 250.0, summary.TotalPaid)
	assert.Equal(t, summary.TotalOwed, service.SumOutstanding(entries))
}

func TestReportService_ProjectionAgreesWithFilterClassification(t *testing.T) {
	service := NewReportService()

	entries := []*models.Entry{entryAt(100, false), entryAt(200, true)}
	for _, entry := range entries {
		row := service.Project(entry)
		if row.Status == utils.StatusPaid {
			assert.Contains(t, service.FilterByStatus(entries, utils.FilterPaid), entry)
		} else {
			assert.Contains(t, service.FilterByStatus(entries, utils.FilterUnpaid), entry)
		}
	}
}
