package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheLastAirbenderAng/payment-calculator/models"
)

func TestCalculationService_ComputeBreakdown_ItemsAndCharges(t *testing.T) {
	service := NewCalculationService()

	items := []models.LineItem{
		{Name: "Burger", Price: 150, Quantity: 2},
		{Name: "Fries", Price: 75, Quantity: 1},
	}
	charges := &models.AdditionalCharges{
		ServiceCharge: 50,
		DeliveryFee:   100,
		SplitAmong:    2,
	}

	result := service.ComputeBreakdown(items, charges, 0)

	assert.Equal(t, 375.0, result.ItemsSubtotal)
	assert.Equal(t, 75.0, result.ChargesShare)
	assert.Equal(t, 0.0, result.PendingDebt)
	assert.Equal(t, 450.0, result.Total)
}

func TestCalculationService_ComputeBreakdown_EmptyItems(t *testing.T) {
	service := NewCalculationService()

	charges := &models.AdditionalCharges{ServiceCharge: 50, DeliveryFee: 100, SplitAmong: 2}
	result := service.ComputeBreakdown([]models.LineItem{}, charges, 0)

	assert.Equal(t, 0.0, result.ItemsSubtotal)
	assert.Equal(t, 75.0, result.ChargesShare)
	assert.Equal(t, 75.0, result.Total)
}

func TestCalculationService_ComputeBreakdown_NoCharges(t *testing.T) {
	service := NewCalculationService()

	items := []models.LineItem{{Name: "Coffee", Price: 120, Quantity: 1}}
	result := service.ComputeBreakdown(items, nil, 0)

	assert.Equal(t, 0.0, result.ChargesShare)
	assert.Equal(t, 120.0, result.Total)
}

func TestCalculationService_ComputeBreakdown_SplitAmongDefaultsToOne(t *testing.T) {
	service := NewCalculationService()

	// A zero or missing split count must not divide by zero
	charges := &models.AdditionalCharges{ServiceCharge: 30, DeliveryFee: 20, SplitAmong: 0}
	result := service.ComputeBreakdown(nil, charges, 0)

	assert.Equal(t, 50.0, result.ChargesShare)
}

func TestCalculationService_ComputeBreakdown_MalformedInputDegradesToZero(t *testing.T) {
	service := NewCalculationService()

	// Numeric-string input arrives through the JSON boundary; malformed
	// values coerce to 0 and invalid items still contribute 0 instead of
	// being excluded.
	var request models.CalculateRequest
	raw := `{
		"items": [
			{"name": "Burger", "price": "150", "quantity": "2"},
			{"name": "", "price": "not a number", "quantity": ""},
			{"name": "Soda", "price": "40", "quantity": "0"}
		],
		"charges": {"serviceCharge": "50", "deliveryFee": "100", "splitAmong": "2"}
	}`
	assert.NoError(t, json.Unmarshal([]byte(raw), &request))

	result := service.ComputeBreakdown(request.Items, request.Charges, 0)

	// 150*2 + 0*0 + 40*0
	assert.Equal(t, 300.0, result.ItemsSubtotal)
	assert.Equal(t, 75.0, result.ChargesShare)
	assert.Equal(t, 375.0, result.Total)
}

func TestCalculationService_ComputeBreakdown_PendingDebtCarryOver(t *testing.T) {
	service := NewCalculationService()

	items := []models.LineItem{{Name: "Dinner", Price: 200, Quantity: 1}}
	result := service.ComputeBreakdown(items, nil, 350)

	assert.Equal(t, 350.0, result.PendingDebt)
	assert.Equal(t, 550.0, result.Total)

	// Pending debt is a signed carry-over
	negative := service.ComputeBreakdown(items, nil, -50)
	assert.Equal(t, 150.0, negative.Total)
}

func TestCalculationService_WithApproxConversion(t *testing.T) {
	service := NewCalculationService()

	usd := service.ComputeBreakdown([]models.LineItem{{Name: "Lunch", Price: 10, Quantity: 1}}, nil, 0)
	service.WithApproxConversion(usd, "USD")
	assert.NotNil(t, usd.ApproxPhpTotal)
	assert.Equal(t, 560.0, *usd.ApproxPhpTotal)

	php := service.ComputeBreakdown([]models.LineItem{{Name: "Lunch", Price: 10, Quantity: 1}}, nil, 0)
	service.WithApproxConversion(php, "PHP")
	assert.Nil(t, php.ApproxPhpTotal)
}

func TestCalculationService_HasValidItems(t *testing.T) {
	service := NewCalculationService()

	assert.False(t, service.HasValidItems(nil))
	assert.False(t, service.HasValidItems([]models.LineItem{}))

	// Name missing or blank: invalid regardless of price
	assert.False(t, service.HasValidItems([]models.LineItem{
		{Name: "", Price: 150},
		{Name: "  ", Price: 100},
	}))

	// One valid item among invalid ones is enough
	assert.True(t, service.HasValidItems([]models.LineItem{
		{Name: "", Price: 150},
		{Name: "Burger", Price: 150},
	}))

	// Positive price required
	assert.False(t, service.HasValidItems([]models.LineItem{
		{Name: "Burger", Price: 0},
	}))

	// Quantity is irrelevant to validity
	assert.True(t, service.HasValidItems([]models.LineItem{
		{Name: "Burger", Price: 150, Quantity: 0},
	}))
}

func TestCalculationService_ValidItems_FiltersPersistedSubset(t *testing.T) {
	service := NewCalculationService()

	items := []models.LineItem{
		{Name: "Burger", Price: 150, Quantity: 1},
		{Name: " ", Price: 100, Quantity: 1},
		{Name: "Water", Price: 0, Quantity: 1},
	}

	valid := service.ValidItems(items)
	assert.Len(t, valid, 1)
	assert.Equal(t, "Burger", valid[0].Name)
}
