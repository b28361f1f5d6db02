package services

import (
	"strings"

	"github.com/TheLastAirbenderAng/payment-calculator/models"
	"github.com/TheLastAirbenderAng/payment-calculator/utils"
)

// CalculationService computes expense breakdowns. Parsing is deliberately
// permissive: malformed numeric input has already degraded to 0 at the
// coercion boundary, so nothing here can fail. Validation is a separate,
// explicit question answered by HasValidItems.
type CalculationService struct{}

// NewCalculationService creates a new calculation service
func NewCalculationService() *CalculationService {
	return &CalculationService{}
}

// ComputeBreakdown calculates the transient breakdown for a set of line
// items, optional shared charges, and a signed pending-debt carry-over
// (0 for guest calculations). Invalid items contribute 0 to the subtotal
// rather than being excluded.
func (s *CalculationService) ComputeBreakdown(items []models.LineItem, charges *models.AdditionalCharges, pendingDebt float64) *models.Breakdown {
	var subtotal float64
	for _, item := range items {
		subtotal += float64(item.Price) * float64(item.Quantity)
	}

	var chargesShare float64
	if charges != nil {
		splitAmong := int(charges.SplitAmong)
		if splitAmong <= 0 {
			splitAmong = 1
		}
		chargesShare = (float64(charges.ServiceCharge) + float64(charges.DeliveryFee)) / float64(splitAmong)
	}

	return &models.Breakdown{
		ItemsSubtotal: utils.Round(subtotal),
		ChargesShare:  utils.Round(chargesShare),
		PendingDebt:   utils.Round(pendingDebt),
		Total:         utils.Round(subtotal + chargesShare + pendingDebt),
	}
}

// WithApproxConversion fills in the informational PHP figure for USD
// breakdowns, using the static approximate rate.
func (s *CalculationService) WithApproxConversion(breakdown *models.Breakdown, currency string) *models.Breakdown {
	if utils.NormalizeCurrency(currency) == utils.CurrencyUSD {
		approx := utils.Round(breakdown.Total * utils.UsdToPhpRate)
		breakdown.ApproxPhpTotal = &approx
	}
	return breakdown
}

// HasValidItems reports whether the item set is sufficient to proceed: at
// least one item with a non-blank name and a strictly positive price.
// Quantity plays no part in validity; a zero-quantity item is allowed and
// simply contributes nothing.
func (s *CalculationService) HasValidItems(items []models.LineItem) bool {
	for _, item := range items {
		if strings.TrimSpace(item.Name) != "" && float64(item.Price) > 0 {
			return true
		}
	}
	return false
}

// ValidItems returns the subset of items that pass the validity predicate.
// Only this subset is persisted.
func (s *CalculationService) ValidItems(items []models.LineItem) []models.LineItem {
	var valid []models.LineItem
	for _, item := range items {
		if strings.TrimSpace(item.Name) != "" && float64(item.Price) > 0 {
			valid = append(valid, item)
		}
	}
	return valid
}
