package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/TheLastAirbenderAng/payment-calculator/models"
	"github.com/TheLastAirbenderAng/payment-calculator/utils"
)

// Calculate handles guest-mode calculation: no account, no persistence, no
// pending-debt term. Malformed numeric input degrades to 0 by policy, but
// an item set with nothing valid in it is still rejected.
func (h *Handler) Calculate(c *gin.Context) {
	var request models.CalculateRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if !h.Calculation.HasValidItems(request.Items) {
		utils.HandleError(c, utils.NewValidationError(utils.ErrNoValidItems))
		return
	}

	breakdown := h.Calculation.ComputeBreakdown(request.Items, request.Charges, 0)
	h.Calculation.WithApproxConversion(breakdown, request.Currency)

	utils.HandleSuccess(c, breakdown)
}
