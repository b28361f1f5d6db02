package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/TheLastAirbenderAng/payment-calculator/auth"
	"github.com/TheLastAirbenderAng/payment-calculator/models"
	"github.com/TheLastAirbenderAng/payment-calculator/utils"
)

// GetTheme resolves the user's initial theme: persisted preference first,
// then the system signal, then light
func (h *Handler) GetTheme(c *gin.Context) {
	theme, err := h.Theme.ResolveInitial(auth.OwnerID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.ThemePreference{Theme: theme})
}

// SetTheme applies and persists a theme choice
func (h *Handler) SetTheme(c *gin.Context) {
	var request models.ThemePreference

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	applied, err := h.Theme.Apply(auth.OwnerID(c), request.Theme)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.ThemePreference{Theme: applied})
}
