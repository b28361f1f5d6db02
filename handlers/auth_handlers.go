package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/TheLastAirbenderAng/payment-calculator/auth"
	"github.com/TheLastAirbenderAng/payment-calculator/models"
	"github.com/TheLastAirbenderAng/payment-calculator/utils"
)

// Register handles account creation
func (h *Handler) Register(c *gin.Context) {
	var request models.RegisterRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	user, err := h.Authenticator.Register(request.Email, request.DisplayName, request.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	token, err := h.JWT.Generate(user)
	if err != nil {
		utils.HandleError(c, utils.NewInternalError("Failed to create session"))
		return
	}

	utils.HandleSuccess(c, models.AuthResponse{Token: token, User: user})
}

// CurrentUser returns the account behind the authenticated session
func (h *Handler) CurrentUser(c *gin.Context) {
	user, err := h.Authenticator.CurrentUser(auth.OwnerID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, user)
}

// Login handles sign-in
func (h *Handler) Login(c *gin.Context) {
	var request models.LoginRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	user, err := h.Authenticator.Authenticate(request.Email, request.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	token, err := h.JWT.Generate(user)
	if err != nil {
		utils.HandleError(c, utils.NewInternalError("Failed to create session"))
		return
	}

	utils.HandleSuccess(c, models.AuthResponse{Token: token, User: user})
}
