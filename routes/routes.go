package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/TheLastAirbenderAng/payment-calculator/auth"
	"github.com/TheLastAirbenderAng/payment-calculator/handlers"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, h *handlers.Handler) {
	v1 := router.Group("/api/v1")
	{
		// Public endpoints
		v1.POST("/auth/register", h.Register)
		v1.POST("/auth/login", h.Login)

		// Guest-mode calculation: no account, no persistence
		v1.POST("/calculate", h.Calculate)

		// Authenticated endpoints
		authed := v1.Group("")
		authed.Use(auth.RequireAuth(h.JWT))
		{
			authed.GET("/auth/me", h.CurrentUser)

			authed.POST("/entries", h.CreateEntry)
			authed.GET("/entries", h.ListEntries)
			authed.GET("/entries/summary", h.GetEntrySummary)
			authed.GET("/entries/export/csv", h.ExportCsv)
			authed.GET("/entries/export/xlsx", h.ExportExcel)
			authed.POST("/entries/import", h.ImportEntries)
			authed.GET("/entries/:id", h.GetEntry)
			authed.DELETE("/entries/:id", h.DeleteEntry)
			authed.POST("/entries/:id/paid", h.MarkEntryPaid)

			authed.GET("/preferences/theme", h.GetTheme)
			authed.PUT("/preferences/theme", h.SetTheme)
		}
	}
}
