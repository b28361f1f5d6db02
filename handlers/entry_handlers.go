package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheLastAirbenderAng/payment-calculator/auth"
	"github.com/TheLastAirbenderAng/payment-calculator/models"
	"github.com/TheLastAirbenderAng/payment-calculator/utils"
)

// CreateEntry saves a new entry for the authenticated user
func (h *Handler) CreateEntry(c *gin.Context) {
	var request models.CreateEntryRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	entry, breakdown, err := h.Entries.CreateEntry(auth.OwnerID(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.CreateEntryResponse{
		ID:        entry.ID,
		Breakdown: breakdown,
	})
}

// ListEntries lists the user's entries, newest first, optionally filtered
// by settlement status (?status=all|paid|unpaid)
func (h *Handler) ListEntries(c *gin.Context) {
	mode := c.DefaultQuery("status", utils.FilterAll)
	if !utils.IsValidFilter(mode) {
		utils.HandleError(c, utils.NewValidationError("status must be one of all, paid, unpaid"))
		return
	}

	entries, err := h.Entries.ListEntries(auth.OwnerID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, h.Reports.FilterByStatus(entries, mode))
}

// GetEntrySummary returns aggregate stats over the user's entries
func (h *Handler) GetEntrySummary(c *gin.Context) {
	entries, err := h.Entries.ListEntries(auth.OwnerID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, h.Reports.Summarize(entries))
}

// GetEntry returns a single entry
func (h *Handler) GetEntry(c *gin.Context) {
	entry, err := h.Entries.GetEntry(auth.OwnerID(c), c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, entry)
}

// DeleteEntry removes an entry
func (h *Handler) DeleteEntry(c *gin.Context) {
	if err := h.Entries.DeleteEntry(auth.OwnerID(c), c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, true)
}

// MarkEntryPaid marks an entry as settled
func (h *Handler) MarkEntryPaid(c *gin.Context) {
	entry, err := h.Entries.MarkEntryPaid(auth.OwnerID(c), c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, entry)
}

// ImportEntries bulk-imports entries from a legacy export
func (h *Handler) ImportEntries(c *gin.Context) {
	var request models.ImportEntriesRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	imported, err := h.Entries.ImportEntries(auth.OwnerID(c), request.Entries)
	if err != nil {
		// Entries stored before a mid-batch failure stay persisted; tell
		// the caller how far the import got.
		if imported > 0 {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":    "Import failed partway: " + err.Error(),
				"imported": imported,
			})
			return
		}
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.ImportEntriesResponse{Imported: imported})
}
