package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheLastAirbenderAng/payment-calculator/auth"
	"github.com/TheLastAirbenderAng/payment-calculator/utils"
)

// ExportCsv streams the user's history as a CSV attachment
func (h *Handler) ExportCsv(c *gin.Context) {
	entries, err := h.Entries.ListEntries(auth.OwnerID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", h.Export.CsvFilename()))
	c.Status(http.StatusOK)

	if err := h.Export.WriteCsv(c.Writer, entries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write CSV file: " + err.Error()})
		return
	}
}

// ExportExcel streams the user's history as an XLSX attachment
func (h *Handler) ExportExcel(c *gin.Context) {
	entries, err := h.Entries.ListEntries(auth.OwnerID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	excelFile, filename, err := h.Excel.ExportHistory(entries)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export history: " + err.Error()})
		return
	}

	// Set headers for file download
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := excelFile.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file: " + err.Error()})
		return
	}
}
