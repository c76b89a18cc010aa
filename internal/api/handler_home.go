package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHome handles the GET / request with a service banner and endpoint
// directory.
func (h *Handler) GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "WattCompare Backend is Live",
		"available_endpoints": gin.H{
			"POST /ocr":            "Upload image -> detect energy in kWh/kW",
			"POST /add_appliance":  "Save appliance data (with optional image)",
			"GET /list_appliances": "List all stored appliances",
			"POST /compare":        "Compare two appliances by ID",
			"GET /export_pdf":      "Export PDF summary report",
		},
	})
}
