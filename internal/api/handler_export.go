package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"wattcompare-backend/internal/report"
)

// ExportPDF handles the GET /export_pdf request: renders every stored record
// into the summary report and returns it as a download.
func (h *Handler) ExportPDF(c *gin.Context) {
	appliances, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pdfBytes, err := h.report.Render(appliances)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", report.Filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
