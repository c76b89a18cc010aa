package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PostOCR handles the POST /ocr request: runs text recognition over an
// uploaded energy-label image and reports the detected yearly kWh figure.
func (h *Handler) PostOCR(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
		return
	}

	energyKwh, rawText, err := h.extractFromImage(c.Request.Context(), fh)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"energy_kwh": energyKwh,
		"raw_text":   rawText,
	})
}
