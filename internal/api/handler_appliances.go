package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AddAppliance handles the POST /add_appliance request. Form fields name,
// price and energy_rate are read from the multipart body; when an image is
// attached, the label is recognized and the detected yearly kWh is stored
// with the record. Records are append-only: re-posting creates a duplicate.
func (h *Handler) AddAppliance(c *gin.Context) {
	name := c.PostForm("name")

	price, err := formFloat(c, "price")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid price value"})
		return
	}
	energyRate, err := formFloat(c, "energy_rate")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid energy_rate value"})
		return
	}

	var energyKwh *float64
	if fh, err := c.FormFile("image"); err == nil {
		energyKwh, _, err = h.extractFromImage(c.Request.Context(), fh)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	appliance, err := h.store.Insert(c.Request.Context(), name, energyKwh, price, energyRate)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Appliance added successfully",
		"data": gin.H{
			"name":        appliance.Name,
			"price":       appliance.Price,
			"energy_kwh":  appliance.EnergyKwh,
			"energy_rate": appliance.EnergyRate,
		},
	})
}

// ListAppliances handles the GET /list_appliances request.
func (h *Handler) ListAppliances(c *gin.Context) {
	appliances, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appliances)
}

// formFloat parses an optional numeric form field, defaulting to 0 when the
// field is absent or empty.
func formFloat(c *gin.Context, field string) (float64, error) {
	raw := c.PostForm(field)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}
