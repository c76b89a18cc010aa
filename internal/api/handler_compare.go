package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wattcompare-backend/internal/compare"
)

type compareRequest struct {
	IDs []int64 `json:"ids" binding:"required"`
}

// CompareAppliances handles the POST /compare request: fetches the two
// referenced records and returns their annual cost, carbon footprint and the
// recommended pick.
func (h *Handler) CompareAppliances(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Provide exactly 2 IDs"})
		return
	}
	if len(req.IDs) != 2 || req.IDs[0] == req.IDs[1] {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Provide exactly 2 distinct IDs"})
		return
	}

	appliances, err := h.store.GetByIDs(c.Request.Context(), req.IDs[0], req.IDs[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(appliances) < 2 {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Appliances not found"})
		return
	}

	result := compare.Compare(appliances[0], appliances[1])
	c.JSON(http.StatusOK, gin.H{"comparison": result})
}
