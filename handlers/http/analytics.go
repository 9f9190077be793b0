package httpHandler

import (
	"net/http"
	"strconv"

	"pathfinder-server/usecases"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	useCase *usecases.AnalyticsUseCase
}

func NewAnalyticsHandler(useCase *usecases.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{useCase: useCase}
}

// GetWindow handles GET /api/analytics?days=N
func (h *AnalyticsHandler) GetWindow(c *gin.Context) {
	days := usecases.DefaultAnalyticsWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = parsed
	}

	rows, err := h.useCase.Window(currentUser(c).ID, days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  rows,
		"count": len(rows),
		"days":  days,
	})
}

// RecordEvent handles POST /api/analytics/events
func (h *AnalyticsHandler) RecordEvent(c *gin.Context) {
	var input usecases.RecordEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.useCase.RecordEvent(currentUser(c).ID, input); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "buffered"})
}
