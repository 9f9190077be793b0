package handlers

import (
	"net/http"
	"time"

	"pathfinder-server/services"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	recorder *services.ActivityRecorder
}

func NewActivityHandler(recorder *services.ActivityRecorder) *ActivityHandler {
	return &ActivityHandler{recorder: recorder}
}

// FlushBuffer POST /api/analytics/flush
func (h *ActivityHandler) FlushBuffer(c *gin.Context) {
	flushed := h.recorder.Flush()
	c.JSON(http.StatusOK, gin.H{
		"status":  "flushed",
		"flushed": flushed,
	})
}

// GetBufferedEvents GET /api/analytics/buffer
func (h *ActivityHandler) GetBufferedEvents(c *gin.Context) {
	snapshot := h.recorder.Snapshot()

	result := make(map[string][]gin.H)
	total := 0
	for userID, points := range snapshot {
		events := make([]gin.H, 0, len(points))
		for _, p := range points {
			events = append(events, gin.H{
				"metric":    p.Event.Metric,
				"value":     p.Event.Value,
				"date":      p.Event.Date,
				"cached_at": p.CachedAt.Format(time.RFC3339),
			})
			total++
		}
		result[userID] = events
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"total_events": total,
		"buffered":     result,
	})
}

// GetBufferStats GET /api/analytics/buffer/stats
func (h *ActivityHandler) GetBufferStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"stats":  h.recorder.Stats(),
	})
}
