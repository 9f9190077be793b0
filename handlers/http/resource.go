package httpHandler

import (
	"net/http"

	"pathfinder-server/repositories"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	repo repositories.ResourceRepository
}

func NewResourceHandler(repo repositories.ResourceRepository) *ResourceHandler {
	return &ResourceHandler{repo: repo}
}

// ListResources handles GET /api/resources
func (h *ResourceHandler) ListResources(c *gin.Context) {
	resources, err := h.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve resources"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  resources,
		"count": len(resources),
	})
}
