package httpHandler

import (
	"net/http"

	"pathfinder-server/usecases"

	"github.com/gin-gonic/gin"
)

type PathStepHandler struct {
	useCase *usecases.CareerUseCase
}

func NewPathStepHandler(useCase *usecases.CareerUseCase) *PathStepHandler {
	return &PathStepHandler{useCase: useCase}
}

// UpdateStep handles PATCH /api/path-steps/:id
//
// Completing a step records the completion time and awards an achievement.
func (h *PathStepHandler) UpdateStep(c *gin.Context) {
	var input usecases.UpdateStepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	step, err := h.useCase.UpdateStep(currentUser(c).ID, c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": step})
}
