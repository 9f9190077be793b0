package httpHandler

import (
	"net/http"

	"pathfinder-server/usecases"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	useCase *usecases.AuthUseCase
}

func NewProfileHandler(useCase *usecases.AuthUseCase) *ProfileHandler {
	return &ProfileHandler{useCase: useCase}
}

// GetProfile handles GET /api/user/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": currentUser(c)})
}

// UpdateProfile handles PUT /api/user/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var input usecases.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	user, err := h.useCase.UpdateProfile(currentUser(c).ID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}
