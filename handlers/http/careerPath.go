package httpHandler

import (
	"net/http"

	"pathfinder-server/usecases"

	"github.com/gin-gonic/gin"
)

type CareerPathHandler struct {
	useCase *usecases.CareerUseCase
}

func NewCareerPathHandler(useCase *usecases.CareerUseCase) *CareerPathHandler {
	return &CareerPathHandler{useCase: useCase}
}

// CreatePath handles POST /api/career-paths
func (h *CareerPathHandler) CreatePath(c *gin.Context) {
	var input usecases.CreatePathInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	path, err := h.useCase.CreatePath(c.Request.Context(), currentUser(c).ID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": path})
}

// ListPaths handles GET /api/career-paths
func (h *CareerPathHandler) ListPaths(c *gin.Context) {
	paths, err := h.useCase.ListPaths(currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  paths,
		"count": len(paths),
	})
}

// GetPath handles GET /api/career-paths/:id
func (h *CareerPathHandler) GetPath(c *gin.Context) {
	path, err := h.useCase.GetPath(currentUser(c).ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": path})
}

// UpdatePath handles PATCH /api/career-paths/:id
func (h *CareerPathHandler) UpdatePath(c *gin.Context) {
	var input usecases.UpdatePathInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	path, err := h.useCase.UpdatePath(currentUser(c).ID, c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": path})
}

// ListSteps handles GET /api/career-paths/:id/steps
func (h *CareerPathHandler) ListSteps(c *gin.Context) {
	steps, err := h.useCase.ListSteps(currentUser(c).ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  steps,
		"count": len(steps),
	})
}

// CreateStep handles POST /api/career-paths/:id/steps
func (h *CareerPathHandler) CreateStep(c *gin.Context) {
	var input usecases.CreateStepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	step, err := h.useCase.CreateStep(currentUser(c).ID, c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": step})
}

// ListAchievements handles GET /api/achievements
func (h *CareerPathHandler) ListAchievements(c *gin.Context) {
	achievements, err := h.useCase.ListAchievements(currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  achievements,
		"count": len(achievements),
	})
}
