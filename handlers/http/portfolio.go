package httpHandler

import (
	"net/http"

	"pathfinder-server/usecases"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	useCase *usecases.PortfolioUseCase
}

func NewPortfolioHandler(useCase *usecases.PortfolioUseCase) *PortfolioHandler {
	return &PortfolioHandler{useCase: useCase}
}

// CreateProject handles POST /api/portfolio
func (h *PortfolioHandler) CreateProject(c *gin.Context) {
	var input usecases.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	project, err := h.useCase.Create(currentUser(c).ID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": project})
}

// ListProjects handles GET /api/portfolio
func (h *PortfolioHandler) ListProjects(c *gin.Context) {
	projects, err := h.useCase.List(currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  projects,
		"count": len(projects),
	})
}

// UpdateProject handles PATCH /api/portfolio/:id
func (h *PortfolioHandler) UpdateProject(c *gin.Context) {
	var input usecases.UpdateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	project, err := h.useCase.Update(currentUser(c).ID, c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": project})
}

// EvaluateProject handles POST /api/portfolio/:id/evaluate
func (h *PortfolioHandler) EvaluateProject(c *gin.Context) {
	project, err := h.useCase.Evaluate(c.Request.Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": project})
}
