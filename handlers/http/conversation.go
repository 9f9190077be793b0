package httpHandler

import (
	"net/http"

	"pathfinder-server/usecases"

	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	useCase *usecases.ConversationUseCase
}

func NewConversationHandler(useCase *usecases.ConversationUseCase) *ConversationHandler {
	return &ConversationHandler{useCase: useCase}
}

// CreateConversation handles POST /api/conversations
func (h *ConversationHandler) CreateConversation(c *gin.Context) {
	var input usecases.CreateConversationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	conv, err := h.useCase.Create(currentUser(c).ID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": conv})
}

// ListConversations handles GET /api/conversations
func (h *ConversationHandler) ListConversations(c *gin.Context) {
	convs, err := h.useCase.List(currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  convs,
		"count": len(convs),
	})
}

// GetConversation handles GET /api/conversations/:id
func (h *ConversationHandler) GetConversation(c *gin.Context) {
	conv, err := h.useCase.Get(currentUser(c).ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": conv})
}

// SendMessage handles POST /api/conversations/:id/messages
func (h *ConversationHandler) SendMessage(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	reply, conv, err := h.useCase.SendMessage(c.Request.Context(), currentUser(c).ID, c.Param("id"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply":        reply,
		"conversation": conv,
	})
}
