package handlers

import (
	"log"
	"net/http"

	"pathfinder-server/usecases"
	"pathfinder-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler upgrades authenticated clients to a notification channel.
type WSHandler struct {
	mgr  *ws.Manager
	auth *usecases.AuthUseCase
}

func NewWSHandler(mgr *ws.Manager, auth *usecases.AuthUseCase) *WSHandler {
	return &WSHandler{mgr: mgr, auth: auth}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleUserWS upgrades to websocket after authenticating the token query
// param (browsers can't set headers on websocket requests).
// GET /ws?token=<jwt>
func (h *WSHandler) HandleUserWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token query parameter required"})
		return
	}

	userID, err := h.auth.ParseToken(token)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid or expired token"})
		return
	}

	user, err := h.auth.UserRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user no longer exists"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.mgr.Register(user.ID, conn)
	log.Printf("user connected: %s", user.ID)

	defer func() {
		h.mgr.Unregister(user.ID)
		log.Printf("user disconnected: %s", user.ID)
	}()

	// The channel is push-only; drain reads so pings and close frames are
	// processed, then exit on error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("user %s closed connection", user.ID)
			} else {
				log.Printf("read error from %s: %v", user.ID, err)
			}
			return
		}
	}
}

// GetConnectedUsers GET /api/users/connected
func (h *WSHandler) GetConnectedUsers(c *gin.Context) {
	users := h.mgr.List()
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}
