package httpHandler

import (
	"errors"
	"log"
	"net/http"

	"pathfinder-server/usecases"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase errors onto HTTP status codes. Unknown errors
// are logged and surface as a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecases.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, usecases.ErrTokenInvalid):
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid or expired token"})
	case errors.Is(err, usecases.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, usecases.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
