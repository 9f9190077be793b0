package httpHandler

import (
	"net/http"
	"strings"

	"pathfinder-server/entities"
	"pathfinder-server/usecases"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// AuthMiddleware verifies the bearer token and loads the user onto the
// request context. Missing credentials are 401, bad tokens are 403, and a
// token whose user no longer exists is 401 again.
func AuthMiddleware(auth *usecases.AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			c.Abort()
			return
		}

		userID, err := auth.ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		user, err := auth.UserRepo.GetByID(userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user no longer exists"})
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// currentUser returns the user the middleware attached to the context.
func currentUser(c *gin.Context) *entities.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := value.(*entities.User)
	return user
}
