package middleware

import (
	"net/http"

	"studybuddy/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextUserKey   = "user"
	ContextUserIDKey = "user_id"
)

// AuthMiddleware resolves the bearer token to a user. Every authentication
// failure gets the same 401 body; the cause is only logged.
func AuthMiddleware(guard *services.AccessGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := guard.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			zap.L().Debug("authentication failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			Unauthorized(c)
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

// Unauthorized aborts with the uniform authentication failure response.
func Unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
}
