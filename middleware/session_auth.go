package middleware

import (
	"net/http"
	"strings"

	"eventura/services/session"
	"eventura/utils"

	"github.com/gin-gonic/gin"
)

// SessionAuthMiddleware validates the bearer token and loads the session it
// names. The session identity lands in the context as email and role.
func SessionAuthMiddleware(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		email, role, err := utils.ExtractSessionClaims(tokenString)
		if err != nil || email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// The token must still name a live session; logout revokes it.
		sess, err := sessions.Get(c.Request.Context(), tokenString)
		if err == session.ErrNotFound {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session lookup failed"})
			return
		}
		if !strings.EqualFold(sess.Identity.Email, email) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
			return
		}

		c.Set("email", sess.Identity.Email)
		c.Set("role", role)
		c.Set("token", tokenString)
		c.Next()
	}
}

// AdminOnlyMiddleware gates a route group to administrator sessions. It runs
// after SessionAuthMiddleware.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.EqualFold(c.GetString("role"), "admin") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Administrator access required"})
			return
		}
		c.Next()
	}
}
