package handlers

import (
	"eventura/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context, falling back to the
// shared application logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// sessionEmail returns the authenticated email set by the session middleware.
func sessionEmail(c *gin.Context) string {
	return c.GetString("email")
}

// sessionToken returns the raw bearer token set by the session middleware.
func sessionToken(c *gin.Context) string {
	return c.GetString("token")
}
