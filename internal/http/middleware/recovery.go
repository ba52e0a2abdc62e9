package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/agrinet/internal/platform/logger"
)

// Recovery turns a handler panic into a logged 500.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if log != nil {
			log.Error("panic recovered", "path", c.Request.URL.Path, "panic", recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}
