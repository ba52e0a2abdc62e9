package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/agrinet/internal/platform/requestid"
)

// RequestID reuses the caller's X-Request-Id or mints one, and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := strings.TrimSpace(c.GetHeader(requestid.Header))
		if reqID == "" || len(reqID) > 128 {
			reqID = requestid.New()
		}
		c.Request = c.Request.WithContext(requestid.WithContext(c.Request.Context(), reqID))
		c.Writer.Header().Set(requestid.Header, reqID)
		c.Next()
	}
}
