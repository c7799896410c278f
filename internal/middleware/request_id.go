package middleware

import (
	"strings"

	"go-shiftplan/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxRequestIDLen = 64

// requestIDFrom returns the caller's request id, the one set earlier in the
// chain, or a fresh uuid. Oversized ids are replaced.
func requestIDFrom(c *gin.Context) string {
	rid := strings.TrimSpace(c.GetHeader(RequestIDHeader))
	if rid == "" {
		rid = c.GetString("request_id")
	}
	if rid == "" || len(rid) > maxRequestIDLen {
		rid = uuid.New().String()
	}
	return rid
}

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := requestIDFrom(c)
		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(contextutil.WithRequestID(c.Request.Context(), rid))
		c.Header(RequestIDHeader, rid)
		c.Next()
	}
}
