package middleware

import (
	"strings"

	"go-shiftplan/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// ContextLogger attaches a request id, the requested sede and a scoped
// logger to the request context so services can log without knowing gin.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	return func(c *gin.Context) {
		rid := requestIDFrom(c)
		c.Header(RequestIDHeader, rid)

		sede := strings.TrimSpace(c.Query("location"))
		if sede == "" {
			sede = strings.TrimSpace(c.Query("sede"))
		}

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("sede", sede),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithSede(ctx, sede)
		ctx = contextutil.WithLogger(ctx, reqLogger)

		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
