package sede

import (
	"go-shiftplan/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	sedes := r.Group("/sedes")
	sedes.Use(middleware.ContextLogger(logger))
	{
		sedes.GET("", middleware.RateLimitByIP(5, 20), handler.List)
	}
}
