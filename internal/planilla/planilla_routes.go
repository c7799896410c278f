package planilla

import (
	"go-shiftplan/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	planillas := r.Group("/schedules/:id/planilla")
	planillas.Use(middleware.ContextLogger(logger))
	{
		planillas.GET("",
			middleware.RateLimitByIP(5, 20),
			handler.Get,
		)

		planillas.GET("/export",
			middleware.RateLimitByIP(1, 5),
			handler.Export,
		)
	}
}
