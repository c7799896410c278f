package employee

import (
	"go-shiftplan/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByIP(5, 20),
			handler.GetAll,
		)

		employees.GET("/:id",
			middleware.RateLimitByIP(5, 20),
			handler.GetById,
		)

		employees.POST("",
			middleware.RateLimitByIP(1, 5),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByIP(1, 5),
			middleware.Idempotency(rdb),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Delete,
		)
	}
}
