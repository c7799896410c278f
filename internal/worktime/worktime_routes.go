package worktime

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
	configs := r.Group("/work-time-config")
	configs.Use(middleware.ContextLogger(logger))
	{
		configs.GET("",
			middleware.RateLimitByIP(5, 20),
			handler.GetAll,
		)

		configs.GET("/:year",
			middleware.RateLimitByIP(5, 20),
			handler.GetByYear,
		)

		configs.POST("",
			middleware.RateLimitByIP(1, 5),
			middleware.Idempotency(rdb),
			handler.Save,
		)
	}
}
