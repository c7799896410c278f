package schedule

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
	schedules := r.Group("/schedules")
	schedules.Use(middleware.ContextLogger(logger))
	{
		schedules.GET("", middleware.RateLimitByIP(5, 20), handler.GetAll)
		schedules.GET("/:id", middleware.RateLimitByIP(5, 20), handler.GetById)
		schedules.POST("", middleware.RateLimitByIP(1, 5), middleware.Idempotency(rdb), handler.Create)
		schedules.PUT("/:id", middleware.RateLimitByIP(1, 5), middleware.Idempotency(rdb), handler.Update)
		schedules.DELETE("/:id", middleware.RateLimitByIP(0.5, 2), handler.Delete)
	}
}
