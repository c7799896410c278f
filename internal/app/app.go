package app

import (
	"go-shiftplan/internal/config"
	"go-shiftplan/internal/migrations"
	"go-shiftplan/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const connectRetries = 5

// BuildApp connects the infrastructure named by cfg and mounts every module
// on router.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, connectRetries, logger)
	if err != nil {
		return err
	}
	logger.Info("database connection established", zap.String("driver", cfg.DB.Driver))

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	if cfg.AutoMigrate {
		if err := migrations.Run(sqlDB, cfg.DB.Driver); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries, logger)
		if err != nil {
			return err
		}
		logger.Info("redis connection established")
	} else {
		logger.Warn("REDIS_ADDR not set, planilla cache and idempotency disabled")
	}

	return registerModules(router, cfg, sqlDB, gormDB, rdb, logger)
}
