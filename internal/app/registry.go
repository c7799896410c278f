package app

import (
	"database/sql"

	"go-shiftplan/internal/config"
	"go-shiftplan/internal/employee"
	"go-shiftplan/internal/hours"
	"go-shiftplan/internal/messaging/kafka"
	"go-shiftplan/internal/middleware"
	"go-shiftplan/internal/planilla"
	"go-shiftplan/internal/schedule"
	"go-shiftplan/internal/sede"
	"go-shiftplan/internal/worktime"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	policy, err := hours.ParsePolicy(cfg.HoursPolicy)
	if err != nil {
		return err
	}

	sedes := sede.NewRegistry(cfg.Sedes)

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	scheduleRepo := schedule.NewRepository(gormDB)
	worktimeRepo := worktime.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	planillaCache := planilla.NewRedisCache(rdb)

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, sedes, outboxRepo, planillaCache, logger)
	scheduleService := schedule.NewServiceWithOutbox(db, scheduleRepo, employeeRepo, sedes, outboxRepo, planillaCache, logger)
	worktimeService := worktime.NewServiceWithOutbox(db, worktimeRepo, sedes, outboxRepo, planillaCache, logger)
	planillaService := planilla.NewService(scheduleRepo, employeeRepo, worktimeRepo, planillaCache, policy, logger)

	// --- Handlers ---
	sedeHandler := sede.NewHandler(sedes, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	scheduleHandler := schedule.NewHandler(scheduleService, logger)
	worktimeHandler := worktime.NewHandler(worktimeService, logger)
	planillaHandler := planilla.NewHandler(planillaService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	{
		sede.RegisterRoutes(api, sedeHandler, logger)
		employee.RegisterRoutes(api, employeeHandler, rdb, logger)
		schedule.RegisterRoutes(api, scheduleHandler, rdb, logger)
		worktime.RegisterRoutes(api, worktimeHandler, rdb, logger)
		planilla.RegisterRoutes(api, planillaHandler, logger)
	}

	logger.Info("modules registered",
		zap.Strings("sedes", sedes.All()),
		zap.String("hours_policy", string(policy)),
	)
	return nil
}
