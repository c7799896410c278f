package worktime

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-shiftplan/internal/events"
	"go-shiftplan/internal/messaging/kafka"
	"go-shiftplan/internal/sede"
	"go-shiftplan/internal/shared/contextutil"
	worktimeerrors "go-shiftplan/internal/worktime/errors"

	"go.uber.org/zap"
)

const (
	minYear = 2000
	maxYear = 2100
)

// CacheInvalidator drops derived data cached for a sede.
type CacheInvalidator interface {
	InvalidateSede(ctx context.Context, sede string) error
}

//go:generate mockgen -source=worktime_service.go -destination=mock/worktime_service_mock.go -package=mock
type Service interface {
	Save(ctx context.Context, req SaveConfigRequest) (ConfigResponse, error)
	GetAll(ctx context.Context, sedeName string) ([]ConfigResponse, error)
	Get(ctx context.Context, sedeName string, year int) (ConfigResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	sedes  *sede.Registry
	outbox kafka.OutboxRepository
	cache  CacheInvalidator
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, sedes *sede.Registry, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, sedes, nil, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	sedes *sede.Registry,
	outboxRepo kafka.OutboxRepository,
	cache CacheInvalidator,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("worktime.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("worktime.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		sedes:  sedes,
		outbox: outboxRepo,
		cache:  cache,
		logger: l,
	}
}

// Save upserts the config keyed by (sede, year) and returns the stored row.
func (s *service) Save(ctx context.Context, req SaveConfigRequest) (ConfigResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("save work time config requested",
		zap.String("request_id", rid),
		zap.String("sede", req.Sede),
		zap.Int("year", req.Year),
	)

	sedeName, err := s.sedes.Resolve(req.Sede)
	if err != nil {
		return ConfigResponse{}, err
	}
	if req.Year < minYear || req.Year > maxYear {
		return ConfigResponse{}, worktimeerrors.ErrInvalidYear
	}
	if req.FullTimeMonthlyHours <= 0 || req.PartTimeMonthlyHours <= 0 {
		return ConfigResponse{}, worktimeerrors.ErrInvalidHours
	}

	cfg := Config{
		Sede:                 sedeName,
		Year:                 req.Year,
		FullTimeMonthlyHours: req.FullTimeMonthlyHours,
		PartTimeMonthlyHours: req.PartTimeMonthlyHours,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("save work time config begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ConfigResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Upsert(ctx, &cfg); err != nil {
		s.logger.Error("save work time config persist failed", zap.String("request_id", rid), zap.Error(err))
		return ConfigResponse{}, mapRepositoryError(err)
	}

	stored, err := qtx.Find(ctx, cfg.Sede, cfg.Year)
	if err != nil {
		s.logger.Error("save work time config reload failed", zap.String("request_id", rid), zap.Error(err))
		return ConfigResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		err := kafka.Enqueue(ctx, s.outbox, tx, events.WorktimeLifecycleTopic, events.LifecycleEvent{
			EventType:     events.WorktimeSaved,
			RequestID:     rid,
			AggregateType: "work_time_config",
			AggregateID:   fmt.Sprintf("%s:%d", stored.Sede, stored.Year),
			Sede:          stored.Sede,
			OccurredAt:    time.Now().UTC(),
		})
		if err != nil {
			s.logger.Error("save work time config outbox persist failed", zap.String("request_id", rid), zap.Error(err))
			return ConfigResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("save work time config commit failed", zap.String("request_id", rid), zap.Error(err))
		return ConfigResponse{}, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateSede(ctx, stored.Sede); err != nil {
			s.logger.Error("failed to invalidate planilla cache", zap.String("sede", stored.Sede), zap.Error(err))
		}
	}

	s.logger.Info("save work time config success",
		zap.String("request_id", rid),
		zap.String("sede", stored.Sede),
		zap.Int("year", stored.Year),
	)
	return mapToResponse(*stored), nil
}

func (s *service) GetAll(ctx context.Context, sedeName string) ([]ConfigResponse, error) {
	resolved, err := s.sedes.Resolve(sedeName)
	if err != nil {
		return nil, err
	}

	cfgs, err := s.repo.FindAllBySede(ctx, resolved)
	if err != nil {
		s.logger.Error("get all work time configs failed", zap.String("sede", resolved), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]ConfigResponse, len(cfgs))
	for i, c := range cfgs {
		res[i] = mapToResponse(c)
	}
	return res, nil
}

func (s *service) Get(ctx context.Context, sedeName string, year int) (ConfigResponse, error) {
	resolved, err := s.sedes.Resolve(sedeName)
	if err != nil {
		return ConfigResponse{}, err
	}

	cfg, err := s.repo.Find(ctx, resolved, year)
	if err != nil {
		return ConfigResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*cfg), nil
}

func mapToResponse(c Config) ConfigResponse {
	return ConfigResponse{
		Sede:                 c.Sede,
		Year:                 c.Year,
		FullTimeMonthlyHours: c.FullTimeMonthlyHours,
		PartTimeMonthlyHours: c.PartTimeMonthlyHours,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}
