package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go-shiftplan/internal/employee"
	"go-shiftplan/internal/events"
	"go-shiftplan/internal/messaging/kafka"
	scheduleerrors "go-shiftplan/internal/schedule/errors"
	"go-shiftplan/internal/sede"
	"go-shiftplan/internal/shared/calendar"
	"go-shiftplan/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RosterReader lists the employees of a sede. employee.Repository satisfies it.
type RosterReader interface {
	FindAllBySede(ctx context.Context, sedeName string) ([]employee.Employee, error)
}

// CacheInvalidator drops derived data cached for a sede.
type CacheInvalidator interface {
	InvalidateSede(ctx context.Context, sede string) error
}

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req SaveScheduleRequest) (ScheduleResponse, error)
	GetAll(ctx context.Context, sedeName string) ([]ScheduleResponse, error)
	GetByID(ctx context.Context, id string) (ScheduleResponse, error)
	Update(ctx context.Context, id string, req SaveScheduleRequest) (ScheduleResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	roster RosterReader
	sedes  *sede.Registry
	outbox kafka.OutboxRepository
	cache  CacheInvalidator
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, roster RosterReader, sedes *sede.Registry, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, roster, sedes, nil, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	roster RosterReader,
	sedes *sede.Registry,
	outboxRepo kafka.OutboxRepository,
	cache CacheInvalidator,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		roster: roster,
		sedes:  sedes,
		outbox: outboxRepo,
		cache:  cache,
		logger: l,
	}
}

// DefaultName is used when a schedule is saved without a name.
func DefaultName(sedeName string, month, year int) string {
	return fmt.Sprintf("Horario %s - %s %d", sedeName, calendar.MonthName(month), year)
}

// build normalizes req into a Schedule and validates it against the roster.
func (s *service) build(ctx context.Context, req SaveScheduleRequest) (Schedule, error) {
	sedeName, err := s.sedes.Resolve(req.Sede)
	if err != nil {
		return Schedule{}, err
	}

	sch := Schedule{
		ID:                   strings.TrimSpace(req.ID),
		Name:                 strings.TrimSpace(req.Name),
		Sede:                 sedeName,
		WorkDays:             dedupeWorkDays(req.WorkDays),
		OpeningTime:          strings.TrimSpace(req.OpeningTime),
		ClosingTime:          strings.TrimSpace(req.ClosingTime),
		Shifts:               req.Shifts,
		Month:                req.Month,
		Year:                 req.Year,
		Assignments:          req.Assignments,
		DayHours:             req.DayHours,
		EmployeeBalances:     req.EmployeeBalances,
		FullTimeMonthlyHours: req.FullTimeMonthlyHours,
		PartTimeMonthlyHours: req.PartTimeMonthlyHours,
	}
	if sch.Name == "" {
		sch.Name = DefaultName(sch.Sede, sch.Month, sch.Year)
	}

	empls, err := s.roster.FindAllBySede(ctx, sedeName)
	if err != nil {
		return Schedule{}, err
	}
	roster := make(map[string]bool, len(empls))
	for _, e := range empls {
		roster[e.ID] = true
	}

	if err := Validate(sch, roster); err != nil {
		return Schedule{}, err
	}
	return sch, nil
}

func (s *service) Create(ctx context.Context, req SaveScheduleRequest) (ScheduleResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create schedule requested",
		zap.String("request_id", rid),
		zap.String("sede", req.Sede),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)

	sch, err := s.build(ctx, req)
	if err != nil {
		s.logger.Warn("create schedule validation failed", zap.String("request_id", rid), zap.Error(err))
		return ScheduleResponse{}, err
	}
	if sch.ID == "" {
		sch.ID = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create schedule begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ScheduleResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, &sch); err != nil {
		s.logger.Error("create schedule persist failed", zap.String("request_id", rid), zap.Error(err))
		return ScheduleResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, events.ScheduleSaved, &sch); err != nil {
		s.logger.Error("create schedule outbox persist failed", zap.String("schedule_id", sch.ID), zap.Error(err))
		return ScheduleResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create schedule commit failed", zap.String("request_id", rid), zap.Error(err))
		return ScheduleResponse{}, err
	}

	s.invalidate(ctx, sch.Sede)

	s.logger.Info("create schedule success",
		zap.String("request_id", rid),
		zap.String("schedule_id", sch.ID),
		zap.String("name", sch.Name),
	)
	return mapToResponse(sch), nil
}

func (s *service) GetAll(ctx context.Context, sedeName string) ([]ScheduleResponse, error) {
	resolved, err := s.sedes.Resolve(sedeName)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("get all schedules requested", zap.String("sede", resolved))
	schedules, err := s.repo.FindAllBySede(ctx, resolved)
	if err != nil {
		s.logger.Error("get all schedules failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]ScheduleResponse, len(schedules))
	for i, sch := range schedules {
		res[i] = mapToResponse(sch)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ScheduleResponse, error) {
	s.logger.Debug("get schedule by id requested", zap.String("schedule_id", id))
	sch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get schedule by id failed", zap.String("schedule_id", id), zap.Error(err))
		return ScheduleResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*sch), nil
}

func (s *service) Update(ctx context.Context, id string, req SaveScheduleRequest) (ScheduleResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update schedule requested", zap.String("request_id", rid), zap.String("schedule_id", id))

	sch, err := s.build(ctx, req)
	if err != nil {
		s.logger.Warn("update schedule validation failed", zap.String("request_id", rid), zap.Error(err))
		return ScheduleResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update schedule begin tx failed", zap.Error(err))
		return ScheduleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	existing, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update schedule fetch existing failed", zap.String("schedule_id", id), zap.Error(err))
		return ScheduleResponse{}, mapRepositoryError(err)
	}
	if existing.Sede != sch.Sede {
		s.logger.Warn("update schedule sede change rejected",
			zap.String("schedule_id", id),
			zap.String("from", existing.Sede),
			zap.String("to", sch.Sede),
		)
		return ScheduleResponse{}, scheduleerrors.ErrSedeImmutable
	}

	sch.ID = existing.ID
	sch.CreatedAt = existing.CreatedAt

	if err := qtx.Update(ctx, &sch); err != nil {
		s.logger.Error("update schedule persist failed", zap.Error(err))
		return ScheduleResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, events.ScheduleSaved, &sch); err != nil {
		s.logger.Error("update schedule outbox persist failed", zap.String("schedule_id", id), zap.Error(err))
		return ScheduleResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update schedule commit failed", zap.Error(err))
		return ScheduleResponse{}, err
	}

	s.invalidate(ctx, sch.Sede)

	s.logger.Info("update schedule success", zap.String("request_id", rid), zap.String("schedule_id", id))
	return mapToResponse(sch), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete schedule requested", zap.String("request_id", rid), zap.String("schedule_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete schedule begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	sch, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("delete schedule fetch existing failed", zap.String("schedule_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete schedule failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, events.ScheduleDeleted, sch); err != nil {
		s.logger.Error("delete schedule outbox persist failed", zap.String("schedule_id", id), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete schedule commit failed", zap.Error(err))
		return err
	}

	s.invalidate(ctx, sch.Sede)

	s.logger.Info("delete schedule success", zap.String("request_id", rid), zap.String("schedule_id", id))
	return nil
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, eventType string, sch *Schedule) error {
	if s.outbox == nil {
		return nil
	}
	return kafka.Enqueue(ctx, s.outbox, tx, events.ScheduleLifecycleTopic, events.LifecycleEvent{
		EventType:     eventType,
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "schedule",
		AggregateID:   sch.ID,
		Sede:          sch.Sede,
		OccurredAt:    time.Now().UTC(),
	})
}

func (s *service) invalidate(ctx context.Context, sedeName string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateSede(ctx, sedeName); err != nil {
		s.logger.Error("failed to invalidate planilla cache", zap.String("sede", sedeName), zap.Error(err))
	}
}

func mapToResponse(s Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:                   s.ID,
		Name:                 s.Name,
		Sede:                 s.Sede,
		WorkDays:             s.WorkDays,
		OpeningTime:          s.OpeningTime,
		ClosingTime:          s.ClosingTime,
		Shifts:               s.Shifts,
		Month:                s.Month,
		Year:                 s.Year,
		Assignments:          s.Assignments,
		DayHours:             s.DayHours,
		EmployeeBalances:     s.EmployeeBalances,
		FullTimeMonthlyHours: s.FullTimeMonthlyHours,
		PartTimeMonthlyHours: s.PartTimeMonthlyHours,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}
