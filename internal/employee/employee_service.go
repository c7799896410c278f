package employee

import (
	"context"
	"database/sql"
	"strings"
	"time"

	employeeerrors "go-shiftplan/internal/employee/errors"
	"go-shiftplan/internal/events"
	"go-shiftplan/internal/messaging/kafka"
	"go-shiftplan/internal/sede"
	"go-shiftplan/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CacheInvalidator drops derived data cached for a sede.
type CacheInvalidator interface {
	InvalidateSede(ctx context.Context, sede string) error
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req SaveEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, sedeName string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req SaveEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
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
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
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

func (s *service) validate(req *SaveEmployeeRequest) error {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Role = strings.TrimSpace(req.Role)
	req.ID = strings.TrimSpace(req.ID)

	if req.FullName == "" {
		return employeeerrors.ErrNameRequired
	}
	if req.Role == "" {
		return employeeerrors.ErrRoleRequired
	}
	if !req.ContractType.Valid() {
		return employeeerrors.ErrInvalidContractType
	}

	resolved, err := s.sedes.Resolve(req.Sede)
	if err != nil {
		return err
	}
	req.Sede = resolved
	return nil
}

func (s *service) Create(ctx context.Context, req SaveEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("sede", req.Sede),
		zap.String("contract_type", string(req.ContractType)),
	)

	if err := s.validate(&req); err != nil {
		s.logger.Warn("create employee validation failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	empl := &Employee{
		ID:           id,
		FullName:     req.FullName,
		ContractType: req.ContractType,
		Role:         req.Role,
		Active:       active,
		Sede:         req.Sede,
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, events.EmployeeSaved, empl); err != nil {
		s.logger.Error("create employee outbox persist failed",
			zap.String("employee_id", empl.ID),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidate(ctx, empl.Sede)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID),
		zap.String("sede", empl.Sede),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, sedeName string) ([]EmployeeResponse, error) {
	resolved, err := s.sedes.Resolve(sedeName)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("get all employees requested", zap.String("sede", resolved))
	empls, err := s.repo.FindAllBySede(ctx, resolved)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req SaveEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	if err := s.validate(&req); err != nil {
		s.logger.Warn("update employee validation failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if empl.Sede != req.Sede {
		s.logger.Warn("update employee sede change rejected",
			zap.String("employee_id", id),
			zap.String("from", empl.Sede),
			zap.String("to", req.Sede),
		)
		return EmployeeResponse{}, employeeerrors.ErrSedeImmutable
	}

	empl.FullName = req.FullName
	empl.ContractType = req.ContractType
	empl.Role = req.Role
	if req.Active != nil {
		empl.Active = *req.Active
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, events.EmployeeSaved, empl); err != nil {
		s.logger.Error("update employee outbox persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidate(ctx, empl.Sede)

	s.logger.Info("update employee success", zap.String("request_id", rid), zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested", zap.String("request_id", rid), zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("delete employee fetch existing failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, events.EmployeeDeleted, empl); err != nil {
		s.logger.Error("delete employee outbox persist failed", zap.String("employee_id", id), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidate(ctx, empl.Sede)

	s.logger.Info("delete employee success", zap.String("request_id", rid), zap.String("employee_id", id))
	return nil
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, eventType string, empl *Employee) error {
	if s.outbox == nil {
		return nil
	}
	return kafka.Enqueue(ctx, s.outbox, tx, events.EmployeeLifecycleTopic, events.LifecycleEvent{
		EventType:     eventType,
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "employee",
		AggregateID:   empl.ID,
		Sede:          empl.Sede,
		OccurredAt:    time.Now().UTC(),
	})
}

func (s *service) invalidate(ctx context.Context, sedeName string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateSede(ctx, sedeName); err != nil {
		s.logger.Error("failed to invalidate planilla cache",
			zap.String("sede", sedeName),
			zap.Error(err),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           empl.ID,
		FullName:     empl.FullName,
		ContractType: empl.ContractType,
		Role:         empl.Role,
		Active:       empl.Active,
		Sede:         empl.Sede,
		CreatedAt:    empl.CreatedAt,
		UpdatedAt:    empl.UpdatedAt,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
