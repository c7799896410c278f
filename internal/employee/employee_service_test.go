package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"go-shiftplan/internal/employee"
	employeeerrors "go-shiftplan/internal/employee/errors"
	"go-shiftplan/internal/events"
	"go-shiftplan/internal/messaging/kafka"
	"go-shiftplan/internal/sede"
	sedeerrors "go-shiftplan/internal/sede/errors"
	"go-shiftplan/internal/shared/contextutil"
	"go-shiftplan/internal/shared/jornada"

	employeeMock "go-shiftplan/internal/employee/mock"
	kafkaMock "go-shiftplan/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *employeeMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
	cache   *employeeMock.MockCacheInvalidator
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { db.Close() })

	repo := employeeMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)
	cache := employeeMock.NewMockCacheInvalidator(ctrl)
	sedes := sede.NewRegistry([]string{"Amagá", "Paso Nivel"})

	svc := employee.NewServiceWithOutbox(db, repo, sedes, outboxRepo, cache)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		outbox:  outboxRepo,
		cache:   cache,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func validRequest() employee.SaveEmployeeRequest {
	return employee.SaveEmployeeRequest{
		FullName:     "  Laura Gómez ",
		ContractType: jornada.FullTime,
		Role:         "Cocinera",
		Sede:         "amagá",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	t.Run("success - generates id and queues outbox with request id", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := contextutil.WithRequestID(context.Background(), "REQ-123")

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.NotEmpty(t, e.ID)
				assert.Equal(t, "Laura Gómez", e.FullName)
				assert.Equal(t, "Amagá", e.Sede)
				assert.True(t, e.Active)
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, "REQ-123", ev.RequestID)
				assert.Equal(t, events.EmployeeLifecycleTopic, ev.Topic)
				assert.Equal(t, events.EmployeeSaved, ev.EventType)

				var payload events.LifecycleEvent
				assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, "Amagá", payload.Sede)
				return nil
			})

		deps.cache.EXPECT().InvalidateSede(ctx, "Amagá").Return(nil)

		resp, err := deps.service.Create(ctx, validRequest())

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "Amagá", resp.Sede)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("keeps client supplied id", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		req := validRequest()
		req.ID = "emp-001"

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "emp-001", e.ID)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.cache.EXPECT().InvalidateSede(ctx, "Amagá").Return(errors.New("redis down"))

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "emp-001", resp.ID)
	})

	t.Run("duplicate id maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		_, err := deps.service.Create(ctx, validRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
	})

	t.Run("validation errors never open a transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		req := validRequest()
		req.FullName = "   "
		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, employeeerrors.ErrNameRequired)

		req = validRequest()
		req.Role = ""
		_, err = deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, employeeerrors.ErrRoleRequired)

		req = validRequest()
		req.ContractType = "weekend"
		_, err = deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidContractType)

		req = validRequest()
		req.Sede = "Medellín"
		_, err = deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, sedeerrors.ErrUnknownSede)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().FindAllBySede(ctx, "Paso Nivel").Return([]employee.Employee{
		{ID: "e1", FullName: "Ana", ContractType: jornada.PartTime, Sede: "Paso Nivel"},
		{ID: "e2", FullName: "Luis", ContractType: jornada.FullTime, Sede: "Paso Nivel"},
	}, nil)

	resp, err := deps.service.GetAll(ctx, "PASO NIVEL")

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "e1", resp[0].ID)

	_, err = deps.service.GetAll(ctx, "")
	assert.ErrorIs(t, err, sedeerrors.ErrSedeRequired)
}

func TestEmployeeService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().FindByID(ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := deps.service.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestEmployeeService_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		inactive := false
		req := validRequest()
		req.ContractType = jornada.PartTime
		req.Active = &inactive

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, "e1").Return(&employee.Employee{
			ID: "e1", FullName: "Laura", ContractType: jornada.FullTime, Role: "Mesera", Active: true, Sede: "Amagá",
		}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, jornada.PartTime, e.ContractType)
				assert.Equal(t, "Cocinera", e.Role)
				assert.False(t, e.Active)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.cache.EXPECT().InvalidateSede(ctx, "Amagá").Return(nil)

		resp, err := deps.service.Update(ctx, "e1", req)

		assert.NoError(t, err)
		assert.Equal(t, jornada.PartTime, resp.ContractType)
	})

	t.Run("sede is immutable", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		req := validRequest()
		req.Sede = "Paso Nivel"

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, "e1").Return(&employee.Employee{ID: "e1", Sede: "Amagá"}, nil)

		_, err := deps.service.Update(ctx, "e1", req)

		assert.ErrorIs(t, err, employeeerrors.ErrSedeImmutable)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, "e1").Return(&employee.Employee{ID: "e1", Sede: "Amagá"}, nil)
		deps.repo.EXPECT().Delete(ctx, "e1").Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.EmployeeDeleted, ev.EventType)
				return nil
			})
		deps.cache.EXPECT().InvalidateSede(ctx, "Amagá").Return(nil)

		assert.NoError(t, deps.service.Delete(ctx, "e1"))
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, "nope").Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, "nope")
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
