package worktime_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-shiftplan/internal/events"
	"go-shiftplan/internal/messaging/kafka"
	"go-shiftplan/internal/sede"
	sedeerrors "go-shiftplan/internal/sede/errors"
	"go-shiftplan/internal/worktime"
	worktimeerrors "go-shiftplan/internal/worktime/errors"

	kafkaMock "go-shiftplan/internal/messaging/kafka/mock"
	worktimeMock "go-shiftplan/internal/worktime/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service worktime.Service
	repo    *worktimeMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
	cache   *worktimeMock.MockCacheInvalidator
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { db.Close() })

	deps := &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    worktimeMock.NewMockRepository(ctrl),
		outbox:  kafkaMock.NewMockOutboxRepository(ctrl),
		cache:   worktimeMock.NewMockCacheInvalidator(ctrl),
	}
	deps.service = worktime.NewServiceWithOutbox(
		db, deps.repo,
		sede.NewRegistry([]string{"Amagá", "Paso Nivel"}),
		deps.outbox, deps.cache,
	)
	return deps
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

func TestWorktimeService_Save(t *testing.T) {
	req := worktime.SaveConfigRequest{
		Sede:                 "amagá",
		Year:                 2025,
		FullTimeMonthlyHours: 180,
		PartTimeMonthlyHours: 90,
	}

	t.Run("upserts and returns stored row", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		stored := &worktime.Config{Sede: "Amagá", Year: 2025, FullTimeMonthlyHours: 180, PartTimeMonthlyHours: 90}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Upsert(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, cfg *worktime.Config) error {
				assert.Equal(t, "Amagá", cfg.Sede)
				return nil
			})
		deps.repo.EXPECT().Find(ctx, "Amagá", 2025).Return(stored, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.WorktimeLifecycleTopic, ev.Topic)
				assert.Equal(t, "Amagá:2025", ev.AggregateID)
				return nil
			})
		deps.cache.EXPECT().InvalidateSede(ctx, "Amagá").Return(nil)

		resp, err := deps.service.Save(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, 180.0, resp.FullTimeMonthlyHours)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("cache failure does not fail the save", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().Find(ctx, "Amagá", 2025).Return(&worktime.Config{Sede: "Amagá", Year: 2025}, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.cache.EXPECT().InvalidateSede(ctx, "Amagá").Return(errors.New("redis down"))

		_, err := deps.service.Save(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("unknown sede", func(t *testing.T) {
		deps := setupServiceTest(t)
		bad := req
		bad.Sede = "Medellín"

		_, err := deps.service.Save(context.Background(), bad)

		assert.ErrorIs(t, err, sedeerrors.ErrUnknownSede)
	})

	t.Run("non positive hours", func(t *testing.T) {
		deps := setupServiceTest(t)
		bad := req
		bad.PartTimeMonthlyHours = 0

		_, err := deps.service.Save(context.Background(), bad)

		assert.ErrorIs(t, err, worktimeerrors.ErrInvalidHours)
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().Find(ctx, "Amagá", 2025).Return(&worktime.Config{Sede: "Amagá", Year: 2025}, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))

		_, err := deps.service.Save(ctx, req)

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestWorktimeService_Get(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().Find(ctx, "Paso Nivel", 2024).Return(nil, gorm.ErrRecordNotFound)

	_, err := deps.service.Get(ctx, "paso nivel", 2024)

	assert.ErrorIs(t, err, worktimeerrors.ErrConfigNotFound)
}

func TestWorktimeService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().FindAllBySede(ctx, "Amagá").Return([]worktime.Config{
		{Sede: "Amagá", Year: 2026, FullTimeMonthlyHours: 176, PartTimeMonthlyHours: 88},
		{Sede: "Amagá", Year: 2025, FullTimeMonthlyHours: 180, PartTimeMonthlyHours: 90},
	}, nil)

	resp, err := deps.service.GetAll(ctx, "Amagá")

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, 2026, resp[0].Year)
}
