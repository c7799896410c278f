package worktime_test

import (
	"context"
	"regexp"
	"testing"

	"go-shiftplan/internal/worktime"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) (worktime.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)
	return worktime.NewRepository(gormDB), mock
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "work_time_configs"`) + `.*` +
		regexp.QuoteMeta(`ON CONFLICT ("sede","year") DO UPDATE SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), &worktime.Config{
		Sede:                 "Amagá",
		Year:                 2025,
		FullTimeMonthlyHours: 180,
		PartTimeMonthlyHours: 90,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Find(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestRepo(t)

		rows := sqlmock.NewRows([]string{"sede", "year", "full_time_monthly_hours", "part_time_monthly_hours"}).
			AddRow("Amagá", 2025, 180.0, 90.0)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "work_time_configs" WHERE sede = $1 AND year = $2`)).
			WillReturnRows(rows)

		cfg, err := repo.Find(context.Background(), "Amagá", 2025)

		assert.NoError(t, err)
		assert.Equal(t, 180.0, cfg.FullTimeMonthlyHours)
		assert.Equal(t, 90.0, cfg.PartTimeMonthlyHours)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "work_time_configs"`)).
			WillReturnRows(sqlmock.NewRows([]string{"sede"}))

		_, err := repo.Find(context.Background(), "Amagá", 2030)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
