package connection_test

import (
	"testing"

	"go-shiftplan/internal/config"
	"go-shiftplan/internal/shared/connection"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestDialector(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql", "sqlite", ""} {
		d, err := connection.Dialector(config.DBConfig{Driver: driver, Path: ":memory:"})
		assert.NoError(t, err, driver)
		assert.NotNil(t, d, driver)
	}

	_, err := connection.Dialector(config.DBConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestBindTx_RunsOnTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "things"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	res := connection.BindTx(gormDB, tx).Exec(`DELETE FROM "things"`)
	assert.NoError(t, res.Error)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.Same(t, gormDB, connection.BindTx(gormDB, nil))
}
