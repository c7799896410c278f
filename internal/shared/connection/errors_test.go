package connection_test

import (
	"errors"
	"fmt"
	"testing"

	"go-shiftplan/internal/shared/connection"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, connection.IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, connection.IsUniqueViolation(fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062})))
	assert.True(t, connection.IsUniqueViolation(errors.New("UNIQUE constraint failed: employees.id")))
	assert.True(t, connection.IsUniqueViolation(gorm.ErrDuplicatedKey))

	assert.False(t, connection.IsUniqueViolation(nil))
	assert.False(t, connection.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, connection.IsUniqueViolation(gorm.ErrRecordNotFound))
}
