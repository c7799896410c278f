package migrations

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGooseDialect(t *testing.T) {
	cases := map[string]string{"postgres": "postgres", "": "postgres", "mysql": "mysql", "sqlite": "sqlite3"}
	for in, want := range cases {
		got, err := GooseDialect(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := GooseDialect("mssql")
	assert.Error(t, err)
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	assert.NoError(t, err)
	assert.Contains(t, files, "00001_init.sql")

	body, err := fs.ReadFile(embedMigrations, "00001_init.sql")
	assert.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "CREATE TABLE outbox_events")
}
