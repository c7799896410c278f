package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// GooseDialect maps a DB_DRIVER value to the goose dialect name.
func GooseDialect(driver string) (string, error) {
	switch driver {
	case "postgres", "":
		return "postgres", nil
	case "mysql":
		return "mysql", nil
	case "sqlite":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("no migration dialect for driver %q", driver)
	}
}

func Run(db *sql.DB, driver string) error {
	dialect, err := GooseDialect(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
