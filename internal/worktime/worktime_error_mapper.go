package worktime

import (
	"errors"

	worktimeerrors "go-shiftplan/internal/worktime/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return worktimeerrors.ErrConfigNotFound
	}

	return err
}
