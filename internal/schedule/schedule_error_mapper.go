package schedule

import (
	"errors"

	scheduleerrors "go-shiftplan/internal/schedule/errors"
	"go-shiftplan/internal/shared/connection"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return scheduleerrors.ErrScheduleNotFound
	}

	if connection.IsUniqueViolation(err) {
		return scheduleerrors.ErrScheduleAlreadyExists
	}

	return err
}
