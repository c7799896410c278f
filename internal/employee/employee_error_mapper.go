package employee

import (
	"errors"

	employeeerrors "go-shiftplan/internal/employee/errors"
	"go-shiftplan/internal/shared/connection"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	if connection.IsUniqueViolation(err) {
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return err
}
