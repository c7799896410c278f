package employeeerrors

import (
	"go-shiftplan/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same id already exists",
		http.StatusConflict,
	)
	ErrNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Employee name is required",
		http.StatusBadRequest,
	)
	ErrRoleRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Employee role is required",
		http.StatusBadRequest,
	)
	ErrInvalidContractType = apperror.New(
		apperror.CodeInvalidInput,
		"Contract type must be full_time, part_time or extra",
		http.StatusBadRequest,
	)
	ErrSedeImmutable = apperror.New(
		"SEDE_IMMUTABLE",
		"An employee cannot be moved to another sede",
		http.StatusUnprocessableEntity,
	)
)
