package worktimeerrors

import (
	"go-shiftplan/internal/shared/apperror"
	"net/http"
)

var (
	ErrConfigNotFound = apperror.New(
		apperror.CodeNotFound,
		"Work time config not found",
		http.StatusNotFound,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"Year is out of range",
		http.StatusBadRequest,
	)
	ErrInvalidHours = apperror.New(
		apperror.CodeInvalidInput,
		"Monthly hours must be positive",
		http.StatusBadRequest,
	)
)
