package sedeerrors

import (
	"go-shiftplan/internal/shared/apperror"
	"net/http"
)

var (
	ErrSedeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Sede is required",
		http.StatusBadRequest,
	)
	ErrUnknownSede = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown sede",
		http.StatusBadRequest,
	)
)
