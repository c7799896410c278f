package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrServiceUnavailable = New(
		CodeServiceUnavailable,
		"A dependent service is unavailable",
		http.StatusServiceUnavailable,
	)
)

// RequiredField builds the error returned when a mandatory field is missing.
func RequiredField(field string) *AppError {
	return New(CodeValidationError, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
}

// InvalidField builds the error returned when a field fails validation.
func InvalidField(field string) *AppError {
	return New(CodeValidationError, fmt.Sprintf("%s is invalid", field), http.StatusBadRequest)
}
