package planillaerrors

import (
	"go-shiftplan/internal/shared/apperror"
	"net/http"
)

var (
	ErrScheduleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Schedule not found",
		http.StatusNotFound,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"Year is out of range",
		http.StatusBadRequest,
	)
	ErrInvalidPolicy = apperror.New(
		apperror.CodeInvalidInput,
		"Policy must be weekdays_x4 or fixed_20",
		http.StatusBadRequest,
	)
	ErrUnsupportedFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Export format must be csv or pdf",
		http.StatusBadRequest,
	)
)
