package workspaceerrors

import (
	"go-shiftplan/internal/shared/apperror"
	"net/http"
)

var (
	ErrNoSedeSelected = apperror.New(
		apperror.CodeInvalidState,
		"Select a sede first",
		http.StatusConflict,
	)
	ErrScheduleNotLoaded = apperror.New(
		apperror.CodeNotFound,
		"Schedule is not loaded for the active sede",
		http.StatusNotFound,
	)
)
