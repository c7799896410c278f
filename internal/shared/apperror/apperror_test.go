package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-shiftplan/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	notFound := apperror.New("SCHEDULE_NOT_FOUND", "Schedule not found", http.StatusNotFound)

	got := apperror.ToHTTP(fmt.Errorf("load: %w", notFound))
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, "SCHEDULE_NOT_FOUND", got.Code)

	got = apperror.ToHTTP(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, apperror.CodeInternalError, got.Code)
	assert.NotContains(t, got.Message, "boom")
}

func TestWithCause_KeepsIdentity(t *testing.T) {
	cause := errors.New("db down")
	err := apperror.ErrServiceUnavailable.WithCause(cause)

	assert.ErrorIs(t, err, apperror.ErrServiceUnavailable)
	assert.ErrorIs(t, err, cause)
}

type payload struct {
	OpeningTime string `json:"opening_time" validate:"required,hhmm"`
	Day         string `json:"day" validate:"omitempty,weekday"`
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()
	apperror.RegisterValidations(v)

	err := apperror.MapValidationError(v.Struct(payload{}))
	assert.Equal(t, "Opening Time is required", err.Error())

	err = apperror.MapValidationError(v.Struct(payload{OpeningTime: "25:00"}))
	assert.Equal(t, "Opening Time is invalid", err.Error())

	assert.NoError(t, v.Struct(payload{OpeningTime: "10:00", Day: "lunes"}))
	assert.Nil(t, apperror.MapValidationError(nil))

	err = apperror.MapValidationError(errors.New("unexpected EOF"))
	assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
	assert.Equal(t, apperror.CodeInvalidInput, apperror.ToHTTP(err).Code)
}
