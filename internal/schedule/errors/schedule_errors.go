package scheduleerrors

import (
	"go-shiftplan/internal/shared/apperror"
	"net/http"
)

func invalid(message string) *apperror.AppError {
	return apperror.New(apperror.CodeInvalidInput, message, http.StatusBadRequest)
}

var (
	ErrScheduleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Schedule not found",
		http.StatusNotFound,
	)
	ErrScheduleAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Schedule with the same id already exists",
		http.StatusConflict,
	)
	ErrSedeImmutable = apperror.New(
		"SEDE_IMMUTABLE",
		"A schedule cannot be moved to another sede",
		http.StatusUnprocessableEntity,
	)

	ErrNoWorkDays           = invalid("Select at least one work day")
	ErrInvalidWeekday       = invalid("Unknown weekday")
	ErrInvalidTime          = invalid("Times must use the HH:MM format")
	ErrOpeningAfterClosing  = invalid("Opening time must be before closing time")
	ErrShiftCount           = invalid("A schedule needs between 1 and 3 shifts")
	ErrInvalidShiftNumber   = invalid("Shift numbers must be between 1 and 3")
	ErrDuplicateShift       = invalid("Shift numbers must be unique")
	ErrShiftRange           = invalid("Shift start must be before its end")
	ErrInvalidMonth         = invalid("Month must be between 1 and 12")
	ErrInvalidYear          = invalid("Year is out of range")
	ErrNoAssignments        = invalid("Assign at least one employee")
	ErrDuplicateAssignment  = invalid("An employee can only be assigned once")
	ErrEmployeeNotInSede    = invalid("Assigned employee does not belong to the schedule's sede")
	ErrInvalidJornada       = invalid("Jornada must be full_time, part_time or extra")
	ErrShiftRequired        = invalid("A shift must be chosen when the schedule has several shifts")
	ErrUnknownShift         = invalid("Assignment references an undefined shift")
	ErrInvalidDayHours      = invalid("Custom day hours need a valid weekday and start before end")
	ErrInvalidMonthlyHours  = invalid("Monthly hour overrides must be positive")
	ErrInvalidBalanceTarget = invalid("Opening balances must reference an assigned employee")
)
