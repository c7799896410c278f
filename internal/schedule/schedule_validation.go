package schedule

import (
	scheduleerrors "go-shiftplan/internal/schedule/errors"
	"go-shiftplan/internal/shared/calendar"
	"go-shiftplan/internal/shared/clock"
	"go-shiftplan/internal/shared/weekday"
)

const (
	MinShifts = 1
	MaxShifts = 3

	minYear = 2000
	maxYear = 2100
)

// Validate checks a schedule against the roster of its sede. roster holds
// the ids of the employees that belong to the sede.
func Validate(s Schedule, roster map[string]bool) error {
	if len(s.WorkDays) == 0 {
		return scheduleerrors.ErrNoWorkDays
	}
	for _, d := range s.WorkDays {
		if !d.Valid() {
			return scheduleerrors.ErrInvalidWeekday
		}
	}

	if !calendar.ValidMonth(s.Month) {
		return scheduleerrors.ErrInvalidMonth
	}
	if s.Year < minYear || s.Year > maxYear {
		return scheduleerrors.ErrInvalidYear
	}

	if err := checkRange(s.OpeningTime, s.ClosingTime, scheduleerrors.ErrOpeningAfterClosing); err != nil {
		return err
	}

	if len(s.Shifts) < MinShifts || len(s.Shifts) > MaxShifts {
		return scheduleerrors.ErrShiftCount
	}
	seen := make(map[int]bool, len(s.Shifts))
	for _, sh := range s.Shifts {
		if sh.Number < MinShifts || sh.Number > MaxShifts {
			return scheduleerrors.ErrInvalidShiftNumber
		}
		if seen[sh.Number] {
			return scheduleerrors.ErrDuplicateShift
		}
		seen[sh.Number] = true

		if err := checkRange(sh.Start, sh.End, scheduleerrors.ErrShiftRange); err != nil {
			return err
		}
	}

	for _, dh := range s.DayHours {
		if !dh.Day.Valid() {
			return scheduleerrors.ErrInvalidDayHours
		}
		if err := checkRange(dh.Start, dh.End, scheduleerrors.ErrInvalidDayHours); err != nil {
			return err
		}
	}

	if err := validateMonthlyHours(s.FullTimeMonthlyHours); err != nil {
		return err
	}
	if err := validateMonthlyHours(s.PartTimeMonthlyHours); err != nil {
		return err
	}

	if len(s.Assignments) == 0 {
		return scheduleerrors.ErrNoAssignments
	}
	assigned := make(map[string]bool, len(s.Assignments))
	for _, a := range s.Assignments {
		if assigned[a.EmployeeID] {
			return scheduleerrors.ErrDuplicateAssignment
		}
		assigned[a.EmployeeID] = true

		if !roster[a.EmployeeID] {
			return scheduleerrors.ErrEmployeeNotInSede
		}
		if !a.Jornada.Valid() {
			return scheduleerrors.ErrInvalidJornada
		}

		if a.Shift == nil {
			if len(s.Shifts) > 1 {
				return scheduleerrors.ErrShiftRequired
			}
			continue
		}
		if !seen[*a.Shift] {
			return scheduleerrors.ErrUnknownShift
		}
	}

	for _, b := range s.EmployeeBalances {
		if !assigned[b.EmployeeID] {
			return scheduleerrors.ErrInvalidBalanceTarget
		}
	}

	return nil
}

// checkRange requires both bounds to be valid HH:MM with start < end.
func checkRange(start, end string, orderErr error) error {
	before, err := clock.Before(start, end)
	if err != nil {
		return scheduleerrors.ErrInvalidTime
	}
	if !before {
		return orderErr
	}
	return nil
}

func validateMonthlyHours(v *float64) error {
	if v != nil && *v <= 0 {
		return scheduleerrors.ErrInvalidMonthlyHours
	}
	return nil
}

// dedupeWorkDays drops repeated days, keeping first-seen order.
func dedupeWorkDays(days []weekday.Day) []weekday.Day {
	seen := make(map[weekday.Day]bool, len(days))
	out := make([]weekday.Day, 0, len(days))
	for _, d := range days {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
