package schedule_test

import (
	"testing"

	"go-shiftplan/internal/schedule"
	scheduleerrors "go-shiftplan/internal/schedule/errors"
	"go-shiftplan/internal/shared/jornada"
	"go-shiftplan/internal/shared/weekday"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func fixture() schedule.Schedule {
	return schedule.Schedule{
		ID:          "sch-001",
		Name:        "Horario Amagá - Noviembre 2025",
		Sede:        "Amagá",
		WorkDays:    []weekday.Day{weekday.Monday, weekday.Tuesday, weekday.Wednesday, weekday.Thursday, weekday.Friday, weekday.Saturday},
		OpeningTime: "10:00",
		ClosingTime: "23:00",
		Shifts: []schedule.Shift{
			{Number: 1, Start: "10:00", End: "16:00"},
			{Number: 2, Start: "16:00", End: "23:00"},
		},
		Month: 11,
		Year:  2025,
		Assignments: []schedule.Assignment{
			{EmployeeID: "emp-1", Jornada: jornada.FullTime, Shift: intPtr(1)},
			{EmployeeID: "emp-2", Jornada: jornada.Extra, Shift: intPtr(2)},
		},
	}
}

var roster = map[string]bool{"emp-1": true, "emp-2": true, "emp-3": true}

func TestValidate(t *testing.T) {
	assert.NoError(t, schedule.Validate(fixture(), roster))

	tests := []struct {
		name   string
		mutate func(s *schedule.Schedule)
		want   error
	}{
		{"no work days", func(s *schedule.Schedule) { s.WorkDays = nil }, scheduleerrors.ErrNoWorkDays},
		{"unknown weekday", func(s *schedule.Schedule) { s.WorkDays = []weekday.Day{"funday"} }, scheduleerrors.ErrInvalidWeekday},
		{"month out of range", func(s *schedule.Schedule) { s.Month = 13 }, scheduleerrors.ErrInvalidMonth},
		{"year out of range", func(s *schedule.Schedule) { s.Year = 1999 }, scheduleerrors.ErrInvalidYear},
		{"opening equals closing", func(s *schedule.Schedule) { s.ClosingTime = "10:00" }, scheduleerrors.ErrOpeningAfterClosing},
		{"malformed opening", func(s *schedule.Schedule) { s.OpeningTime = "10h" }, scheduleerrors.ErrInvalidTime},
		{"no shifts", func(s *schedule.Schedule) { s.Shifts = nil }, scheduleerrors.ErrShiftCount},
		{"four shifts", func(s *schedule.Schedule) {
			s.Shifts = append(s.Shifts, schedule.Shift{Number: 3, Start: "08:00", End: "09:00"}, schedule.Shift{Number: 3, Start: "08:00", End: "09:00"})
		}, scheduleerrors.ErrShiftCount},
		{"shift number 4", func(s *schedule.Schedule) { s.Shifts[1].Number = 4 }, scheduleerrors.ErrInvalidShiftNumber},
		{"duplicate shift", func(s *schedule.Schedule) { s.Shifts[1].Number = 1 }, scheduleerrors.ErrDuplicateShift},
		{"shift start after end", func(s *schedule.Schedule) { s.Shifts[0].Start = "17:00" }, scheduleerrors.ErrShiftRange},
		{"bad day hours", func(s *schedule.Schedule) {
			s.DayHours = []schedule.DayHours{{Day: weekday.Saturday, Start: "18:00", End: "12:00"}}
		}, scheduleerrors.ErrInvalidDayHours},
		{"zero monthly override", func(s *schedule.Schedule) { s.FullTimeMonthlyHours = floatPtr(0) }, scheduleerrors.ErrInvalidMonthlyHours},
		{"no assignments", func(s *schedule.Schedule) { s.Assignments = nil }, scheduleerrors.ErrNoAssignments},
		{"employee outside sede", func(s *schedule.Schedule) { s.Assignments[0].EmployeeID = "emp-99" }, scheduleerrors.ErrEmployeeNotInSede},
		{"employee twice", func(s *schedule.Schedule) { s.Assignments[1].EmployeeID = "emp-1" }, scheduleerrors.ErrDuplicateAssignment},
		{"bad jornada", func(s *schedule.Schedule) { s.Assignments[0].Jornada = "weekend" }, scheduleerrors.ErrInvalidJornada},
		{"missing shift on multi-shift", func(s *schedule.Schedule) { s.Assignments[0].Shift = nil }, scheduleerrors.ErrShiftRequired},
		{"unknown shift", func(s *schedule.Schedule) { s.Assignments[0].Shift = intPtr(3) }, scheduleerrors.ErrUnknownShift},
		{"balance for unassigned employee", func(s *schedule.Schedule) {
			s.EmployeeBalances = []schedule.EmployeeBalance{{EmployeeID: "emp-3", OpeningBalance: 4}}
		}, scheduleerrors.ErrInvalidBalanceTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fixture()
			tt.mutate(&s)
			assert.ErrorIs(t, schedule.Validate(s, roster), tt.want)
		})
	}
}

func TestValidate_SingleShiftNeedsNoShiftNumber(t *testing.T) {
	s := fixture()
	s.Shifts = []schedule.Shift{{Number: 1, Start: "08:00", End: "17:00"}}
	s.Assignments = []schedule.Assignment{{EmployeeID: "emp-1", Jornada: jornada.PartTime}}

	assert.NoError(t, schedule.Validate(s, roster))
}

func TestScheduleHelpers(t *testing.T) {
	s := fixture()
	s.Assignments = append(s.Assignments, schedule.Assignment{EmployeeID: "emp-1", Jornada: jornada.PartTime})
	s.EmployeeBalances = []schedule.EmployeeBalance{{EmployeeID: "emp-2", OpeningBalance: -3.5}}
	s.DayHours = []schedule.DayHours{{Day: weekday.Saturday, Start: "12:00", End: "18:00"}}

	idx := s.AssignmentIndex()
	assert.Len(t, idx, 2)
	assert.Equal(t, jornada.FullTime, idx["emp-1"].Jornada)

	sh, ok := s.ShiftByNumber(2)
	assert.True(t, ok)
	assert.Equal(t, "16:00", sh.Start)
	_, ok = s.ShiftByNumber(3)
	assert.False(t, ok)

	dh, ok := s.DayHoursFor(weekday.Saturday)
	assert.True(t, ok)
	assert.Equal(t, "12:00", dh.Start)

	assert.Equal(t, -3.5, s.OpeningBalance("emp-2"))
	assert.Equal(t, 0.0, s.OpeningBalance("emp-1"))

	assert.Equal(t, 1, schedule.Assignment{}.ShiftNumber())
	assert.Equal(t, 2, schedule.Assignment{Shift: intPtr(2)}.ShiftNumber())
}

func TestDefaultName(t *testing.T) {
	assert.Equal(t, "Horario Amagá - Noviembre 2025", schedule.DefaultName("Amagá", 11, 2025))
}
