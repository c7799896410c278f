package hours_test

import (
	"testing"

	"go-shiftplan/internal/employee"
	"go-shiftplan/internal/hours"
	"go-shiftplan/internal/schedule"
	"go-shiftplan/internal/shared/jornada"
	"go-shiftplan/internal/shared/weekday"
	"go-shiftplan/internal/worktime"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// November 2025 starts on a Saturday; Sundays fall on the 2nd, 9th, 16th,
// 23rd and 30th, leaving 25 active days for a Monday to Saturday schedule.
func twoShiftSchedule() schedule.Schedule {
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

func TestDayWorked(t *testing.T) {
	e := hours.New(twoShiftSchedule(), nil, 11, 2025)

	t.Run("full time on shift one works six hours on a monday", func(t *testing.T) {
		assert.Equal(t, 6.0, e.DayWorked("emp-1", 3))
		assert.Equal(t, 6.0, e.DayWorked("emp-1", 10))
	})

	t.Run("extra on a seven hour shift is capped at four", func(t *testing.T) {
		assert.Equal(t, 4.0, e.DayWorked("emp-2", 3))
	})

	t.Run("inactive weekday", func(t *testing.T) {
		assert.Equal(t, 0.0, e.DayWorked("emp-1", 2))
		assert.Equal(t, 0.0, e.DayWorked("emp-2", 30))
	})

	t.Run("unassigned employee", func(t *testing.T) {
		assert.Equal(t, 0.0, e.DayWorked("emp-9", 3))
	})

	t.Run("day outside the month", func(t *testing.T) {
		assert.Equal(t, 0.0, e.DayWorked("emp-1", 0))
		assert.Equal(t, 0.0, e.DayWorked("emp-1", 31))
	})
}

func TestDayWorked_PartTimeSingleShift(t *testing.T) {
	s := twoShiftSchedule()
	s.Shifts = []schedule.Shift{{Number: 1, Start: "08:00", End: "17:00"}}
	s.Assignments = []schedule.Assignment{{EmployeeID: "emp-3", Jornada: jornada.PartTime}}
	e := hours.New(s, nil, 11, 2025)

	assert.Equal(t, 4.5, e.DayWorked("emp-3", 3))
	assert.Equal(t, 0.0, e.DayWorked("emp-3", 9))
}

func TestDayWorked_SingleShiftIgnoresShiftNumber(t *testing.T) {
	s := twoShiftSchedule()
	s.Shifts = []schedule.Shift{{Number: 2, Start: "12:00", End: "18:30"}}
	s.Assignments = []schedule.Assignment{{EmployeeID: "emp-1", Jornada: jornada.FullTime, Shift: intPtr(1)}}
	e := hours.New(s, nil, 11, 2025)

	assert.Equal(t, 6.5, e.DayWorked("emp-1", 3))
}

func TestDayWorked_DayHoursOverride(t *testing.T) {
	s := twoShiftSchedule()
	s.DayHours = []schedule.DayHours{{Day: weekday.Saturday, Start: "12:00", End: "15:30"}}
	e := hours.New(s, nil, 11, 2025)

	assert.Equal(t, 3.5, e.DayWorked("emp-1", 1))
	assert.Equal(t, 3.5, e.DayWorked("emp-2", 1))
	assert.Equal(t, 6.0, e.DayWorked("emp-1", 3))
}

func TestDayWorked_MissingShiftYieldsZero(t *testing.T) {
	s := twoShiftSchedule()
	s.Assignments = []schedule.Assignment{{EmployeeID: "emp-1", Jornada: jornada.FullTime, Shift: intPtr(3)}}
	e := hours.New(s, nil, 11, 2025)

	assert.Equal(t, 0.0, e.DayWorked("emp-1", 3))
}

func TestDayWorked_UnknownJornadaCountsAsFullTime(t *testing.T) {
	s := twoShiftSchedule()
	s.Assignments = []schedule.Assignment{{EmployeeID: "emp-1", Jornada: "temporal", Shift: intPtr(2)}}
	e := hours.New(s, nil, 11, 2025)

	assert.Equal(t, 7.0, e.DayWorked("emp-1", 3))
	assert.Equal(t, 160.0, e.MonthlyRequirement("temporal"))
}

func TestMonthWorked(t *testing.T) {
	e := hours.New(twoShiftSchedule(), nil, 11, 2025)

	assert.Equal(t, 30, e.DaysInMonth())
	assert.Equal(t, 150.0, e.MonthWorked("emp-1"))
	assert.Equal(t, 100.0, e.MonthWorked("emp-2"))
}

func TestNew_ReplaysScheduleInAnotherMonth(t *testing.T) {
	e := hours.New(twoShiftSchedule(), nil, 2, 2026)

	assert.Equal(t, 2, e.Month())
	assert.Equal(t, 2026, e.Year())
	assert.Equal(t, 28, e.DaysInMonth())
	// 1 February 2026 is a Sunday
	assert.Equal(t, 0.0, e.DayWorked("emp-1", 1))
	assert.Equal(t, 6.0, e.DayWorked("emp-1", 2))
	assert.Equal(t, 24*6.0, e.MonthWorked("emp-1"))
}

func TestNew_ZeroViewUsesScheduleMonth(t *testing.T) {
	e := hours.New(twoShiftSchedule(), nil, 0, 0)

	assert.Equal(t, 11, e.Month())
	assert.Equal(t, 2025, e.Year())
	assert.Equal(t, hours.WeekdaysX4, e.Policy())
}

func TestMonthlyRequirement(t *testing.T) {
	lookup := func(sede string, year int) (worktime.Config, bool) {
		if sede == "Amagá" && year == 2025 {
			return worktime.Config{Sede: sede, Year: year, FullTimeMonthlyHours: 180, PartTimeMonthlyHours: 90}, true
		}
		return worktime.Config{}, false
	}

	t.Run("defaults without config or override", func(t *testing.T) {
		e := hours.New(twoShiftSchedule(), nil, 11, 2025)
		assert.Equal(t, 160.0, e.MonthlyRequirement(jornada.FullTime))
		assert.Equal(t, 80.0, e.MonthlyRequirement(jornada.PartTime))
		assert.Equal(t, 80.0, e.MonthlyRequirement(jornada.Extra))
	})

	t.Run("config beats defaults", func(t *testing.T) {
		e := hours.New(twoShiftSchedule(), lookup, 11, 2025)
		assert.Equal(t, 180.0, e.MonthlyRequirement(jornada.FullTime))
		assert.Equal(t, 90.0, e.MonthlyRequirement(jornada.PartTime))
		assert.Equal(t, 90.0, e.MonthlyRequirement(jornada.Extra))
	})

	t.Run("config is looked up for the viewed year", func(t *testing.T) {
		e := hours.New(twoShiftSchedule(), lookup, 1, 2026)
		assert.Equal(t, 160.0, e.MonthlyRequirement(jornada.FullTime))
	})

	t.Run("schedule override beats config", func(t *testing.T) {
		s := twoShiftSchedule()
		s.FullTimeMonthlyHours = floatPtr(200)
		e := hours.New(s, lookup, 11, 2025)
		assert.Equal(t, 200.0, e.MonthlyRequirement(jornada.FullTime))
		assert.Equal(t, 90.0, e.MonthlyRequirement(jornada.PartTime))
		assert.Equal(t, 100.0, e.MonthlyRequirement(jornada.Extra))
	})
}

func TestTheoreticalHours(t *testing.T) {
	t.Run("weekdays x4 divides by active weekdays times four", func(t *testing.T) {
		e := hours.New(twoShiftSchedule(), nil, 11, 2025)
		assert.InDelta(t, 160.0/24, e.DailyAllotment(jornada.FullTime), 1e-9)
		assert.InDelta(t, 160.0/24*25, e.TheoreticalHours("emp-1", 1, 30), 1e-9)
		assert.InDelta(t, 80.0/24*25, e.TheoreticalHours("emp-2", 1, 30), 1e-9)
	})

	t.Run("fixed 20 divides by twenty", func(t *testing.T) {
		e := hours.New(twoShiftSchedule(), nil, 11, 2025, hours.WithPolicy(hours.Fixed20))
		assert.Equal(t, 8.0, e.DailyAllotment(jornada.FullTime))
		assert.InDelta(t, 200.0, e.TheoreticalHours("emp-1", 1, 30), 1e-9)
		assert.InDelta(t, 100.0, e.TheoreticalHours("emp-2", 1, 30), 1e-9)
	})

	t.Run("range is clamped to the month", func(t *testing.T) {
		e := hours.New(twoShiftSchedule(), nil, 11, 2025)
		assert.Equal(t, e.TheoreticalHours("emp-1", 1, 30), e.TheoreticalHours("emp-1", -5, 99))
	})

	t.Run("partial range counts only active days", func(t *testing.T) {
		e := hours.New(twoShiftSchedule(), nil, 11, 2025)
		// 1..7 November holds six active days
		assert.InDelta(t, 160.0/24*6, e.TheoreticalHours("emp-1", 1, 7), 1e-9)
		assert.Equal(t, 0.0, e.TheoreticalHours("emp-1", 10, 5))
	})

	t.Run("unassigned employee owes nothing", func(t *testing.T) {
		e := hours.New(twoShiftSchedule(), nil, 11, 2025)
		assert.Equal(t, 0.0, e.TheoreticalHours("emp-9", 1, 30))
	})

	t.Run("no work days does not divide by zero", func(t *testing.T) {
		s := twoShiftSchedule()
		s.WorkDays = nil
		e := hours.New(s, nil, 11, 2025)
		assert.Equal(t, 160.0, e.DailyAllotment(jornada.FullTime))
		assert.Equal(t, 0.0, e.TheoreticalHours("emp-1", 1, 30))
	})
}

func TestTotals(t *testing.T) {
	s := twoShiftSchedule()
	s.Assignments = append(s.Assignments, schedule.Assignment{EmployeeID: "ghost", Jornada: jornada.FullTime, Shift: intPtr(1)})
	s.EmployeeBalances = []schedule.EmployeeBalance{{EmployeeID: "emp-1", OpeningBalance: 5}}
	e := hours.New(s, nil, 11, 2025)

	roster := []employee.Employee{
		{ID: "emp-2", FullName: "Pedro Gómez", ContractType: jornada.PartTime},
		{ID: "emp-9", FullName: "Sin turno", ContractType: jornada.FullTime},
		{ID: "emp-1", FullName: "Laura Restrepo", ContractType: jornada.FullTime},
	}

	rows := e.Totals(roster)

	assert.Len(t, rows, 2)
	assert.Equal(t, "emp-2", rows[0].EmployeeID)
	assert.Equal(t, "emp-1", rows[1].EmployeeID)

	for _, r := range rows {
		assert.Equal(t, r.TheoreticalHours-r.WorkedHours, r.Balance)
		assert.Equal(t, r.OpeningBalance+r.Balance, r.ClosingBalance)
		assert.Len(t, r.Days, 30)
	}

	laura := rows[1]
	assert.Equal(t, jornada.FullTime, laura.Jornada)
	assert.Equal(t, 150.0, laura.WorkedHours)
	assert.Equal(t, 6.0, laura.Days[2])
	assert.Equal(t, 0.0, laura.Days[1])
	assert.Equal(t, 5.0, laura.OpeningBalance)
	assert.Equal(t, hours.StatusOwes, laura.Status)

	pedro := rows[0]
	assert.Equal(t, jornada.PartTime, pedro.ContractType)
	assert.Equal(t, jornada.Extra, pedro.Jornada)
	assert.Equal(t, 100.0, pedro.WorkedHours)
	assert.Equal(t, hours.StatusCredit, pedro.Status)
}

func TestTotals_IsDeterministic(t *testing.T) {
	e := hours.New(twoShiftSchedule(), nil, 11, 2025)
	roster := []employee.Employee{{ID: "emp-1"}, {ID: "emp-2"}}

	assert.Equal(t, e.Totals(roster), e.Totals(roster))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, hours.StatusEven, hours.StatusOf(0))
	assert.Equal(t, hours.StatusEven, hours.StatusOf(-0.004))
	assert.Equal(t, hours.StatusOwes, hours.StatusOf(1.5))
	assert.Equal(t, hours.StatusCredit, hours.StatusOf(-1.5))
}

func TestParsePolicy(t *testing.T) {
	p, err := hours.ParsePolicy("")
	assert.NoError(t, err)
	assert.Equal(t, hours.WeekdaysX4, p)

	p, err = hours.ParsePolicy(" FIXED_20 ")
	assert.NoError(t, err)
	assert.Equal(t, hours.Fixed20, p)

	_, err = hours.ParsePolicy("average")
	assert.Error(t, err)
}

func TestLookupFrom(t *testing.T) {
	lookup := hours.LookupFrom([]worktime.Config{
		{Sede: "Amagá", Year: 2025, FullTimeMonthlyHours: 180, PartTimeMonthlyHours: 90},
		{Sede: "Paso Nivel", Year: 2025, FullTimeMonthlyHours: 170, PartTimeMonthlyHours: 85},
	})

	cfg, ok := lookup("Paso Nivel", 2025)
	assert.True(t, ok)
	assert.Equal(t, 170.0, cfg.FullTimeMonthlyHours)

	_, ok = lookup("Amagá", 2024)
	assert.False(t, ok)

	cfg, ok = lookup("amaga", 2025)
	assert.True(t, ok)
	assert.Equal(t, 180.0, cfg.FullTimeMonthlyHours)
}
