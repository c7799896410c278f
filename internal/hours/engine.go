package hours

import (
	"math"

	"go-shiftplan/internal/employee"
	"go-shiftplan/internal/schedule"
	"go-shiftplan/internal/sede"
	"go-shiftplan/internal/shared/calendar"
	"go-shiftplan/internal/shared/clock"
	"go-shiftplan/internal/shared/jornada"
	"go-shiftplan/internal/shared/weekday"
	"go-shiftplan/internal/worktime"
)

const (
	DefaultFullTimeMonthlyHours = 160
	DefaultPartTimeMonthlyHours = 80

	// ExtraDailyCap is the most an extra assignment can work in a day.
	ExtraDailyCap = 4
)

// ConfigLookup returns the work time config of a sede for a year, if any.
type ConfigLookup func(sede string, year int) (worktime.Config, bool)

// NoConfig is a lookup that never finds a config.
func NoConfig(string, int) (worktime.Config, bool) {
	return worktime.Config{}, false
}

// LookupFrom serves lookups from an in-memory list of configs.
func LookupFrom(cfgs []worktime.Config) ConfigLookup {
	type key struct {
		sede string
		year int
	}
	idx := make(map[key]worktime.Config, len(cfgs))
	for _, c := range cfgs {
		idx[key{sede.Fold(c.Sede), c.Year}] = c
	}
	return func(name string, year int) (worktime.Config, bool) {
		c, ok := idx[key{sede.Fold(name), year}]
		return c, ok
	}
}

type Option func(*Engine)

func WithPolicy(p Policy) Option {
	return func(e *Engine) {
		if p != "" {
			e.policy = p
		}
	}
}

// Engine computes worked and theoretical hours for one schedule replayed
// over a target month. It does no I/O and never mutates its inputs.
type Engine struct {
	schedule    schedule.Schedule
	lookup      ConfigLookup
	month       int
	year        int
	daysInMonth int
	policy      Policy
	assignments map[string]schedule.Assignment
	workDays    weekday.Set
}

// New builds an engine for s viewed at month/year. A zero month or year
// falls back to the schedule's own.
func New(s schedule.Schedule, lookup ConfigLookup, month, year int, opts ...Option) *Engine {
	if !calendar.ValidMonth(month) {
		month = s.Month
	}
	if year == 0 {
		year = s.Year
	}
	if lookup == nil {
		lookup = NoConfig
	}

	workDays := make([]weekday.Day, 0, len(s.WorkDays))
	for _, d := range s.WorkDays {
		if d.Valid() {
			workDays = append(workDays, d)
		}
	}

	e := &Engine{
		schedule:    s,
		lookup:      lookup,
		month:       month,
		year:        year,
		daysInMonth: calendar.DaysIn(year, month),
		policy:      DefaultPolicy,
		assignments: s.AssignmentIndex(),
		workDays:    weekday.NewSet(workDays),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Month() int       { return e.month }
func (e *Engine) Year() int        { return e.year }
func (e *Engine) Policy() Policy   { return e.policy }
func (e *Engine) DaysInMonth() int { return e.daysInMonth }

// Active reports whether day falls inside the month on an active weekday.
func (e *Engine) Active(day int) bool {
	if day < 1 || day > e.daysInMonth {
		return false
	}
	return e.workDays.Has(weekday.On(e.year, e.month, day))
}

// DayWorked returns the hours employeeID works on day of the viewed month.
func (e *Engine) DayWorked(employeeID string, day int) float64 {
	a, ok := e.assignments[employeeID]
	if !ok || !e.Active(day) {
		return 0
	}

	start, end, ok := e.hourRange(a, weekday.On(e.year, e.month, day))
	if !ok {
		return 0
	}
	base := clock.Span(start, end)

	switch a.Jornada {
	case jornada.PartTime:
		return base / 2
	case jornada.Extra:
		return math.Min(ExtraDailyCap, base)
	default:
		return base
	}
}

func (e *Engine) hourRange(a schedule.Assignment, d weekday.Day) (string, string, bool) {
	if dh, ok := e.schedule.DayHoursFor(d); ok {
		return dh.Start, dh.End, true
	}
	if len(e.schedule.Shifts) == 1 {
		sh := e.schedule.Shifts[0]
		return sh.Start, sh.End, true
	}
	sh, ok := e.schedule.ShiftByNumber(a.ShiftNumber())
	if !ok {
		return "", "", false
	}
	return sh.Start, sh.End, true
}

// MonthWorked sums DayWorked over every day of the viewed month.
func (e *Engine) MonthWorked(employeeID string) float64 {
	var total float64
	for day := 1; day <= e.daysInMonth; day++ {
		total += e.DayWorked(employeeID, day)
	}
	return total
}

// MonthlyRequirement resolves the monthly hours owed by a jornada. A schedule
// override beats the sede config, which beats the defaults.
func (e *Engine) MonthlyRequirement(j jornada.Type) float64 {
	fullTime, partTime := float64(DefaultFullTimeMonthlyHours), float64(DefaultPartTimeMonthlyHours)
	if cfg, ok := e.lookup(e.schedule.Sede, e.year); ok {
		if cfg.FullTimeMonthlyHours > 0 {
			fullTime = cfg.FullTimeMonthlyHours
		}
		if cfg.PartTimeMonthlyHours > 0 {
			partTime = cfg.PartTimeMonthlyHours
		}
	}
	if v := e.schedule.FullTimeMonthlyHours; v != nil && *v > 0 {
		fullTime = *v
	}
	if v := e.schedule.PartTimeMonthlyHours; v != nil && *v > 0 {
		partTime = *v
	}

	switch j {
	case jornada.PartTime:
		return partTime
	case jornada.Extra:
		return fullTime / 2
	default:
		return fullTime
	}
}

// DailyAllotment is the share of the monthly requirement owed per active day.
func (e *Engine) DailyAllotment(j jornada.Type) float64 {
	return e.MonthlyRequirement(j) / e.policy.divisor(len(e.workDays))
}

// TheoreticalHours accumulates the daily allotment over the active days in
// [from, to], clamped to the month. Unassigned employees owe nothing.
func (e *Engine) TheoreticalHours(employeeID string, from, to int) float64 {
	a, ok := e.assignments[employeeID]
	if !ok {
		return 0
	}
	from = max(from, 1)
	to = min(to, e.daysInMonth)

	allotment := e.DailyAllotment(a.Jornada)
	var total float64
	for day := from; day <= to; day++ {
		if e.Active(day) {
			total += allotment
		}
	}
	return total
}

// Totals builds one row per roster employee holding an assignment, in roster
// order. Assignments to employees missing from the roster are skipped.
func (e *Engine) Totals(roster []employee.Employee) []Row {
	rows := make([]Row, 0, len(roster))
	for _, emp := range roster {
		a, ok := e.assignments[emp.ID]
		if !ok {
			continue
		}

		days := make([]float64, e.daysInMonth)
		var worked float64
		for day := 1; day <= e.daysInMonth; day++ {
			days[day-1] = e.DayWorked(emp.ID, day)
			worked += days[day-1]
		}
		theoretical := e.TheoreticalHours(emp.ID, 1, e.daysInMonth)
		balance := theoretical - worked
		opening := e.schedule.OpeningBalance(emp.ID)

		rows = append(rows, Row{
			EmployeeID:       emp.ID,
			Name:             emp.FullName,
			ContractType:     emp.ContractType,
			Jornada:          a.Jornada,
			Days:             days,
			WorkedHours:      worked,
			TheoreticalHours: theoretical,
			Balance:          balance,
			OpeningBalance:   opening,
			ClosingBalance:   opening + balance,
			Status:           StatusOf(balance),
		})
	}
	return rows
}
