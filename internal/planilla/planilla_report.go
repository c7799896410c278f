package planilla

import (
	"fmt"
	"strings"

	"go-shiftplan/internal/employee"
	"go-shiftplan/internal/hours"
	"go-shiftplan/internal/schedule"
	"go-shiftplan/internal/shared/calendar"
)

// Summary adds up the rows of a report.
type Summary struct {
	WorkedHours      float64 `json:"worked_hours"`
	TheoreticalHours float64 `json:"theoretical_hours"`
	Balance          float64 `json:"balance"`
}

// Report is the monthly reconciliation of a schedule replayed over one
// month.
type Report struct {
	ScheduleID   string       `json:"schedule_id"`
	ScheduleName string       `json:"schedule_name"`
	Sede         string       `json:"sede"`
	Month        int          `json:"month"`
	Year         int          `json:"year"`
	MonthName    string       `json:"month_name"`
	Policy       hours.Policy `json:"policy"`
	DaysInMonth  int          `json:"days_in_month"`
	Title        string       `json:"title"`
	Subtitle     string       `json:"subtitle"`
	Rows         []hours.Row  `json:"rows"`
	Totals       Summary      `json:"totals"`
}

// Build runs the hours engine for every roster employee assigned in s.
func Build(
	s schedule.Schedule,
	roster []employee.Employee,
	lookup hours.ConfigLookup,
	month, year int,
	policy hours.Policy,
) Report {
	e := hours.New(s, lookup, month, year, hours.WithPolicy(policy))
	rows := e.Totals(roster)

	var sum Summary
	for _, r := range rows {
		sum.WorkedHours += r.WorkedHours
		sum.TheoreticalHours += r.TheoreticalHours
		sum.Balance += r.Balance
	}

	monthName := calendar.MonthName(e.Month())
	return Report{
		ScheduleID:   s.ID,
		ScheduleName: s.Name,
		Sede:         s.Sede,
		Month:        e.Month(),
		Year:         e.Year(),
		MonthName:    monthName,
		Policy:       e.Policy(),
		DaysInMonth:  e.DaysInMonth(),
		Title:        "Planilla " + s.Name,
		Subtitle:     fmt.Sprintf("Mes: %s %d • Sede: %s", monthName, e.Year(), s.Sede),
		Rows:         rows,
		Totals:       sum,
	}
}

// Filename builds "{name}_{month}_{year}.{ext}" with whitespace runs in the
// name replaced by underscores.
func Filename(name string, month, year int, ext string) string {
	base := strings.Join(strings.Fields(name), "_")
	if base == "" {
		base = "planilla"
	}
	return fmt.Sprintf("%s_%d_%d.%s", base, month, year, strings.TrimPrefix(ext, "."))
}
