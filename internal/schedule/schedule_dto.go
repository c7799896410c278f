package schedule

import (
	"time"

	"go-shiftplan/internal/shared/weekday"
)

type SaveScheduleRequest struct {
	ID                   string            `json:"id,omitempty" binding:"omitempty,max=64"`
	Name                 string            `json:"name" binding:"max=200"`
	Sede                 string            `json:"sede" binding:"required"`
	WorkDays             []weekday.Day     `json:"work_days"`
	OpeningTime          string            `json:"opening_time" binding:"required,hhmm"`
	ClosingTime          string            `json:"closing_time" binding:"required,hhmm"`
	Shifts               []Shift           `json:"shifts" binding:"dive"`
	Month                int               `json:"month"`
	Year                 int               `json:"year" binding:"required"`
	Assignments          []Assignment      `json:"assignments" binding:"dive"`
	DayHours             []DayHours        `json:"day_hours,omitempty" binding:"dive"`
	EmployeeBalances     []EmployeeBalance `json:"employee_balances,omitempty" binding:"dive"`
	FullTimeMonthlyHours *float64          `json:"full_time_monthly_hours,omitempty"`
	PartTimeMonthlyHours *float64          `json:"part_time_monthly_hours,omitempty"`
}

type ScheduleResponse struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	Sede                 string            `json:"sede"`
	WorkDays             []weekday.Day     `json:"work_days"`
	OpeningTime          string            `json:"opening_time"`
	ClosingTime          string            `json:"closing_time"`
	Shifts               []Shift           `json:"shifts"`
	Month                int               `json:"month"`
	Year                 int               `json:"year"`
	Assignments          []Assignment      `json:"assignments"`
	DayHours             []DayHours        `json:"day_hours,omitempty"`
	EmployeeBalances     []EmployeeBalance `json:"employee_balances,omitempty"`
	FullTimeMonthlyHours *float64          `json:"full_time_monthly_hours,omitempty"`
	PartTimeMonthlyHours *float64          `json:"part_time_monthly_hours,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

// ToEntity rebuilds the record so API consumers can feed it to the hours
// engine.
func (r ScheduleResponse) ToEntity() Schedule {
	return Schedule{
		ID:                   r.ID,
		Name:                 r.Name,
		Sede:                 r.Sede,
		WorkDays:             r.WorkDays,
		OpeningTime:          r.OpeningTime,
		ClosingTime:          r.ClosingTime,
		Shifts:               r.Shifts,
		Month:                r.Month,
		Year:                 r.Year,
		Assignments:          r.Assignments,
		DayHours:             r.DayHours,
		EmployeeBalances:     r.EmployeeBalances,
		FullTimeMonthlyHours: r.FullTimeMonthlyHours,
		PartTimeMonthlyHours: r.PartTimeMonthlyHours,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

// ToRequest turns a stored schedule back into a save payload.
func (r ScheduleResponse) ToRequest() SaveScheduleRequest {
	return SaveScheduleRequest{
		ID:                   r.ID,
		Name:                 r.Name,
		Sede:                 r.Sede,
		WorkDays:             r.WorkDays,
		OpeningTime:          r.OpeningTime,
		ClosingTime:          r.ClosingTime,
		Shifts:               r.Shifts,
		Month:                r.Month,
		Year:                 r.Year,
		Assignments:          r.Assignments,
		DayHours:             r.DayHours,
		EmployeeBalances:     r.EmployeeBalances,
		FullTimeMonthlyHours: r.FullTimeMonthlyHours,
		PartTimeMonthlyHours: r.PartTimeMonthlyHours,
	}
}
