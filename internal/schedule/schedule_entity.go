package schedule

import (
	"time"

	"go-shiftplan/internal/shared/jornada"
	"go-shiftplan/internal/shared/weekday"
)

type Shift struct {
	Number int    `json:"number" binding:"required"`
	Start  string `json:"start" binding:"required,hhmm"`
	End    string `json:"end" binding:"required,hhmm"`
}

type Assignment struct {
	EmployeeID string       `json:"employee_id" binding:"required"`
	Jornada    jornada.Type `json:"jornada" binding:"required"`
	// Shift is optional while the schedule has a single shift.
	Shift *int `json:"shift,omitempty"`
}

// ShiftNumber returns the assigned shift, defaulting to 1.
func (a Assignment) ShiftNumber() int {
	if a.Shift == nil || *a.Shift == 0 {
		return 1
	}
	return *a.Shift
}

// DayHours overrides the shift range for every date falling on Day.
type DayHours struct {
	Day   weekday.Day `json:"day" binding:"required"`
	Start string      `json:"start" binding:"required,hhmm"`
	End   string      `json:"end" binding:"required,hhmm"`
}

// EmployeeBalance carries hours owed or credited from earlier periods.
type EmployeeBalance struct {
	EmployeeID     string     `json:"employee_id" binding:"required"`
	OpeningBalance float64    `json:"opening_balance"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type Schedule struct {
	ID                   string            `gorm:"type:varchar(64);primaryKey"`
	Name                 string            `gorm:"type:varchar(200)"`
	Sede                 string            `gorm:"type:varchar(120);index"`
	WorkDays             []weekday.Day     `gorm:"type:text;serializer:json"`
	OpeningTime          string            `gorm:"type:varchar(5)"`
	ClosingTime          string            `gorm:"type:varchar(5)"`
	Shifts               []Shift           `gorm:"type:text;serializer:json"`
	Month                int
	Year                 int
	Assignments          []Assignment      `gorm:"type:text;serializer:json"`
	DayHours             []DayHours        `gorm:"type:text;serializer:json"`
	EmployeeBalances     []EmployeeBalance `gorm:"type:text;serializer:json"`
	FullTimeMonthlyHours *float64
	PartTimeMonthlyHours *float64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// AssignmentIndex keys the assignments by employee id. When an employee is
// listed twice the first entry wins.
func (s Schedule) AssignmentIndex() map[string]Assignment {
	idx := make(map[string]Assignment, len(s.Assignments))
	for _, a := range s.Assignments {
		if _, seen := idx[a.EmployeeID]; !seen {
			idx[a.EmployeeID] = a
		}
	}
	return idx
}

func (s Schedule) ShiftByNumber(n int) (Shift, bool) {
	for _, sh := range s.Shifts {
		if sh.Number == n {
			return sh, true
		}
	}
	return Shift{}, false
}

func (s Schedule) DayHoursFor(d weekday.Day) (DayHours, bool) {
	for _, dh := range s.DayHours {
		if dh.Day == d {
			return dh, true
		}
	}
	return DayHours{}, false
}

func (s Schedule) OpeningBalance(employeeID string) float64 {
	for _, b := range s.EmployeeBalances {
		if b.EmployeeID == employeeID {
			return b.OpeningBalance
		}
	}
	return 0
}
