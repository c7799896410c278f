package hours

import (
	"math"

	"go-shiftplan/internal/shared/jornada"
)

// Status reads a balance: positive means the employee still owes hours,
// negative means hours in credit.
type Status string

const (
	StatusOwes   Status = "owes"
	StatusCredit Status = "credit"
	StatusEven   Status = "even"
)

// balances within half a hundredth of an hour print as 0.00
const evenTolerance = 0.005

func StatusOf(balance float64) Status {
	switch {
	case math.Abs(balance) < evenTolerance:
		return StatusEven
	case balance > 0:
		return StatusOwes
	default:
		return StatusCredit
	}
}

// Row is the monthly reconciliation of one employee. Balance is
// TheoreticalHours minus WorkedHours.
type Row struct {
	EmployeeID       string       `json:"employee_id"`
	Name             string       `json:"name"`
	ContractType     jornada.Type `json:"contract_type"`
	Jornada          jornada.Type `json:"jornada"`
	Days             []float64    `json:"days"`
	WorkedHours      float64      `json:"worked_hours"`
	TheoreticalHours float64      `json:"theoretical_hours"`
	Balance          float64      `json:"balance"`
	OpeningBalance   float64      `json:"opening_balance"`
	ClosingBalance   float64      `json:"closing_balance"`
	Status           Status       `json:"status"`
}
