package employee

import (
	"time"

	"go-shiftplan/internal/shared/jornada"
)

// SaveEmployeeRequest is used for both create and update. On create an
// empty ID gets a generated one.
type SaveEmployeeRequest struct {
	ID           string       `json:"id,omitempty" binding:"omitempty,max=64"`
	FullName     string       `json:"full_name" binding:"required,max=200"`
	ContractType jornada.Type `json:"contract_type" binding:"required"`
	Role         string       `json:"role" binding:"required,max=120"`
	Active       *bool        `json:"active,omitempty"`
	Sede         string       `json:"sede" binding:"required"`
}

type EmployeeResponse struct {
	ID           string       `json:"id"`
	FullName     string       `json:"full_name"`
	ContractType jornada.Type `json:"contract_type"`
	Role         string       `json:"role"`
	Active       bool         `json:"active"`
	Sede         string       `json:"sede"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (r EmployeeResponse) ToEntity() Employee {
	return Employee{
		ID:           r.ID,
		FullName:     r.FullName,
		ContractType: r.ContractType,
		Role:         r.Role,
		Active:       r.Active,
		Sede:         r.Sede,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r EmployeeResponse) ToRequest() SaveEmployeeRequest {
	active := r.Active
	return SaveEmployeeRequest{
		ID:           r.ID,
		FullName:     r.FullName,
		ContractType: r.ContractType,
		Role:         r.Role,
		Active:       &active,
		Sede:         r.Sede,
	}
}
