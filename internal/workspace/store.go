package workspace

import (
	"context"

	"go-shiftplan/internal/employee"
	"go-shiftplan/internal/schedule"
	"go-shiftplan/internal/worktime"
)

// Store is the persistence collaborator behind the coordinator. Save calls
// create or update and return the canonical record.
//
//go:generate mockgen -source=store.go -destination=mock/store_mock.go -package=mock
type Store interface {
	ListEmployees(ctx context.Context, sede string) ([]employee.EmployeeResponse, error)
	ListSchedules(ctx context.Context, sede string) ([]schedule.ScheduleResponse, error)
	ListWorkTimeConfigs(ctx context.Context, sede string) ([]worktime.ConfigResponse, error)
	SaveEmployee(ctx context.Context, req employee.SaveEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error
	SaveSchedule(ctx context.Context, req schedule.SaveScheduleRequest) (schedule.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, id string) error
	SaveWorkTimeConfig(ctx context.Context, req worktime.SaveConfigRequest) (worktime.ConfigResponse, error)
}
