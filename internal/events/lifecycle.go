package events

import "time"

const (
	EmployeeLifecycleTopic = "shiftplan.employee.lifecycle.v1"
	ScheduleLifecycleTopic = "shiftplan.schedule.lifecycle.v1"
	WorktimeLifecycleTopic = "shiftplan.worktime.lifecycle.v1"
)

// Topics lists every lifecycle topic the consumer subscribes to.
var Topics = []string{
	EmployeeLifecycleTopic,
	ScheduleLifecycleTopic,
	WorktimeLifecycleTopic,
}

const (
	EmployeeSaved   = "employee_saved"
	EmployeeDeleted = "employee_deleted"
	ScheduleSaved   = "schedule_saved"
	ScheduleDeleted = "schedule_deleted"
	WorktimeSaved   = "worktime_config_saved"
)

// LifecycleEvent is published whenever a record that feeds the planilla
// changes. Sede is always set so consumers can refresh per location.
type LifecycleEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	AggregateType string    `json:"aggregate_type"`
	AggregateID   string    `json:"aggregate_id"`
	Sede          string    `json:"sede"`
	OccurredAt    time.Time `json:"occurred_at"`
}
