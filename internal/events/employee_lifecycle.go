package events

import "time"

const EmployeeLifecycleTopic = "attendo.employee.lifecycle.v1"

const (
	EmployeeRegistered = "employee_registered"
	EmployeeDeleted    = "employee_deleted"
)

type EmployeeRegisteredEvent struct {
	EventType    string    `json:"event_type"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeCode string    `json:"employee_code"`
	Role         string    `json:"role"`
	Department   string    `json:"department,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type EmployeeDeletedEvent struct {
	EventType         string    `json:"event_type"`
	EmployeeID        string    `json:"employee_id"`
	EmployeeCode      string    `json:"employee_code"`
	AttendanceRemoved int64     `json:"attendance_removed"`
	DeletedBy         string    `json:"deleted_by,omitempty"`
	OccurredAt        time.Time `json:"occurred_at"`
}
