package events

import "time"

const AttendanceLifecycleTopic = "attendo.attendance.lifecycle.v1"

const (
	AttendanceCheckedIn  = "attendance_checked_in"
	AttendanceCheckedOut = "attendance_checked_out"
)

type AttendanceRecordedEvent struct {
	EventType    string     `json:"event_type"`
	AttendanceID string     `json:"attendance_id"`
	EmployeeID   string     `json:"employee_id"`
	Date         string     `json:"date"`
	Status       string     `json:"status"`
	ClockIn      *time.Time `json:"clock_in,omitempty"`
	ClockOut     *time.Time `json:"clock_out,omitempty"`
	TotalHours   *float64   `json:"total_hours,omitempty"`
	OccurredAt   time.Time  `json:"occurred_at"`
}
