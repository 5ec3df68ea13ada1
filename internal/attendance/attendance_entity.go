package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Attendance is one employee's record for one calendar day. AttendanceDate is
// always midnight of that day in the configured attendance zone, which keeps
// (employee_id, attendance_date) a valid uniqueness key.
type Attendance struct {
	ID             uuid.UUID    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	AttendanceDate time.Time    `gorm:"column:attendance_date;type:timestamptz;not null;uniqueIndex:uq_attendance_employee_date,priority:2;index"`
	ClockIn        *time.Time   `gorm:"column:clock_in;type:timestamptz"`
	ClockOut       *time.Time   `gorm:"column:clock_out;type:timestamptz"`
	Status         Status       `gorm:"column:status;type:varchar(20);not null;default:absent;index"`
	TotalHours     *float64     `gorm:"column:total_hours;type:numeric(6,2)"`
	CreatedAt      time.Time    `gorm:"column:created_at"`
	UpdatedAt      time.Time    `gorm:"column:updated_at"`
	Employee       *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// EmployeeRef is the read-only slice of the employees table that attendance
// listings and exports join on.
type EmployeeRef struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName     string    `gorm:"column:full_name"`
	Email        string    `gorm:"column:email"`
	EmployeeCode string    `gorm:"column:employee_code"`
	Department   string    `gorm:"column:department"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

func (a Attendance) CheckedIn() bool {
	return a.ClockIn != nil
}

func (a Attendance) CheckedOut() bool {
	return a.ClockOut != nil
}

func (a Attendance) department() string {
	if a.Employee == nil {
		return ""
	}
	return a.Employee.Department
}
