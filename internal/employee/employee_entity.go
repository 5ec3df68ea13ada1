package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// Employee is both the roster entry and the login account.
type Employee struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName     string    `gorm:"column:full_name;type:varchar(255);not null"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	Role         string    `gorm:"column:role;type:varchar(20);not null;default:employee;index"`
	EmployeeCode string    `gorm:"column:employee_code;type:varchar(32);not null;uniqueIndex:uq_employee_code"`
	Department   string    `gorm:"column:department;type:varchar(100);index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) IsManager() bool {
	return e.Role == RoleManager
}
