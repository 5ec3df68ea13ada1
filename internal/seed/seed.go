// Package seed loads a deterministic demo roster and thirty days of
// attendance history.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go-attendo/internal/attendance"
	"go-attendo/internal/employee"
	"go-attendo/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	historyDays      = 30
	presentChance    = 0.8
	managerPassword  = "manager123"
	employeePassword = "employee123"
)

type person struct {
	name, email, code, department string
}

var manager = person{"Manager User", "manager@example.com", "MGR001", "Management"}

var roster = []person{
	{"John Doe", "john@example.com", "EMP001", "Engineering"},
	{"Jane Smith", "jane@example.com", "EMP002", "Engineering"},
	{"Bob Johnson", "bob@example.com", "EMP003", "Sales"},
	{"Alice Williams", "alice@example.com", "EMP004", "Marketing"},
	{"Charlie Brown", "charlie@example.com", "EMP005", "Engineering"},
	{"David Wilson", "david@example.com", "EMP006", "HR"},
	{"Emma Davis", "emma@example.com", "EMP007", "Finance"},
	{"Frank Miller", "frank@example.com", "EMP008", "Engineering"},
	{"Grace Lee", "grace@example.com", "EMP009", "Sales"},
	{"Henry Taylor", "henry@example.com", "EMP010", "Marketing"},
}

type Options struct {
	Seed     uint64
	Today    time.Time
	Location *time.Location
}

// Employees builds the manager followed by the ten demo employees with
// hashed passwords.
func Employees() ([]employee.Employee, error) {
	mgrHash, err := bcrypt.GenerateFromPassword([]byte(managerPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	empHash, err := bcrypt.GenerateFromPassword([]byte(employeePassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	out := make([]employee.Employee, 0, len(roster)+1)
	out = append(out, newEmployee(manager, employee.RoleManager, string(mgrHash)))
	for _, p := range roster {
		out = append(out, newEmployee(p, employee.RoleEmployee, string(empHash)))
	}
	return out, nil
}

func newEmployee(p person, role, hash string) employee.Employee {
	return employee.Employee{
		ID:           uuid.New(),
		FullName:     p.name,
		Email:        p.email,
		PasswordHash: hash,
		Role:         role,
		EmployeeCode: p.code,
		Department:   p.department,
	}
}

// History generates weekday records for the last thirty days, today
// included. Each employee is present with 80% probability, checking in
// between 08:00 and 09:59 and out between 17:00 and 18:59; otherwise an
// explicit absent row is written. The same seed always yields the same
// statuses and times.
func History(employees []employee.Employee, opts Options) []attendance.Attendance {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	var out []attendance.Attendance
	for i := 0; i < historyDays; i++ {
		day := attendance.StartOfDay(opts.Today.AddDate(0, 0, -i), loc)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		for _, e := range employees {
			if e.IsManager() {
				continue
			}

			rec := attendance.Attendance{
				ID:             uuid.New(),
				EmployeeID:     e.ID,
				AttendanceDate: day,
				Status:         attendance.StatusAbsent,
			}

			if rng.Float64() < presentChance {
				in := day.Add(time.Duration(8+rng.IntN(2))*time.Hour + time.Duration(rng.IntN(60))*time.Minute)
				outAt := day.Add(time.Duration(17+rng.IntN(2))*time.Hour + time.Duration(rng.IntN(60))*time.Minute)
				hours := attendance.ElapsedHours(in, outAt)

				rec.ClockIn = &in
				rec.ClockOut = &outAt
				rec.TotalHours = &hours
				rec.Status = attendance.StatusAt(in, loc)
			}
			out = append(out, rec)
		}
	}
	return out
}

// Run replaces all employees and attendance with the demo data set and moves
// the employee code counter past the seeded codes.
func Run(ctx context.Context, db *gorm.DB, opts Options, logger *zap.Logger) error {
	log := logger.Named("seed")

	employees, err := Employees()
	if err != nil {
		return fmt.Errorf("hash passwords: %w", err)
	}
	records := History(employees, opts)

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM attendances").Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM employees").Error; err != nil {
			return err
		}
		log.Info("cleared existing data")

		if err := tx.Create(&employees).Error; err != nil {
			return fmt.Errorf("insert employees: %w", err)
		}
		if err := tx.CreateInBatches(&records, 100).Error; err != nil {
			return fmt.Errorf("insert attendance: %w", err)
		}

		err := tx.Exec(`
			INSERT INTO counters (counter_type, last_value, updated_at)
			VALUES (?, ?, now())
			ON CONFLICT (counter_type) DO UPDATE
			SET last_value = EXCLUDED.last_value, updated_at = now()
		`, counter.EmployeeCode, len(roster)).Error
		if err != nil {
			return fmt.Errorf("advance employee code counter: %w", err)
		}

		log.Info("seeded demo data",
			zap.Int("employees", len(employees)),
			zap.Int("attendance", len(records)),
			zap.String("manager", manager.email),
		)
		return nil
	})
}
