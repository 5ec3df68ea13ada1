package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-attendo/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Filter narrows attendance listings. Zero values disable a condition.
type Filter struct {
	EmployeeID uuid.UUID
	Start      *time.Time
	End        *time.Time
	Status     Status
	Limit      int
	Offset     int
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	InsertCheckIn(ctx context.Context, a *Attendance) (bool, error)
	MarkCheckOut(ctx context.Context, id uuid.UUID, clockOut time.Time, hours float64) (*Attendance, error)
	FindByEmployeeAndDay(ctx context.Context, employeeID uuid.UUID, start, end time.Time) (*Attendance, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Attendance, error)
	FindAll(ctx context.Context, f Filter) ([]Attendance, error)
	Count(ctx context.Context, f Filter) (int64, error)
	FindEmployeeIDByCode(ctx context.Context, code string) (uuid.UUID, error)
	DeleteByEmployee(ctx context.Context, employeeID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.Conn(ctx, r.db, r.tx)
}

// InsertCheckIn stores a check-in for the day of a.AttendanceDate. An existing
// row is only taken over while its clock_in is still empty; the returned flag
// is false when another check-in already won.
func (r *repository) InsertCheckIn(ctx context.Context, a *Attendance) (bool, error) {
	var rows []Attendance

	err := r.conn(ctx).Raw(`
		INSERT INTO attendances (id, employee_id, attendance_date, clock_in, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, now(), now())
		ON CONFLICT (employee_id, attendance_date) DO UPDATE
		SET clock_in = EXCLUDED.clock_in, status = EXCLUDED.status, updated_at = now()
		WHERE attendances.clock_in IS NULL
		RETURNING id, employee_id, attendance_date, clock_in, clock_out, status, total_hours, created_at, updated_at
	`, a.ID, a.EmployeeID, a.AttendanceDate, a.ClockIn, a.Status).Scan(&rows).Error
	if err != nil {
		return false, err
	}
	if len(rows) == 0 {
		return false, nil
	}

	*a = rows[0]
	return true, nil
}

// MarkCheckOut closes a record that is checked in and not yet checked out.
// It returns gorm.ErrRecordNotFound when the guard matched no row.
func (r *repository) MarkCheckOut(ctx context.Context, id uuid.UUID, clockOut time.Time, hours float64) (*Attendance, error) {
	var a Attendance

	res := r.conn(ctx).
		Model(&a).
		Clauses(clause.Returning{}).
		Where("id = ? AND clock_in IS NOT NULL AND clock_out IS NULL", id).
		Updates(map[string]any{
			"clock_out":   clockOut,
			"total_hours": hours,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &a, nil
}

func (r *repository) FindByEmployeeAndDay(ctx context.Context, employeeID uuid.UUID, start, end time.Time) (*Attendance, error) {
	var a Attendance
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date BETWEEN ? AND ?", start, end).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Attendance, error) {
	var a Attendance
	err := r.conn(ctx).
		Preload("Employee").
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) filtered(ctx context.Context, f Filter) *gorm.DB {
	q := r.conn(ctx).Model(&Attendance{})
	if f.EmployeeID != uuid.Nil {
		q = q.Where("employee_id = ?", f.EmployeeID)
	}
	if f.Start != nil {
		q = q.Where("attendance_date >= ?", *f.Start)
	}
	if f.End != nil {
		q = q.Where("attendance_date <= ?", *f.End)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return q
}

func (r *repository) FindAll(ctx context.Context, f Filter) ([]Attendance, error) {
	var rows []Attendance

	q := r.filtered(ctx, f).Preload("Employee")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	err := q.Order("attendance_date DESC, clock_in DESC").Find(&rows).Error
	return rows, err
}

// Count ignores Limit and Offset.
func (r *repository) Count(ctx context.Context, f Filter) (int64, error) {
	var n int64
	err := r.filtered(ctx, f).Count(&n).Error
	return n, err
}

// FindEmployeeIDByCode returns uuid.Nil when no employee has the code.
func (r *repository) FindEmployeeIDByCode(ctx context.Context, code string) (uuid.UUID, error) {
	var refs []EmployeeRef
	err := r.conn(ctx).
		Select("id").
		Where("employee_code = ?", code).
		Limit(1).
		Find(&refs).Error
	if err != nil || len(refs) == 0 {
		return uuid.Nil, err
	}
	return refs[0].ID, nil
}

func (r *repository) DeleteByEmployee(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	res := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&Attendance{})
	return res.RowsAffected, res.Error
}
