package attendance

import (
	"math"
	"time"

	attendanceerrors "go-attendo/internal/attendance/errors"

	"github.com/google/uuid"
)

// EvaluateCheckIn decides the record that a check-in at now produces.
// A record that exists without a check-in (an absent placeholder) is updated
// in place and keeps its ID.
func EvaluateCheckIn(employeeID uuid.UUID, existing *Attendance, now time.Time, loc *time.Location) (*Attendance, error) {
	if existing != nil && existing.ClockIn != nil {
		return nil, attendanceerrors.ErrAlreadyCheckedIn
	}

	clockIn := now
	status := StatusAt(now, loc)

	if existing != nil {
		next := *existing
		next.ClockIn = &clockIn
		next.Status = status
		return &next, nil
	}

	return &Attendance{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		AttendanceDate: StartOfDay(now, loc),
		ClockIn:        &clockIn,
		Status:         status,
	}, nil
}

// EvaluateCheckOut closes today's record. Status is left as set at check-in.
func EvaluateCheckOut(existing *Attendance, now time.Time) (*Attendance, error) {
	if existing == nil || existing.ClockIn == nil {
		return nil, attendanceerrors.ErrNotCheckedIn
	}
	if existing.ClockOut != nil {
		return nil, attendanceerrors.ErrAlreadyCheckedOut
	}

	clockOut := now
	if clockOut.Before(*existing.ClockIn) {
		clockOut = *existing.ClockIn
	}
	hours := ElapsedHours(*existing.ClockIn, clockOut)

	next := *existing
	next.ClockOut = &clockOut
	next.TotalHours = &hours
	return &next, nil
}

// ElapsedHours is the duration between in and out in hours, rounded to two
// decimals.
func ElapsedHours(in, out time.Time) float64 {
	return roundHours(out.Sub(in).Hours())
}

// EffectiveHours prefers the recomputed duration over the stored value.
func EffectiveHours(a Attendance) float64 {
	if a.ClockIn != nil && a.ClockOut != nil {
		return ElapsedHours(*a.ClockIn, *a.ClockOut)
	}
	if a.TotalHours != nil {
		return *a.TotalHours
	}
	return 0
}

func storedHours(a Attendance) float64 {
	if a.TotalHours == nil {
		return 0
	}
	return *a.TotalHours
}

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
