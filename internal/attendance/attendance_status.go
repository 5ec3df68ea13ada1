package attendance

import (
	attendanceerrors "go-attendo/internal/attendance/errors"
)

// Status is the closed attendance vocabulary stored in attendances.status.
type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	// StatusHalfDay is accepted and aggregated but nothing produces it yet.
	StatusHalfDay Status = "half-day"
)

var statuses = []Status{StatusPresent, StatusLate, StatusAbsent, StatusHalfDay}

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusAbsent, StatusHalfDay:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus rejects anything outside the vocabulary.
func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.Valid() {
		return "", attendanceerrors.ErrInvalidStatus
	}
	return s, nil
}

// Statuses lists the vocabulary in a stable order.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}
