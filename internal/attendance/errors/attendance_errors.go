package attendanceerrors

import (
	"net/http"

	"go-attendo/internal/shared/apperror"
)

const (
	CodeAlreadyCheckedIn  = "ALREADY_CHECKED_IN"
	CodeAlreadyCheckedOut = "ALREADY_CHECKED_OUT"
	CodeNotCheckedIn      = "NOT_CHECKED_IN"
)

var (
	ErrAlreadyCheckedIn = apperror.New(
		CodeAlreadyCheckedIn,
		"Already checked in today",
		http.StatusBadRequest,
	)
	ErrAlreadyCheckedOut = apperror.New(
		CodeAlreadyCheckedOut,
		"Already checked out today",
		http.StatusBadRequest,
	)
	ErrNotCheckedIn = apperror.New(
		CodeNotCheckedIn,
		"Please check in first",
		http.StatusBadRequest,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
	ErrInvalidAttendanceID = apperror.New(
		apperror.CodeValidation,
		"invalid attendance id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeValidation,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeValidation,
		"month must be a number between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeValidation,
		"year must be a four digit number",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeValidation,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrIncompleteDateRange = apperror.New(
		apperror.CodeValidation,
		"start_date and end_date must be provided together",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidation,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeValidation,
		"status must be one of present, late, absent, half-day",
		http.StatusBadRequest,
	)
	ErrInvalidExportFormat = apperror.New(
		apperror.CodeValidation,
		"format must be csv or xlsx",
		http.StatusBadRequest,
	)
)
