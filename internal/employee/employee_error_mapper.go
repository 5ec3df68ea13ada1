package employee

import (
	"errors"
	"strings"

	employeeerrors "go-attendo/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	constraintEmail = "uq_employee_email"
	constraintCode  = "uq_employee_code"

	pgUniqueViolation = "23505"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		switch pgErr.ConstraintName {
		case constraintCode:
			return employeeerrors.ErrEmployeeCodeAlreadyExists
		case constraintEmail:
			return employeeerrors.ErrEmployeeAlreadyExists
		}
	}

	// some drivers only surface the constraint in the message
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		switch {
		case strings.Contains(errMsg, constraintCode):
			return employeeerrors.ErrEmployeeCodeAlreadyExists
		case strings.Contains(errMsg, constraintEmail):
			return employeeerrors.ErrEmployeeAlreadyExists
		}
	}

	return err
}
