package employee

import (
	"errors"
	"strings"

	employeeerrors "pengelola-cuti/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employee_nik" {
			return employeeerrors.ErrNIKAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_nik") {
		return employeeerrors.ErrNIKAlreadyExists
	}
	if strings.Contains(errMsg, "unique constraint failed: employees.nik") {
		return employeeerrors.ErrNIKAlreadyExists
	}

	return err
}
