package leave

import (
	"errors"
	"strings"

	leaveerrors "pengelola-cuti/internal/leave/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapTypeRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_type_of_leave_title" {
			return leaveerrors.ErrTypeOfLeaveExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "uq_type_of_leave_title") ||
		strings.Contains(errMsg, "unique constraint failed: type_of_leaves.title") {
		return leaveerrors.ErrTypeOfLeaveExists
	}

	return err
}
