package positionerrors

import (
	"net/http"

	"pengelola-cuti/internal/shared/apperror"
)

var (
	ErrPositionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Position not found",
		http.StatusNotFound,
	)
	ErrInvalidPositionID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid position ID",
		http.StatusBadRequest,
	)
	ErrPositionAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Position with the same name already exists",
		http.StatusConflict,
	)
	ErrPositionInUse = apperror.New(
		apperror.CodeConflict,
		"Position is still assigned to employees",
		http.StatusConflict,
	)
)
