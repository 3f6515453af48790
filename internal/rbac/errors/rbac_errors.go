package rbacerrors

import (
	"net/http"

	"pengelola-cuti/internal/shared/apperror"
)

var (
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"unknown role",
		http.StatusBadRequest,
	)
	ErrInvalidPermission = apperror.New(
		apperror.CodeInvalidInput,
		"permission must be <resource>:<action> with a known resource and action",
		http.StatusBadRequest,
	)
	ErrImmutableRole = apperror.New(
		apperror.CodeForbidden,
		"SUPER_ADMIN permissions cannot be changed",
		http.StatusForbidden,
	)
)
