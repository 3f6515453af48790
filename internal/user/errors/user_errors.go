package usererrors

import (
	"net/http"

	"pengelola-cuti/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown role",
		http.StatusBadRequest,
	)

	ErrWrongPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Current password is incorrect",
		http.StatusBadRequest,
	)

	ErrSelfModification = apperror.New(
		apperror.CodeForbidden,
		"You cannot change your own role or status",
		http.StatusForbidden,
	)

	ErrPrivilegedAccount = apperror.New(
		apperror.CodeForbidden,
		"Only SUPER_ADMIN can manage ADMIN and SUPER_ADMIN accounts",
		http.StatusForbidden,
	)
)
