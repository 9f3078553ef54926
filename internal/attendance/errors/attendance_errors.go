package attendanceerrors

import (
	"net/http"

	"dayflow/internal/shared/apperror"
)

var (
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeInvalidState,
		"already checked in today",
		http.StatusBadRequest,
	)
	ErrNotCheckedIn = apperror.New(
		apperror.CodeInvalidState,
		"cannot check out before checking in",
		http.StatusBadRequest,
	)
	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeInvalidState,
		"already checked out today",
		http.StatusBadRequest,
	)
	ErrOnLeaveToday = apperror.New(
		apperror.CodeInvalidState,
		"cannot check in on an approved leave day",
		http.StatusBadRequest,
	)
	ErrInvalidAction = apperror.New(
		apperror.CodeInvalidInput,
		"action must be check_in or check_out",
		http.StatusBadRequest,
	)
	ErrInvalidFilter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid attendance filter",
		http.StatusBadRequest,
	)
)
