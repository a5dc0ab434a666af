package settingserrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrInvalidQuota = apperror.New(
		apperror.CodeInvalidInput,
		"Quota must name known leave types with non-negative days",
		http.StatusBadRequest,
	)
	ErrInvalidWorkingDays = apperror.New(
		apperror.CodeInvalidInput,
		"Working days must be one or more English weekday names",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid accounting period",
		http.StatusBadRequest,
	)
	ErrInvalidApproverRole = apperror.New(
		apperror.CodeInvalidInput,
		"Approver role must be LINE_MANAGER, HR or ADMIN",
		http.StatusBadRequest,
	)
	ErrInvalidDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"Department is required",
		http.StatusBadRequest,
	)
	ErrWorkflowNotFound = apperror.New(
		apperror.CodeNotFound,
		"No workflow is configured for this department",
		http.StatusNotFound,
	)
	ErrOverrideNotFound = apperror.New(
		apperror.CodeNotFound,
		"No quota override exists for this employee",
		http.StatusNotFound,
	)
)
