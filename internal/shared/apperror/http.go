package apperror

import (
	"errors"
	"net/http"
)

// Detailer is implemented by structured errors that expose extra response
// details, e.g. the shortfall of an insufficient balance.
type Detailer interface {
	Details() any
}

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP maps any error to a response. Errors outside the AppError taxonomy
// are reported as internal errors without leaking their text.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return HTTPError{
			Status:  ErrInternal.HTTPStatus,
			Code:    ErrInternal.Code,
			Message: ErrInternal.Message,
		}
	}

	out := HTTPError{
		Status:  appErr.HTTPStatus,
		Code:    appErr.Code,
		Message: appErr.Message,
	}
	if out.Status == 0 {
		out.Status = http.StatusInternalServerError
	}

	var d Detailer
	if errors.As(err, &d) {
		out.Details = d.Details()
	}
	return out
}
