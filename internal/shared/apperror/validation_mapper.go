package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldErrors lists every failed field by its json name. It is reported as
// the response details.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	return fmt.Sprintf("%d invalid field(s)", len(f))
}

func (f FieldErrors) Details() any { return map[string]string(f) }

// start_date -> Start Date
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + strings.Join(strings.Fields(e.Param()), ", ")
	case "max":
		if e.Kind() == reflect.String || e.Kind() == reflect.Slice {
			return "must have at most " + e.Param() + " characters"
		}
		return "must be at most " + e.Param()
	case "min":
		if e.Kind() == reflect.Slice {
			return "must have at least " + e.Param() + " item(s)"
		}
		return "must be at least " + e.Param()
	default:
		return "is invalid"
	}
}

// MapValidationError names the first binding failure in the message and lists
// all of them in the details.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest).WithErr(err)
	}

	fields := make(FieldErrors, len(errs))
	for _, e := range errs {
		fields[e.Field()] = describe(e)
	}

	first := errs[0]
	field := formatFieldName(first.Field())
	if first.Tag() == "required" {
		return RequiredField(field).WithErr(fields)
	}
	return New(CodeInvalidInput, fmt.Sprintf("%s %s", field, describe(first)), http.StatusBadRequest).WithErr(fields)
}
