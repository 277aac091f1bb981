package http

import (
	"errors"
	"net/http"

	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorField extracts the parameter name an error complains about, so the
// response body points the scanner UI at the offending field. Errors that
// carry no parameter land under the generic "error" key.
func errorField(err error) string {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) && notFound.ParamName != "" {
		return notFound.ParamName
	}
	var invalid *errs.ValueIsInvalidError
	if errors.As(err, &invalid) && invalid.ParamName != "" {
		return invalid.ParamName
	}
	var required *errs.ValueIsRequiredError
	if errors.As(err, &required) && required.ParamName != "" {
		return required.ParamName
	}
	var outOfRange *errs.ValueIsOutOfRangeError
	if errors.As(err, &outOfRange) && outOfRange.ParamName != "" {
		return outOfRange.ParamName
	}
	var conflict *errs.CodeConflictError
	if errors.As(err, &conflict) && conflict.ParamName != "" {
		return conflict.ParamName
	}
	var precondition *errs.PreconditionFailedError
	if errors.As(err, &precondition) && precondition.ParamName != "" {
		return precondition.ParamName
	}
	return "error"
}

// errorStatus maps domain error classes to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrCodeConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrPreconditionFailed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders a domain error as a field-to-message JSON object.
func writeError(ctx echo.Context, err error) error {
	return ctx.JSON(errorStatus(err), map[string]string{
		errorField(err): err.Error(),
	})
}
