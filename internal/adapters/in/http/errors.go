package http

import (
	"errors"
	"fmt"
	"net/http"

	"commerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Stable error codes carried by every error response. Clients branch on
// these, not on HTTP status.
const (
	CodeNotFound        = "NOT_FOUND"
	CodeForbidden       = "FORBIDDEN"
	CodeInvalidOrder    = "INVALID_ORDER"
	CodeDuplicate       = "DUPLICATE"
	CodeValidationError = "VALIDATION_ERROR"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeInternal        = "INTERNAL"
)

// respondError maps a use case error to the HTTP error contract.
// Validation failures carry field-level detail; everything unrecognized
// becomes an opaque internal error.
func respondError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    CodeNotFound,
			Message: notFound.Error(),
		})
	}

	var forbidden *errs.ForbiddenError
	if errors.As(err, &forbidden) {
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    CodeForbidden,
			Message: forbidden.Error(),
		})
	}

	var invalidOrder *errs.InvalidOrderError
	if errors.As(err, &invalidOrder) {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    CodeInvalidOrder,
			Message: invalidOrder.Error(),
		})
	}

	var conflict *errs.ConflictError
	if errors.As(err, &conflict) {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    CodeDuplicate,
			Message: conflict.Error(),
		})
	}

	if details, ok := validationDetails(err); ok {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    CodeValidationError,
			Message: "Invalid request data",
			Details: details,
		})
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    CodeInternal,
		Message: "Internal server error",
	})
}

// validationDetails collects field-level messages from validation errors.
// Joined errors contribute one entry per failed field.
func validationDetails(err error) (map[string]string, bool) {
	details := make(map[string]string)
	collectValidationDetails(err, details)
	if len(details) == 0 {
		return nil, false
	}
	return details, true
}

func collectValidationDetails(err error, details map[string]string) {
	if err == nil {
		return
	}

	// errors.Join produces a multi-error; walk every branch.
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			collectValidationDetails(e, details)
		}
		return
	}

	var required *errs.ValueIsRequiredError
	if errors.As(err, &required) {
		details[required.ParamName] = "is required"
		return
	}

	var invalid *errs.ValueIsInvalidError
	if errors.As(err, &invalid) {
		details[invalid.ParamName] = "is invalid"
		return
	}

	var outOfRange *errs.ValueIsOutOfRangeError
	if errors.As(err, &outOfRange) {
		details[outOfRange.ParamName] = fmt.Sprintf("must be between %v and %v, got %v",
			outOfRange.Min, outOfRange.Max, outOfRange.Value)
		return
	}
}
