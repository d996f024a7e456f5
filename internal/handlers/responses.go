package handlers

import (
	"errors"
	"net/http"

	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors and business logic errors (4xx responses)
//    Use cases:
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Not found errors: SendError(c, errors.CategoryNotFound)
//    - Conflicts: SendError(c, errors.CategoryNameConflict, errors.WithDetails("..."))
//
// 2. SendSystemError - For system/internal errors (500 responses)
//    Use cases:
//    - Database errors from repositories
//    - Service layer internal errors
//    - Unexpected errors that should not expose internal details to client
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
// Used for backward compatibility in tests
type ErrorResponse = apperrors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code apperrors.ErrorCode, opts ...apperrors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := apperrors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with a generic message so internal
// details never reach the client
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := apperrors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// sendDomainValidationError maps model and service validation failures to
// their error codes. Returns false when err is not a validation failure,
// in which case the caller falls through to SendSystemError.
func sendDomainValidationError(c echo.Context, err error) (bool, error) {
	switch {
	case models.IsMoneyValidationError(err):
		return true, SendError(c, apperrors.ValidationInvalidAmount, apperrors.WithDetails(err.Error()))

	case errors.Is(err, models.ErrCategoryNameTooShort),
		errors.Is(err, models.ErrCategoryNameTooLong),
		errors.Is(err, models.ErrVendorLength),
		errors.Is(err, models.ErrNoteLength):
		return true, SendError(c, apperrors.ValidationOutOfRange, apperrors.WithDetails(err.Error()))

	case errors.Is(err, models.ErrTransDateRequired),
		errors.Is(err, services.ErrTransDateNull),
		errors.Is(err, services.ErrAmountNull),
		errors.Is(err, services.ErrVendorNull):
		return true, SendError(c, apperrors.ValidationRequiredField, apperrors.WithDetails(err.Error()))
	}

	return false, nil
}
