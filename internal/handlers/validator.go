package handlers

import (
	"errors"
	"fmt"

	"finance-tracker/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new custom validator backed by the shared
// validation rules
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator().GetValidate()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// formatValidationDetails flattens validator failures into per-field detail
// strings. Field names come from the json tags via the shared tag-name func.
func formatValidationDetails(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		var msg string
		switch fieldError.Tag() {
		case "required":
			msg = "is required"
		case "year_month":
			msg = "must be a valid YYYY-MM no later than the current year"
		default:
			msg = fmt.Sprintf("failed %s validation", fieldError.Tag())
		}
		details = append(details, fmt.Sprintf("%s: %s", fieldError.Field(), msg))
	}

	return details
}
