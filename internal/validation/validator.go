package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("year_month", validateYearMonth)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

var yearMonthPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// validateYearMonth validates a YYYY-MM report month: the month must be
// 01-12 and the year must not be in the future
func validateYearMonth(fl validator.FieldLevel) bool {
	return IsValidYearMonth(fl.Field().String())
}

// IsValidYearMonth reports whether value is a well-formed, non-future
// YYYY-MM string
func IsValidYearMonth(value string) bool {
	matches := yearMonthPattern.FindStringSubmatch(value)
	if matches == nil {
		return false
	}

	parsed, err := time.Parse("2006-01", value)
	if err != nil {
		return false
	}

	return parsed.Year() <= time.Now().UTC().Year()
}
