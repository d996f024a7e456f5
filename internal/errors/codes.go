package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidAmount ErrorCode = "VALIDATION_006"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound     ErrorCode = "CATEGORY_001"
	CategoryNameConflict ErrorCode = "CATEGORY_002"
	CategoryNameRequired ErrorCode = "CATEGORY_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound ErrorCode = "TRANSACTION_001"
)

// Report error codes (REPORT_*)
const (
	ReportInvalidYearMonth ErrorCode = "REPORT_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidAmount: "Invalid monetary amount",

	// Category errors
	CategoryNotFound:     "Category not found",
	CategoryNameConflict: "A category with this name already exists",
	CategoryNameRequired: "Category name cannot be removed",

	// Transaction errors
	TransactionNotFound: "Transaction not found",

	// Report errors
	ReportInvalidYearMonth: "year_month must match YYYY-MM with a valid month and a year no later than the current year",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
