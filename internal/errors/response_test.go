package errors

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorResponse(t *testing.T) {
	response := NewErrorResponse(CategoryNotFound, "trace-123")

	assert.Equal(t, "CATEGORY_001", response.Error.Code)
	assert.Equal(t, "Category not found", response.Error.Message)
	assert.Equal(t, "trace-123", response.Error.TraceID)
	assert.Empty(t, response.Error.Details)
}

func TestNewErrorResponse_WithOptions(t *testing.T) {
	response := NewErrorResponse(
		CategoryNameConflict,
		"trace-123",
		WithMessage("Category with name 'Food' already exists (ID 7)"),
		WithDetails("normalized name collision"),
	)

	assert.Equal(t, "Category with name 'Food' already exists (ID 7)", response.Error.Message)
	assert.Equal(t, []string{"normalized name collision"}, response.Error.Details)
}

func TestGetHTTPStatus(t *testing.T) {
	cases := map[ErrorCode]int{
		CategoryNotFound:         http.StatusNotFound,
		TransactionNotFound:      http.StatusNotFound,
		CategoryNameConflict:     http.StatusConflict,
		CategoryNameRequired:     http.StatusUnprocessableEntity,
		ValidationGeneral:        http.StatusUnprocessableEntity,
		ValidationInvalidAmount:  http.StatusUnprocessableEntity,
		ReportInvalidYearMonth:   http.StatusUnprocessableEntity,
		SystemRateLimitExceeded:  http.StatusTooManyRequests,
		SystemServiceUnavailable: http.StatusServiceUnavailable,
		SystemInternalError:      http.StatusInternalServerError,
		ErrorCode("BOGUS_999"):   http.StatusInternalServerError,
	}

	for code, expected := range cases {
		assert.Equal(t, expected, GetHTTPStatus(code), "code %s", code)
	}
}

func TestErrorResponse_JSONShape(t *testing.T) {
	response := NewErrorResponse(TransactionNotFound, "trace-456")

	payload, err := response.ToJSON()
	require.NoError(t, err)

	var decoded map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &decoded))

	detail, ok := decoded["error"]
	require.True(t, ok)
	assert.Equal(t, "TRANSACTION_001", detail["code"])
	assert.Equal(t, "trace-456", detail["trace_id"])
}

func TestIsClientAndServerError(t *testing.T) {
	notFound := NewErrorResponse(CategoryNotFound, "t")
	assert.True(t, notFound.IsClientError())
	assert.False(t, notFound.IsServerError())

	internal := NewErrorResponse(SystemInternalError, "t")
	assert.False(t, internal.IsClientError())
	assert.True(t, internal.IsServerError())
}

func TestIsValidErrorCode(t *testing.T) {
	assert.True(t, IsValidErrorCode(CategoryNameConflict))
	assert.False(t, IsValidErrorCode(ErrorCode("NOPE_001")))
}
