package dto

import (
	"testing"
	"time"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Stored timestamps may carry a session timezone; the read view always
// serializes them in UTC
func TestNewTransactionResponse_TimestampsInUTC(t *testing.T) {
	berlin := time.FixedZone("CEST", 2*60*60)
	updatedAt := time.Date(2026, 8, 15, 14, 30, 0, 0, berlin)

	transaction := &models.Transaction{
		ID:        7,
		TransDate: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.NewFromFloat(12.34),
		Vendor:    "Kroger",
		CreatedAt: time.Date(2026, 8, 15, 10, 0, 0, 0, berlin),
		UpdatedAt: &updatedAt,
	}

	response := NewTransactionResponse(transaction)

	assert.Equal(t, time.UTC, response.CreatedAt.Location())
	require.NotNil(t, response.UpdatedAt)
	assert.Equal(t, time.UTC, response.UpdatedAt.Location())
	assert.True(t, response.UpdatedAt.Equal(updatedAt))
}

func TestNewTransactionResponse_NilUpdatedAt(t *testing.T) {
	transaction := &models.Transaction{
		TransDate: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.NewFromFloat(12.34),
		Vendor:    "Kroger",
		CreatedAt: time.Now().UTC(),
	}

	response := NewTransactionResponse(transaction)

	assert.Nil(t, response.UpdatedAt)
	assert.Nil(t, response.Category)
}
