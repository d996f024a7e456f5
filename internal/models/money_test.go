package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMoney_Valid(t *testing.T) {
	cases := []string{
		"0",
		"0.01",
		"10",
		"10.50",
		"-42.99",
		"99999999.99",
		"-99999999.99",
	}

	for _, value := range cases {
		d, err := decimal.NewFromString(value)
		require.NoError(t, err)
		assert.NoError(t, ValidateMoney(d), "expected %s to be valid", value)
	}
}

func TestValidateMoney_TooManyDecimalPlaces(t *testing.T) {
	d, err := decimal.NewFromString("10.123")
	require.NoError(t, err)

	assert.ErrorIs(t, ValidateMoney(d), ErrMoneyTooManyPlaces)
}

func TestValidateMoney_TooManyWholeDigits(t *testing.T) {
	d, err := decimal.NewFromString("123456789.0")
	require.NoError(t, err)

	assert.ErrorIs(t, ValidateMoney(d), ErrMoneyTooManyWholeDigits)
}

// Trailing zeros stay in the coefficient, so nine whole digits written with
// two places exceed the total-digit budget before the whole-digit one
func TestValidateMoney_ScaleTwoCoefficientCountsTowardTotal(t *testing.T) {
	d, err := decimal.NewFromString("123456789.00")
	require.NoError(t, err)

	assert.ErrorIs(t, ValidateMoney(d), ErrMoneyTooManyDigits)
}

// A value that blows both budgets reports the total-digit violation first
func TestValidateMoney_TooManyDigitsWinsOverWholeDigits(t *testing.T) {
	d, err := decimal.NewFromString("123456789.123")
	require.NoError(t, err)

	assert.ErrorIs(t, ValidateMoney(d), ErrMoneyTooManyDigits)
}

func TestValidateMoney_ExponentCountsAsWholeDigits(t *testing.T) {
	// 1e9 has a single coefficient digit but ten whole digits
	d := decimal.New(1, 9)

	assert.ErrorIs(t, ValidateMoney(d), ErrMoneyTooManyWholeDigits)
}

func TestValidateMoney_NegativeSignDoesNotCount(t *testing.T) {
	d, err := decimal.NewFromString("-99999999.99")
	require.NoError(t, err)

	assert.NoError(t, ValidateMoney(d))
}

func TestIsMoneyValidationError(t *testing.T) {
	assert.True(t, IsMoneyValidationError(ErrMoneyTooManyDigits))
	assert.True(t, IsMoneyValidationError(ErrMoneyTooManyPlaces))
	assert.True(t, IsMoneyValidationError(ErrMoneyTooManyWholeDigits))
	assert.False(t, IsMoneyValidationError(ErrVendorLength))
}
