package models

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTransaction() *Transaction {
	return &Transaction{
		TransDate: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.NewFromFloat(12.34),
		Vendor:    "Kroger",
	}
}

func TestTransactionValidate(t *testing.T) {
	assert.NoError(t, validTransaction().Validate())
}

func TestTransactionValidate_MissingDate(t *testing.T) {
	transaction := validTransaction()
	transaction.TransDate = time.Time{}
	assert.ErrorIs(t, transaction.Validate(), ErrTransDateRequired)
}

func TestTransactionValidate_VendorLength(t *testing.T) {
	transaction := validTransaction()
	transaction.Vendor = ""
	assert.ErrorIs(t, transaction.Validate(), ErrVendorLength)

	transaction.Vendor = strings.Repeat("v", 26)
	assert.ErrorIs(t, transaction.Validate(), ErrVendorLength)
}

func TestTransactionValidate_NoteLength(t *testing.T) {
	transaction := validTransaction()

	empty := ""
	transaction.Note = &empty
	assert.ErrorIs(t, transaction.Validate(), ErrNoteLength)

	long := strings.Repeat("n", 51)
	transaction.Note = &long
	assert.ErrorIs(t, transaction.Validate(), ErrNoteLength)

	ok := "weekly run"
	transaction.Note = &ok
	assert.NoError(t, transaction.Validate())
}

func TestTransactionValidate_AmountShape(t *testing.T) {
	transaction := validTransaction()
	transaction.Amount = decimal.RequireFromString("123456789.0")
	assert.ErrorIs(t, transaction.Validate(), ErrMoneyTooManyWholeDigits)
}
