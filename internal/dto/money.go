package dto

import (
	"github.com/shopspring/decimal"
)

// MoneyString renders a monetary value as a fixed-2-decimal string.
// Amounts never serialize as floating numbers.
func MoneyString(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// NullMoneyString renders an optional monetary value, mapping invalid
// (null) to nil
func NullMoneyString(nd decimal.NullDecimal) *string {
	if !nd.Valid {
		return nil
	}
	s := nd.Decimal.StringFixed(2)
	return &s
}
