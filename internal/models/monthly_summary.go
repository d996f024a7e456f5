package models

import (
	"github.com/shopspring/decimal"
)

// MonthlySummary is one row of the monthly budget report: total spend for a
// category within a calendar month, next to that category's budget. The
// nullable fields cover the two synthetic cases: a category with no spend
// (amount coalesced to zero) and transactions with no category (null id and
// name).
type MonthlySummary struct {
	CategoryID   *int64              `gorm:"column:category_id"`
	CategoryName *string             `gorm:"column:category_name"`
	AmountSpent  decimal.Decimal     `gorm:"column:amount_spent"`
	Budget       decimal.NullDecimal `gorm:"column:budget"`
}
