package models

import (
	"time"
)

// Pagination bounds for the transaction search endpoint
const (
	DefaultPage = 1
	DefaultSize = 25
	MinSize     = 1
	MaxSize     = 50
)

// TransactionFilters contains search and pagination options for transaction
// queries. Query is expected to already be normalized (trimmed, lowercased,
// internal whitespace collapsed) by the service layer.
type TransactionFilters struct {
	Query     string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Size      int
}

// NewTransactionFilters returns filters with default pagination applied
func NewTransactionFilters() TransactionFilters {
	return TransactionFilters{
		Page: DefaultPage,
		Size: DefaultSize,
	}
}
