package services

import (
	"finance-tracker/internal/models"
)

// TransactionSearchResult is one page of a transaction search. Page is the
// effective page after clamping, which may differ from the requested one.
type TransactionSearchResult struct {
	Transactions []models.Transaction
	TotalCount   int64
	Page         int
	Size         int
	TotalPages   int
}

// totalPages computes the page count for a result set. An empty result
// still has one (empty) page so that page clamping never lands on page 0.
func totalPages(totalCount int64, size int) int {
	if totalCount <= 0 {
		return 1
	}
	pages := int((totalCount + int64(size) - 1) / int64(size))
	if pages < 1 {
		return 1
	}
	return pages
}

// clampPage pulls a requested page back to the last available one.
// Requests beyond the end return the final page instead of an empty slice.
func clampPage(page, totalPages int) int {
	if page > totalPages {
		return totalPages
	}
	if page < 1 {
		return 1
	}
	return page
}
