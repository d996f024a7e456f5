package dto

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the payload for POST /transactions/
type CreateTransactionRequest struct {
	TransDate  *Date            `json:"trans_date" validate:"required"`
	Amount     *decimal.Decimal `json:"amount" validate:"required"`
	Vendor     string           `json:"vendor" validate:"required"`
	Note       *string          `json:"note"`
	CategoryID *int64           `json:"category_id"`
}

// UpdateTransactionRequest is the payload for PATCH /transactions/{id}.
// Every field is presence-aware; only supplied fields overwrite.
type UpdateTransactionRequest struct {
	TransDate  Optional[Date]            `json:"trans_date"`
	Amount     Optional[decimal.Decimal] `json:"amount"`
	Vendor     Optional[string]          `json:"vendor"`
	Note       Optional[string]          `json:"note"`
	CategoryID Optional[int64]           `json:"category_id"`
}

// TransactionResponse is the read view of a transaction, with the linked
// category (id and name) read eagerly or null
type TransactionResponse struct {
	ID        int64           `json:"id"`
	TransDate Date            `json:"trans_date"`
	Amount    string          `json:"amount"`
	Vendor    string          `json:"vendor"`
	Note      *string         `json:"note"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt *time.Time      `json:"updated_at"`
	Category  *NestedCategory `json:"category"`
}

// NewTransactionResponse converts a transaction model to its read view
func NewTransactionResponse(transaction *models.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:        transaction.ID,
		TransDate: NewDate(transaction.TransDate),
		Amount:    MoneyString(transaction.Amount),
		Vendor:    transaction.Vendor,
		Note:      transaction.Note,
		CreatedAt: transaction.CreatedAt.UTC(),
	}

	if transaction.UpdatedAt != nil {
		updatedAt := transaction.UpdatedAt.UTC()
		response.UpdatedAt = &updatedAt
	}

	if transaction.Category != nil {
		response.Category = &NestedCategory{
			ID:   transaction.Category.ID,
			Name: transaction.Category.Name,
		}
	}

	return response
}

// NewTransactionResponseList converts transaction models to read views
func NewTransactionResponseList(transactions []models.Transaction) []TransactionResponse {
	result := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		result = append(result, NewTransactionResponse(&transactions[i]))
	}
	return result
}
