package dto

import (
	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest is the payload for POST /categories/
type CreateCategoryRequest struct {
	Name   string           `json:"name" validate:"required"`
	Budget *decimal.Decimal `json:"budget"`
}

// UpdateCategoryRequest is the payload for PATCH /categories/{id}.
// Only fields present in the request are applied; budget may be explicitly
// nulled, name may not.
type UpdateCategoryRequest struct {
	Name   Optional[string]          `json:"name"`
	Budget Optional[decimal.Decimal] `json:"budget"`
}

// CategoryResponse is the read view of a category. Budget serializes as a
// fixed-2-decimal string or null.
type CategoryResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Budget *string `json:"budget"`
}

// NestedCategory is the minimal category info embedded in transaction reads
type NestedCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DeleteResponse confirms a successful delete
type DeleteResponse struct {
	Detail string `json:"detail"`
}

// NewCategoryResponse converts a category model to its read view
func NewCategoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:     category.ID,
		Name:   category.Name,
		Budget: NullMoneyString(category.Budget),
	}
}

// NewCategoryResponseList converts category models to read views
func NewCategoryResponseList(categories []models.Category) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, NewCategoryResponse(&categories[i]))
	}
	return result
}
