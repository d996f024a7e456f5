package dto

import (
	"finance-tracker/internal/models"
)

// MonthlySummaryResponse is one row of the monthly budget report
type MonthlySummaryResponse struct {
	CategoryID   *int64  `json:"category_id"`
	CategoryName *string `json:"category_name"`
	AmountSpent  string  `json:"amount_spent"`
	Budget       *string `json:"budget"`
}

// NewMonthlySummaryResponseList converts report rows to their read views
func NewMonthlySummaryResponseList(summaries []models.MonthlySummary) []MonthlySummaryResponse {
	result := make([]MonthlySummaryResponse, 0, len(summaries))
	for i := range summaries {
		summary := &summaries[i]
		result = append(result, MonthlySummaryResponse{
			CategoryID:   summary.CategoryID,
			CategoryName: summary.CategoryName,
			AmountSpent:  MoneyString(summary.AmountSpent),
			Budget:       NullMoneyString(summary.Budget),
		})
	}
	return result
}
