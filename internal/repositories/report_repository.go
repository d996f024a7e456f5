package repositories

import (
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
)

// reportRepository implements ReportRepositoryInterface
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) ReportRepositoryInterface {
	return &reportRepository{
		db: db,
	}
}

// MonthlyBudget aggregates spending per category over [start, end) and
// pairs it with each category's budget. A full outer join keeps both
// sides: categories without spending report 0.00, and spending recorded
// without a category shows up as a row with null category fields.
// Ordering puts budgeted categories first by name, with the
// uncategorized row last.
func (r *reportRepository) MonthlyBudget(start, end time.Time) ([]models.MonthlySummary, error) {
	var summaries []models.MonthlySummary

	query := `
		SELECT
			c.id AS category_id,
			c.name AS category_name,
			COALESCE(spent.amount_spent, 0) AS amount_spent,
			c.budget AS budget
		FROM categories c
		FULL OUTER JOIN (
			SELECT category_id, SUM(amount) AS amount_spent
			FROM transactions
			WHERE trans_date >= ? AND trans_date < ?
			GROUP BY category_id
		) spent ON spent.category_id = c.id
		ORDER BY
			CASE WHEN c.budget IS NULL THEN 1 ELSE 0 END,
			CASE WHEN c.name IS NULL THEN 1 ELSE 0 END,
			c.name ASC`

	if err := r.db.Raw(query, start, end).Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to get monthly budget summary: %w", err)
	}

	return summaries, nil
}
