package repositories

import (
	"time"

	"finance-tracker/internal/models"
)

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetAll() ([]models.Category, error)
	GetByID(id int64) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	Update(category *models.Category) error
	Delete(id int64) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id int64) (*models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(id int64) error
	CountFiltered(filters models.TransactionFilters) (int64, error)
	FindFiltered(filters models.TransactionFilters, offset, limit int) ([]models.Transaction, error)
}

// ReportRepositoryInterface defines the contract for report repository operations
type ReportRepositoryInterface interface {
	MonthlyBudget(start, end time.Time) ([]models.MonthlySummary, error)
}
