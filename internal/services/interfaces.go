package services

import (
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
)

// CategoryServiceInterface defines the contract for category business operations
type CategoryServiceInterface interface {
	Create(req dto.CreateCategoryRequest) (*models.Category, error)
	GetAll() ([]models.Category, error)
	GetByID(id int64) (*models.Category, error)
	Update(id int64, req dto.UpdateCategoryRequest) (*models.Category, error)
	Delete(id int64) error
}

// TransactionServiceInterface defines the contract for transaction business operations
type TransactionServiceInterface interface {
	Create(req dto.CreateTransactionRequest) (*models.Transaction, error)
	GetByID(id int64) (*models.Transaction, error)
	Update(id int64, req dto.UpdateTransactionRequest) (*models.Transaction, error)
	Delete(id int64) error
	Search(filters models.TransactionFilters) (*TransactionSearchResult, error)
}

// ReportServiceInterface defines the contract for reporting operations
type ReportServiceInterface interface {
	MonthlyBudget(yearMonth string) ([]models.MonthlySummary, error)
}

// MetricsRecorderInterface records service-level observability signals
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}
