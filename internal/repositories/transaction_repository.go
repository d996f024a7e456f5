package repositories

import (
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID with its category read eagerly
func (r *transactionRepository) GetByID(id int64) (*models.Transaction, error) {
	transaction := &models.Transaction{}
	if err := r.db.Preload("Category").First(transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// Update persists all fields of the transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	if err := r.db.Save(transaction).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

// Delete removes a transaction
func (r *transactionRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Transaction{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// CountFiltered counts the transactions matching the filters before
// pagination is applied
func (r *transactionRepository) CountFiltered(filters models.TransactionFilters) (int64, error) {
	var total int64
	if err := r.applyFilters(filters).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}
	return total, nil
}

// FindFiltered retrieves one page of transactions matching the filters.
// The sort order is fixed: trans_date, vendor, amount, all descending.
func (r *transactionRepository) FindFiltered(filters models.TransactionFilters, offset, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction

	if err := r.applyFilters(filters).
		Order("transactions.trans_date DESC, transactions.vendor DESC, transactions.amount DESC").
		Offset(offset).Limit(limit).
		Preload("Category").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, nil
}

// applyFilters builds the filtered query shared by CountFiltered and
// FindFiltered. The free-text term matches vendor, note, or the linked
// category name; the join is needed so the category name participates
// in the OR.
func (r *transactionRepository) applyFilters(filters models.TransactionFilters) *gorm.DB {
	query := r.db.Model(&models.Transaction{}).
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id")

	if filters.Query != "" {
		term := "%" + filters.Query + "%"
		query = query.Where(
			"LOWER(transactions.vendor) LIKE ? OR LOWER(transactions.note) LIKE ? OR LOWER(categories.name) LIKE ?",
			term, term, term,
		)
	}

	if filters.StartDate != nil {
		query = query.Where("transactions.trans_date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("transactions.trans_date <= ?", *filters.EndDate)
	}

	return query
}
