package services

import (
	"errors"
	"strings"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
)

var (
	ErrTransDateNull = errors.New("trans_date cannot be null")
	ErrAmountNull    = errors.New("amount cannot be null")
	ErrVendorNull    = errors.New("vendor cannot be null")
)

// transactionService implements TransactionServiceInterface
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
	}
}

// Create persists a new transaction. A supplied category reference must
// point at an existing category.
func (s *transactionService) Create(req dto.CreateTransactionRequest) (*models.Transaction, error) {
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*req.CategoryID); err != nil {
			return nil, err
		}
	}

	transaction := &models.Transaction{
		TransDate:  req.TransDate.Time,
		Amount:     *req.Amount,
		Vendor:     req.Vendor,
		Note:       req.Note,
		CategoryID: req.CategoryID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, err
	}

	// Re-read so the response carries the linked category
	return s.transactionRepo.GetByID(transaction.ID)
}

// GetByID returns a single transaction with its category
func (s *transactionService) GetByID(id int64) (*models.Transaction, error) {
	return s.transactionRepo.GetByID(id)
}

// Update applies a partial update. Note and category may be explicitly
// nulled; the date, amount, and vendor may not. UpdatedAt is stamped on
// every successful update, including no-op ones.
func (s *transactionService) Update(id int64, req dto.UpdateTransactionRequest) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.TransDate.Present {
		if req.TransDate.IsNull() {
			return nil, ErrTransDateNull
		}
		transaction.TransDate = req.TransDate.Value.Time
	}

	if req.Amount.Present {
		if req.Amount.IsNull() {
			return nil, ErrAmountNull
		}
		transaction.Amount = *req.Amount.Value
	}

	if req.Vendor.Present {
		if req.Vendor.IsNull() {
			return nil, ErrVendorNull
		}
		transaction.Vendor = *req.Vendor.Value
	}

	if req.Note.Present {
		transaction.Note = req.Note.Value
	}

	if req.CategoryID.Present {
		if req.CategoryID.IsNull() {
			transaction.CategoryID = nil
			transaction.Category = nil
		} else {
			if _, err := s.categoryRepo.GetByID(*req.CategoryID.Value); err != nil {
				return nil, err
			}
			transaction.CategoryID = req.CategoryID.Value
			transaction.Category = nil
		}
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	transaction.UpdatedAt = &now

	if err := s.transactionRepo.Update(transaction); err != nil {
		return nil, err
	}

	return s.transactionRepo.GetByID(id)
}

// Delete removes a transaction
func (s *transactionService) Delete(id int64) error {
	return s.transactionRepo.Delete(id)
}

// Search returns one page of transactions matching the filters. The free
// text term is normalized the same way category names are collapsed, then
// lowercased for the case-insensitive match. Pages past the end are clamped
// to the last page rather than returning nothing.
func (s *transactionService) Search(filters models.TransactionFilters) (*TransactionSearchResult, error) {
	start := time.Now()
	filters.Query = NormalizeSearchTerm(filters.Query)

	totalCount, err := s.transactionRepo.CountFiltered(filters)
	if err != nil {
		s.metrics.IncrementCounter("transaction.search", map[string]string{"status": "error"})
		return nil, err
	}

	pages := totalPages(totalCount, filters.Size)
	page := clampPage(filters.Page, pages)
	offset := (page - 1) * filters.Size

	transactions, err := s.transactionRepo.FindFiltered(filters, offset, filters.Size)
	if err != nil {
		s.metrics.IncrementCounter("transaction.search", map[string]string{"status": "error"})
		return nil, err
	}

	s.metrics.IncrementCounter("transaction.search", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("transaction.search", time.Since(start))

	return &TransactionSearchResult{
		Transactions: transactions,
		TotalCount:   totalCount,
		Page:         page,
		Size:         filters.Size,
		TotalPages:   pages,
	}, nil
}

// NormalizeSearchTerm trims, collapses internal whitespace, and lowercases
// a free-text search term
func NormalizeSearchTerm(term string) string {
	return strings.ToLower(strings.Join(strings.Fields(term), " "))
}
