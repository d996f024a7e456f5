package services

import (
	"testing"
	"time"

	"finance-tracker/internal/database"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionServiceSuite defines the test suite for TransactionService
type TransactionServiceSuite struct {
	suite.Suite
	db      *database.DB
	service TransactionServiceInterface
}

func (s *TransactionServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	categoryRepo := repositories.NewCategoryRepository(s.db.DB)
	transactionRepo := repositories.NewTransactionRepository(s.db.DB)
	s.service = NewTransactionService(transactionRepo, categoryRepo, NewPrometheusMetrics())
}

func (s *TransactionServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceSuite))
}

func (s *TransactionServiceSuite) createRequest() dto.CreateTransactionRequest {
	date := dto.NewDate(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC))
	amount := decimal.NewFromFloat(42.50)
	return dto.CreateTransactionRequest{
		TransDate: &date,
		Amount:    &amount,
		Vendor:    "Kroger",
	}
}

func (s *TransactionServiceSuite) TestCreate() {
	transaction, err := s.service.Create(s.createRequest())
	s.NoError(err)
	s.NotZero(transaction.ID)
	s.False(transaction.CreatedAt.IsZero())
	s.Nil(transaction.UpdatedAt)
	s.Nil(transaction.Category)
}

func (s *TransactionServiceSuite) TestCreate_UnknownCategory() {
	req := s.createRequest()
	missing := int64(9999)
	req.CategoryID = &missing

	_, err := s.service.Create(req)
	s.ErrorIs(err, repositories.ErrCategoryNotFound)
}

func (s *TransactionServiceSuite) TestUpdate_StampsUpdatedAt() {
	transaction, err := s.service.Create(s.createRequest())
	s.Require().NoError(err)

	vendor := "Trader Joes"
	updated, err := s.service.Update(transaction.ID, dto.UpdateTransactionRequest{
		Vendor: dto.Optional[string]{Present: true, Value: &vendor},
	})
	s.NoError(err)
	s.Equal("Trader Joes", updated.Vendor)
	s.Require().NotNil(updated.UpdatedAt)
	s.WithinDuration(time.Now().UTC(), *updated.UpdatedAt, 5*time.Second)
}

func (s *TransactionServiceSuite) TestUpdate_NullRequiredFieldsRejected() {
	transaction, err := s.service.Create(s.createRequest())
	s.Require().NoError(err)

	_, err = s.service.Update(transaction.ID, dto.UpdateTransactionRequest{
		TransDate: dto.Optional[dto.Date]{Present: true},
	})
	s.ErrorIs(err, ErrTransDateNull)

	_, err = s.service.Update(transaction.ID, dto.UpdateTransactionRequest{
		Amount: dto.Optional[decimal.Decimal]{Present: true},
	})
	s.ErrorIs(err, ErrAmountNull)

	_, err = s.service.Update(transaction.ID, dto.UpdateTransactionRequest{
		Vendor: dto.Optional[string]{Present: true},
	})
	s.ErrorIs(err, ErrVendorNull)
}

func (s *TransactionServiceSuite) TestUpdate_ClearNoteAndCategory() {
	category := database.CreateTestCategory(s.T(), s.db, "groceries", nil)

	req := s.createRequest()
	note := "weekly run"
	req.Note = &note
	req.CategoryID = &category.ID

	transaction, err := s.service.Create(req)
	s.Require().NoError(err)
	s.Require().NotNil(transaction.Category)

	updated, err := s.service.Update(transaction.ID, dto.UpdateTransactionRequest{
		Note:       dto.Optional[string]{Present: true},
		CategoryID: dto.Optional[int64]{Present: true},
	})
	s.NoError(err)
	s.Nil(updated.Note)
	s.Nil(updated.CategoryID)
	s.Nil(updated.Category)
}

func (s *TransactionServiceSuite) TestNormalizeSearchTerm() {
	s.Equal("kroger", NormalizeSearchTerm("  KrOgER  "))
	s.Equal("city power", NormalizeSearchTerm(" City   POWER "))
	s.Equal("", NormalizeSearchTerm("   "))
}

func (s *TransactionServiceSuite) seedMany(count int) {
	for i := 0; i < count; i++ {
		database.CreateTestTransaction(
			s.T(), s.db,
			time.Date(2026, 8, 1+i%28, 0, 0, 0, 0, time.UTC),
			decimal.NewFromFloat(10),
			"Aldi",
			nil,
		)
	}
}

// A page past the end clamps to the last page instead of coming back empty
func (s *TransactionServiceSuite) TestSearch_ClampsPageBeyondLast() {
	s.seedMany(30)

	filters := models.NewTransactionFilters()
	filters.Page = 99
	filters.Size = 25

	result, err := s.service.Search(filters)
	s.NoError(err)
	s.Equal(int64(30), result.TotalCount)
	s.Equal(2, result.TotalPages)
	s.Equal(2, result.Page)
	s.Len(result.Transactions, 5)
}

func (s *TransactionServiceSuite) TestSearch_EmptyStoreHasOnePage() {
	result, err := s.service.Search(models.NewTransactionFilters())
	s.NoError(err)
	s.Equal(int64(0), result.TotalCount)
	s.Equal(1, result.TotalPages)
	s.Equal(1, result.Page)
	s.Empty(result.Transactions)
}
