package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"finance-tracker/internal/database"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionHandlerSuite exercises the transaction endpoints end to end
// against an in-memory store
type TransactionHandlerSuite struct {
	suite.Suite
	db      *database.DB
	echo    *echo.Echo
	handler *TransactionHandler
}

func (s *TransactionHandlerSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	categoryRepo := repositories.NewCategoryRepository(s.db.DB)
	transactionRepo := repositories.NewTransactionRepository(s.db.DB)
	s.handler = NewTransactionHandler(services.NewTransactionService(
		transactionRepo, categoryRepo, services.NewPrometheusMetrics()))

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *TransactionHandlerSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerSuite))
}

func (s *TransactionHandlerSuite) postTransaction(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/transactions/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.CreateTransaction(c))
	return rec
}

func (s *TransactionHandlerSuite) search(query string) *httptest.ResponseRecorder {
	target := "/transactions/"
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/transactions/")

	s.NoError(s.handler.ListTransactions(c))
	return rec
}

func (s *TransactionHandlerSuite) TestCreateTransaction() {
	rec := s.postTransaction(`{"trans_date": "2026-08-15", "amount": "42.50", "vendor": "Kroger", "note": "weekly run"}`)
	s.Equal(http.StatusCreated, rec.Code)

	var response dto.TransactionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("42.50", response.Amount)
	s.Equal("Kroger", response.Vendor)
	s.Equal("2026-08-15", response.TransDate.Format("2006-01-02"))
	s.Nil(response.UpdatedAt)
	s.Nil(response.Category)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_MissingFields() {
	rec := s.postTransaction(`{"vendor": "Kroger"}`)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_001", response.Error.Code)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_UnknownCategory() {
	rec := s.postTransaction(`{"trans_date": "2026-08-15", "amount": "10.00", "vendor": "Kroger", "category_id": 9999}`)
	s.Equal(http.StatusNotFound, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("CATEGORY_001", response.Error.Code)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_WithCategory() {
	category := database.CreateTestCategory(s.T(), s.db, "groceries", nil)

	rec := s.postTransaction(fmt.Sprintf(
		`{"trans_date": "2026-08-15", "amount": "10.00", "vendor": "Kroger", "category_id": %d}`, category.ID))
	s.Equal(http.StatusCreated, rec.Code)

	var response dto.TransactionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().NotNil(response.Category)
	s.Equal("Groceries", response.Category.Name)
}

func (s *TransactionHandlerSuite) TestDeleteTransaction() {
	created := s.postTransaction(`{"trans_date": "2026-08-15", "amount": "10.00", "vendor": "Kroger"}`)
	var transaction dto.TransactionResponse
	s.NoError(json.Unmarshal(created.Body.Bytes(), &transaction))

	req := httptest.NewRequest(http.MethodDelete, "/transactions/1", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.FormatInt(transaction.ID, 10))

	s.NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.DeleteResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(fmt.Sprintf("Transaction with ID %d deleted successfully", transaction.ID), response.Detail)
}

// The search term is normalized before matching, so padded mixed-case input
// still finds the vendor
func (s *TransactionHandlerSuite) TestListTransactions_SearchNormalization() {
	s.postTransaction(`{"trans_date": "2026-08-15", "amount": "10.00", "vendor": "Kroger"}`)
	s.postTransaction(`{"trans_date": "2026-08-16", "amount": "20.00", "vendor": "Aldi"}`)

	rec := s.search("q=%20%20KrOgER%20%20")
	s.Equal(http.StatusOK, rec.Code)

	var page dto.TransactionPage
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &page))
	s.Equal(int64(1), page.TotalCount)
	s.Require().Len(page.Data, 1)
	s.Equal("Kroger", page.Data[0].Vendor)

	// Links carry the normalized term, not the raw input
	s.Contains(page.Links.Current, "q=kroger")
}

func (s *TransactionHandlerSuite) TestListTransactions_PageBeyondLastClamps() {
	for day := 1; day <= 3; day++ {
		s.postTransaction(fmt.Sprintf(
			`{"trans_date": "2026-08-%02d", "amount": "10.00", "vendor": "Aldi"}`, day))
	}

	rec := s.search("page=50&size=2")
	s.Equal(http.StatusOK, rec.Code)

	var page dto.TransactionPage
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &page))
	s.Equal(int64(3), page.TotalCount)
	s.Require().Len(page.Data, 1)

	s.Contains(page.Links.Current, "page=2")
	s.Require().NotNil(page.Links.Prev)
	s.Contains(*page.Links.Prev, "page=1")
	s.Nil(page.Links.Next)
}

func (s *TransactionHandlerSuite) TestListTransactions_Links() {
	for day := 1; day <= 5; day++ {
		s.postTransaction(fmt.Sprintf(
			`{"trans_date": "2026-08-%02d", "amount": "10.00", "vendor": "Aldi"}`, day))
	}

	rec := s.search("page=2&size=2")
	var page dto.TransactionPage
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &page))

	s.Contains(page.Links.Current, "/transactions/?")
	s.Contains(page.Links.Current, "page=2")
	s.Contains(page.Links.Current, "size=2")
	s.Require().NotNil(page.Links.Prev)
	s.Contains(*page.Links.Prev, "page=1")
	s.Require().NotNil(page.Links.Next)
	s.Contains(*page.Links.Next, "page=3")
}

func (s *TransactionHandlerSuite) TestListTransactions_InvalidParams() {
	cases := []struct {
		query string
		code  string
	}{
		{"size=0", "VALIDATION_004"},
		{"size=51", "VALIDATION_004"},
		{"page=0", "VALIDATION_004"},
		{"page=abc", "VALIDATION_004"},
		{"start_date=15-08-2026", "VALIDATION_005"},
		{"end_date=2026-08-32", "VALIDATION_005"},
	}

	for _, tc := range cases {
		rec := s.search(tc.query)
		s.Equal(http.StatusUnprocessableEntity, rec.Code, "query %q", tc.query)

		var response ErrorResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal(tc.code, response.Error.Code, "query %q", tc.query)
	}
}

func (s *TransactionHandlerSuite) TestUpdateTransaction_RoundTrip() {
	created := s.postTransaction(`{"trans_date": "2026-08-15", "amount": "10.00", "vendor": "Kroger"}`)
	var transaction dto.TransactionResponse
	s.NoError(json.Unmarshal(created.Body.Bytes(), &transaction))

	req := httptest.NewRequest(http.MethodPatch, "/transactions/1",
		strings.NewReader(`{"amount": "12.75", "note": "adjusted"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.FormatInt(transaction.ID, 10))

	s.NoError(s.handler.UpdateTransaction(c))
	s.Equal(http.StatusOK, rec.Code)

	var updated dto.TransactionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Equal("12.75", updated.Amount)
	s.Require().NotNil(updated.Note)
	s.Equal("adjusted", *updated.Note)
	s.Equal("Kroger", updated.Vendor)
	s.NotNil(updated.UpdatedAt)

	s.True(decimal.RequireFromString(updated.Amount).Equal(decimal.NewFromFloat(12.75)))
	s.WithinDuration(time.Now().UTC(), *updated.UpdatedAt, 5*time.Second)
}
