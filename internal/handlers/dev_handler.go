package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	categoryRepo    repositories.CategoryRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	generator       services.TestDataGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
) *DevHandler {
	return &DevHandler{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		generator:       services.NewTestDataGenerator(),
	}
}

// GenerateTestData seeds the store with sample categories and transactions
//
// Method: POST /dev/seed
// Environment: Development only
//
// Query parameters:
//   - count: Number of transactions to generate (default: 100, max: 1000)
//   - days: Number of days of history to generate (default: 90, max: 365)
//
// Success Response: 200 OK
//   - message: Success message
//   - categories_created: Number of new categories created
//   - transactions_created: Number of transactions created
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	count := getIntQueryParam(c, "count", 100)
	if count < 1 {
		count = 1
	}
	if count > 1000 {
		count = 1000
	}

	days := getIntQueryParam(c, "days", 90)
	if days < 1 {
		days = 1
	}
	if days > 365 {
		days = 365
	}

	categoriesCreated := 0
	categoryIDs := make([]int64, 0)
	for _, category := range h.generator.GenerateCategories() {
		if err := h.categoryRepo.Create(category); err != nil {
			// Categories already seeded on a previous run still get used
			if errors.Is(err, repositories.ErrDuplicateCategoryName) {
				if existing, lookupErr := h.categoryRepo.GetByName(category.Name); lookupErr == nil {
					categoryIDs = append(categoryIDs, existing.ID)
				}
				continue
			}
			return SendSystemError(c, err)
		}
		categoryIDs = append(categoryIDs, category.ID)
		categoriesCreated++
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	transactionsCreated := 0
	for _, transaction := range h.generator.GenerateTransactions(start, end, categoryIDs, count) {
		if err := h.transactionRepo.Create(transaction); err != nil {
			continue
		}
		transactionsCreated++
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "test data generated successfully",
		"categories_created":   categoriesCreated,
		"transactions_created": transactionsCreated,
		"date_range": map[string]string{
			"start": start.Format("2006-01-02"),
			"end":   end.Format("2006-01-02"),
		},
	})
}

// getIntQueryParam parses an integer query parameter with a fallback
func getIntQueryParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
