package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"finance-tracker/internal/dto"
	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransaction records a new transaction
// @Summary Create transaction
// @Description Record a dated expense or refund, optionally tagged with a category.
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction payload"
// @Success 201 {object} dto.TransactionResponse "Created transaction"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Referenced category not found"
// @Failure 422 {object} errors.ErrorResponse "VALIDATION_* - Invalid payload"
// @Router /transactions/ [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails(formatValidationDetails(err)...))
	}

	transaction, err := h.transactionService.Create(req)
	if err != nil {
		return h.sendTransactionError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// ListTransactions searches transactions with filtering and pagination
// @Summary Search transactions
// @Description Free-text search across vendor, note, and category name with an optional date window. Results are paginated; a page past the end clamps to the last page.
// @Tags Transactions
// @Produce json
// @Param q query string false "Case-insensitive search term"
// @Param start_date query string false "Earliest trans_date (YYYY-MM-DD)"
// @Param end_date query string false "Latest trans_date (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size (1-50)" default(25)
// @Success 200 {object} dto.TransactionPage "One page of matches with navigation links"
// @Failure 422 {object} errors.ErrorResponse "VALIDATION_* - Invalid query parameters"
// @Router /transactions/ [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	filters, err := parseTransactionFilters(c)
	if err != nil {
		var paramErr *queryParamError
		if errors.As(err, &paramErr) {
			return SendError(c, paramErr.code, apperrors.WithDetails(paramErr.detail))
		}
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails(err.Error()))
	}

	result, err := h.transactionService.Search(filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionPage{
		Data:       dto.NewTransactionResponseList(result.Transactions),
		TotalCount: result.TotalCount,
		Links:      buildPageLinks(c, filters, result),
	})
}

// GetTransaction returns a single transaction by ID
// @Summary Get transaction
// @Tags Transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse "Transaction"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.transactionService.GetByID(id)
	if err != nil {
		return h.sendTransactionError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// UpdateTransaction partially updates a transaction
// @Summary Update transaction
// @Description Apply a partial update. Note and category may be set to null; date, amount, and vendor may not.
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param request body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse "Updated transaction"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 422 {object} errors.ErrorResponse "VALIDATION_* - Invalid payload"
// @Router /transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid transaction ID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid request body"))
	}

	transaction, err := h.transactionService.Update(id, req)
	if err != nil {
		return h.sendTransactionError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// DeleteTransaction removes a transaction
// @Summary Delete transaction
// @Tags Transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.DeleteResponse "Deletion confirmation"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionService.Delete(id); err != nil {
		return h.sendTransactionError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DeleteResponse{
		Detail: fmt.Sprintf("Transaction with ID %d deleted successfully", id),
	})
}

// sendTransactionError maps transaction service errors to API responses
func (h *TransactionHandler) sendTransactionError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repositories.ErrTransactionNotFound):
		return SendError(c, apperrors.TransactionNotFound, apperrors.WithMessage("Transaction not found"))

	case errors.Is(err, repositories.ErrCategoryNotFound):
		return SendError(c, apperrors.CategoryNotFound, apperrors.WithMessage("Category not found"))
	}

	if handled, resp := sendDomainValidationError(c, err); handled {
		return resp
	}

	return SendSystemError(c, err)
}

// queryParamError reports a bad search query parameter with the error code
// it should surface as
type queryParamError struct {
	code   apperrors.ErrorCode
	detail string
}

func (e *queryParamError) Error() string {
	return e.detail
}

// parseTransactionFilters parses and validates transaction search parameters
func parseTransactionFilters(c echo.Context) (models.TransactionFilters, error) {
	filters := models.NewTransactionFilters()
	filters.Query = c.QueryParam("q")

	if startDateStr := c.QueryParam("start_date"); startDateStr != "" {
		startDate, err := time.ParseInLocation(dto.DateFormat, startDateStr, time.UTC)
		if err != nil {
			return filters, &queryParamError{
				code:   apperrors.ValidationInvalidDate,
				detail: "start_date must be a valid date in YYYY-MM-DD format",
			}
		}
		filters.StartDate = &startDate
	}

	if endDateStr := c.QueryParam("end_date"); endDateStr != "" {
		endDate, err := time.ParseInLocation(dto.DateFormat, endDateStr, time.UTC)
		if err != nil {
			return filters, &queryParamError{
				code:   apperrors.ValidationInvalidDate,
				detail: "end_date must be a valid date in YYYY-MM-DD format",
			}
		}
		filters.EndDate = &endDate
	}

	if pageStr := c.QueryParam("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return filters, &queryParamError{
				code:   apperrors.ValidationOutOfRange,
				detail: "page must be an integer greater than or equal to 1",
			}
		}
		filters.Page = page
	}

	if sizeStr := c.QueryParam("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size < models.MinSize || size > models.MaxSize {
			return filters, &queryParamError{
				code:   apperrors.ValidationOutOfRange,
				detail: fmt.Sprintf("size must be an integer between %d and %d", models.MinSize, models.MaxSize),
			}
		}
		filters.Size = size
	}

	return filters, nil
}

// buildPageLinks rebuilds the search URL for the current, previous, and next
// pages. Only supplied filter parameters are carried over, with the search
// term in the normalized form it was matched on; the page number in the
// links reflects clamping, so a request past the end links back into range.
func buildPageLinks(c echo.Context, filters models.TransactionFilters, result *services.TransactionSearchResult) dto.PageLinks {
	pageURL := func(page int) string {
		params := url.Values{}
		if q := services.NormalizeSearchTerm(filters.Query); q != "" {
			params.Set("q", q)
		}
		if filters.StartDate != nil {
			params.Set("start_date", filters.StartDate.Format(dto.DateFormat))
		}
		if filters.EndDate != nil {
			params.Set("end_date", filters.EndDate.Format(dto.DateFormat))
		}
		params.Set("page", strconv.Itoa(page))
		params.Set("size", strconv.Itoa(result.Size))

		return fmt.Sprintf("%s://%s%s?%s", c.Scheme(), c.Request().Host, c.Path(), params.Encode())
	}

	links := dto.PageLinks{
		Current: pageURL(result.Page),
	}

	if result.Page > 1 {
		prev := pageURL(result.Page - 1)
		links.Prev = &prev
	}
	if result.Page < result.TotalPages {
		next := pageURL(result.Page + 1)
		links.Next = &next
	}

	return links
}
