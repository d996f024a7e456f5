package webui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"finance-tracker/internal/dto"
	apperrors "finance-tracker/internal/errors"
)

// APIError is a non-2xx response from the tracker API, unpacked from the
// standardized error envelope
type APIError struct {
	Status  int
	Code    string
	Message string
	Details []string
}

func (e *APIError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, e.Details[0])
	}
	return e.Message
}

// APIClient is a typed HTTP client for the tracker API
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SearchParams are the transaction search filters as the user typed them
type SearchParams struct {
	Query     string
	StartDate string
	EndDate   string
	Page      int
	Size      int
}

func (c *APIClient) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeAPIError unpacks the error envelope; an unparseable body still
// yields a usable APIError
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{
		Status:  resp.StatusCode,
		Message: http.StatusText(resp.StatusCode),
	}

	var envelope apperrors.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		apiErr.Details = envelope.Error.Details
	}

	return apiErr
}

// ListCategories fetches all categories
func (c *APIClient) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	var categories []dto.CategoryResponse
	if err := c.do(ctx, http.MethodGet, "/categories/", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category
func (c *APIClient) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	var category dto.CategoryResponse
	if err := c.do(ctx, http.MethodPost, "/categories/", req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory partially updates a category
func (c *APIClient) UpdateCategory(ctx context.Context, id int64, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	var category dto.CategoryResponse
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/categories/%d", id), req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category
func (c *APIClient) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil)
}

// SearchTransactions fetches one page of transactions
func (c *APIClient) SearchTransactions(ctx context.Context, params SearchParams) (*dto.TransactionPage, error) {
	values := url.Values{}
	if params.Query != "" {
		values.Set("q", params.Query)
	}
	if params.StartDate != "" {
		values.Set("start_date", params.StartDate)
	}
	if params.EndDate != "" {
		values.Set("end_date", params.EndDate)
	}
	if params.Page > 0 {
		values.Set("page", strconv.Itoa(params.Page))
	}
	if params.Size > 0 {
		values.Set("size", strconv.Itoa(params.Size))
	}

	path := "/transactions/"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page dto.TransactionPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateTransaction records a transaction
func (c *APIClient) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	var transaction dto.TransactionResponse
	if err := c.do(ctx, http.MethodPost, "/transactions/", req, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// UpdateTransaction partially updates a transaction
func (c *APIClient) UpdateTransaction(ctx context.Context, id int64, req dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	var transaction dto.TransactionResponse
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/transactions/%d", id), req, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// DeleteTransaction removes a transaction
func (c *APIClient) DeleteTransaction(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/transactions/%d", id), nil, nil)
}

// MonthlyReport fetches the budget report for a YYYY-MM month
func (c *APIClient) MonthlyReport(ctx context.Context, yearMonth string) ([]dto.MonthlySummaryResponse, error) {
	var rows []dto.MonthlySummaryResponse
	path := "/reports/monthly_budget?year_month=" + url.QueryEscape(yearMonth)
	if err := c.do(ctx, http.MethodGet, path, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
