package webui

import (
	"context"
	"errors"
	"html/template"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/dto"
	"finance-tracker/web"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TemplateRenderer implements echo.Renderer over the embedded templates
type TemplateRenderer struct {
	templates *template.Template
}

// Render implements the echo.Renderer interface
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

// Server is the browser front end. It renders server-side HTML and talks to
// the tracker API over HTTP; it holds no database connection of its own.
type Server struct {
	echo   *echo.Echo
	client *APIClient
	cfg    *config.Config
}

// NewServer creates the front end server and registers its routes
func NewServer(cfg *config.Config) (*Server, error) {
	templates, err := template.ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = &TemplateRenderer{templates: templates}

	s := &Server{
		echo:   e,
		client: NewAPIClient(cfg.WebUI.APIBaseURL),
		cfg:    cfg,
	}

	e.GET("/", s.homePage)
	e.GET("/categories", s.categoriesPage)
	e.POST("/categories", s.createCategory)
	e.POST("/categories/:id", s.updateCategory)
	e.POST("/categories/:id/delete", s.deleteCategory)
	e.GET("/transactions", s.transactionsPage)
	e.POST("/transactions", s.createTransaction)
	e.POST("/transactions/:id", s.updateTransaction)
	e.POST("/transactions/:id/delete", s.deleteTransaction)
	e.GET("/report", s.reportPage)

	return s, nil
}

// Start runs the front end until interrupted
func (s *Server) Start() {
	go func() {
		addr := ":" + s.cfg.WebUI.Port
		slog.Info("Starting web UI", "addr", addr, "api", s.cfg.WebUI.APIBaseURL)
		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Web UI error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.echo.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
}

// pageData is the common payload for every rendered page
type pageData struct {
	Title string
	Error string
	Data  interface{}
}

// flashError turns an API failure into a message the page can show inline
func flashError(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return "The tracker API is not reachable right now"
}

func (s *Server) homePage(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", pageData{Title: "Finance Tracker"})
}

// categoriesData feeds the categories page
type categoriesData struct {
	Categories []dto.CategoryResponse
}

func (s *Server) categoriesPage(c echo.Context) error {
	data := pageData{Title: "Categories", Error: c.QueryParam("error")}

	categories, err := s.client.ListCategories(c.Request().Context())
	if err != nil {
		data.Error = flashError(err)
		return c.Render(http.StatusOK, "categories.html", data)
	}

	data.Data = categoriesData{Categories: categories}
	return c.Render(http.StatusOK, "categories.html", data)
}

func (s *Server) createCategory(c echo.Context) error {
	req := dto.CreateCategoryRequest{
		Name: c.FormValue("name"),
	}

	if budgetStr := c.FormValue("budget"); budgetStr != "" {
		budget, err := decimal.NewFromString(budgetStr)
		if err != nil {
			return redirectWithError(c, "/categories", "Budget must be a number")
		}
		req.Budget = &budget
	}

	if _, err := s.client.CreateCategory(c.Request().Context(), req); err != nil {
		return redirectWithError(c, "/categories", flashError(err))
	}

	return c.Redirect(http.StatusSeeOther, "/categories")
}

func (s *Server) updateCategory(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return redirectWithError(c, "/categories", "Invalid category ID")
	}

	// The edit form always submits both fields, so both are marked present;
	// an empty budget clears it
	name := c.FormValue("name")
	req := dto.UpdateCategoryRequest{
		Name: dto.Optional[string]{Present: true, Value: &name},
	}

	req.Budget = dto.Optional[decimal.Decimal]{Present: true}
	if budgetStr := c.FormValue("budget"); budgetStr != "" {
		budget, err := decimal.NewFromString(budgetStr)
		if err != nil {
			return redirectWithError(c, "/categories", "Budget must be a number")
		}
		req.Budget.Value = &budget
	}

	if _, err := s.client.UpdateCategory(c.Request().Context(), id, req); err != nil {
		return redirectWithError(c, "/categories", flashError(err))
	}

	return c.Redirect(http.StatusSeeOther, "/categories")
}

func (s *Server) deleteCategory(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return redirectWithError(c, "/categories", "Invalid category ID")
	}

	if err := s.client.DeleteCategory(c.Request().Context(), id); err != nil {
		return redirectWithError(c, "/categories", flashError(err))
	}

	return c.Redirect(http.StatusSeeOther, "/categories")
}

// transactionsData feeds the transactions page
type transactionsData struct {
	Page       *dto.TransactionPage
	Categories []dto.CategoryResponse
	Params     SearchParams
	PrevPage   int
	NextPage   int
}

func (s *Server) transactionsPage(c echo.Context) error {
	data := pageData{Title: "Transactions", Error: c.QueryParam("error")}

	params := SearchParams{
		Query:     c.QueryParam("q"),
		StartDate: c.QueryParam("start_date"),
		EndDate:   c.QueryParam("end_date"),
	}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		params.Page = page
	}
	if size, err := strconv.Atoi(c.QueryParam("size")); err == nil {
		params.Size = size
	}

	page, err := s.client.SearchTransactions(c.Request().Context(), params)
	if err != nil {
		data.Error = flashError(err)
		return c.Render(http.StatusOK, "transactions.html", data)
	}

	// The category dropdown of the create form
	categories, err := s.client.ListCategories(c.Request().Context())
	if err != nil {
		categories = nil
	}

	td := transactionsData{
		Page:       page,
		Categories: categories,
		Params:     params,
	}
	if page.Links.Prev != nil {
		td.PrevPage = currentPageOf(params) - 1
	}
	if page.Links.Next != nil {
		td.NextPage = currentPageOf(params) + 1
	}

	data.Data = td
	return c.Render(http.StatusOK, "transactions.html", data)
}

func currentPageOf(params SearchParams) int {
	if params.Page < 1 {
		return 1
	}
	return params.Page
}

func (s *Server) createTransaction(c echo.Context) error {
	amount, err := decimal.NewFromString(c.FormValue("amount"))
	if err != nil {
		return redirectWithError(c, "/transactions", "Amount must be a number")
	}

	transDate, err := time.ParseInLocation(dto.DateFormat, c.FormValue("trans_date"), time.UTC)
	if err != nil {
		return redirectWithError(c, "/transactions", "Date must be YYYY-MM-DD")
	}
	date := dto.NewDate(transDate)

	req := dto.CreateTransactionRequest{
		TransDate: &date,
		Amount:    &amount,
		Vendor:    c.FormValue("vendor"),
	}

	if note := c.FormValue("note"); note != "" {
		req.Note = &note
	}

	if categoryStr := c.FormValue("category_id"); categoryStr != "" {
		categoryID, err := strconv.ParseInt(categoryStr, 10, 64)
		if err != nil {
			return redirectWithError(c, "/transactions", "Invalid category")
		}
		req.CategoryID = &categoryID
	}

	if _, err := s.client.CreateTransaction(c.Request().Context(), req); err != nil {
		return redirectWithError(c, "/transactions", flashError(err))
	}

	return c.Redirect(http.StatusSeeOther, "/transactions")
}

func (s *Server) updateTransaction(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return redirectWithError(c, "/transactions", "Invalid transaction ID")
	}

	amount, err := decimal.NewFromString(c.FormValue("amount"))
	if err != nil {
		return redirectWithError(c, "/transactions", "Amount must be a number")
	}

	// The inline form always submits both fields; an empty note clears it
	req := dto.UpdateTransactionRequest{
		Amount: dto.Optional[decimal.Decimal]{Present: true, Value: &amount},
		Note:   dto.Optional[string]{Present: true},
	}
	if note := c.FormValue("note"); note != "" {
		req.Note.Value = &note
	}

	if _, err := s.client.UpdateTransaction(c.Request().Context(), id, req); err != nil {
		return redirectWithError(c, "/transactions", flashError(err))
	}

	return c.Redirect(http.StatusSeeOther, "/transactions")
}

func (s *Server) deleteTransaction(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return redirectWithError(c, "/transactions", "Invalid transaction ID")
	}

	if err := s.client.DeleteTransaction(c.Request().Context(), id); err != nil {
		return redirectWithError(c, "/transactions", flashError(err))
	}

	return c.Redirect(http.StatusSeeOther, "/transactions")
}

// reportData feeds the monthly report page
type reportData struct {
	YearMonth string
	Rows      []dto.MonthlySummaryResponse
}

func (s *Server) reportPage(c echo.Context) error {
	data := pageData{Title: "Monthly Report", Error: c.QueryParam("error")}

	yearMonth := c.QueryParam("year_month")
	if yearMonth == "" {
		yearMonth = time.Now().UTC().Format("2006-01")
	}

	rows, err := s.client.MonthlyReport(c.Request().Context(), yearMonth)
	if err != nil {
		data.Error = flashError(err)
		data.Data = reportData{YearMonth: yearMonth}
		return c.Render(http.StatusOK, "report.html", data)
	}

	data.Data = reportData{YearMonth: yearMonth, Rows: rows}
	return c.Render(http.StatusOK, "report.html", data)
}

func redirectWithError(c echo.Context, path, message string) error {
	return c.Redirect(http.StatusSeeOther, path+"?error="+template.URLQueryEscaper(message))
}
