package handlers

import (
	"errors"
	"net/http"

	"finance-tracker/internal/dto"
	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler handles reporting HTTP requests
type ReportHandler struct {
	reportService services.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// MonthlyBudget returns the budget-versus-spend report for one month
// @Summary Monthly budget report
// @Description Per-category spending for the given month next to each category's budget. Categories with no spending report 0.00; uncategorized spending appears as a row with null category fields.
// @Tags Reports
// @Produce json
// @Param year_month query string true "Report month (YYYY-MM)"
// @Success 200 {array} dto.MonthlySummaryResponse "Report rows"
// @Failure 422 {object} errors.ErrorResponse "REPORT_001 - Invalid year_month"
// @Router /reports/monthly_budget [get]
func (h *ReportHandler) MonthlyBudget(c echo.Context) error {
	yearMonth := c.QueryParam("year_month")

	summaries, err := h.reportService.MonthlyBudget(yearMonth)
	if err != nil {
		if errors.Is(err, services.ErrInvalidYearMonth) {
			return SendError(c, apperrors.ReportInvalidYearMonth)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewMonthlySummaryResponseList(summaries))
}
