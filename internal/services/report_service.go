package services

import (
	"errors"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/validation"
)

var (
	// ErrInvalidYearMonth rejects malformed or future report months
	ErrInvalidYearMonth = errors.New("year_month must be a valid YYYY-MM no later than the current year")
)

// reportService implements ReportServiceInterface
type reportService struct {
	reportRepo repositories.ReportRepositoryInterface
	metrics    MetricsRecorderInterface
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo repositories.ReportRepositoryInterface,
	metrics MetricsRecorderInterface,
) ReportServiceInterface {
	return &reportService{
		reportRepo: reportRepo,
		metrics:    metrics,
	}
}

// MonthlyBudget builds the budget-versus-spend report for one calendar
// month given as YYYY-MM
func (s *reportService) MonthlyBudget(yearMonth string) ([]models.MonthlySummary, error) {
	if !validation.IsValidYearMonth(yearMonth) {
		s.metrics.IncrementCounter("report.monthly", map[string]string{"status": "invalid"})
		return nil, ErrInvalidYearMonth
	}

	start, err := time.ParseInLocation("2006-01", yearMonth, time.UTC)
	if err != nil {
		s.metrics.IncrementCounter("report.monthly", map[string]string{"status": "invalid"})
		return nil, ErrInvalidYearMonth
	}
	end := start.AddDate(0, 1, 0)

	began := time.Now()
	summaries, err := s.reportRepo.MonthlyBudget(start, end)
	if err != nil {
		s.metrics.IncrementCounter("report.monthly", map[string]string{"status": "error"})
		return nil, err
	}

	s.metrics.IncrementCounter("report.monthly", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("report.monthly", time.Since(began))

	return summaries, nil
}
