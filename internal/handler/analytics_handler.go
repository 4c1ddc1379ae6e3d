package handler

import (
	"net/http"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/middleware"
	"github.com/centavo/centavo-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AnalyticsHandler handles analytics HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// CategorySpendResponse represents one slice of the category breakdown
type CategorySpendResponse struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Count  int    `json:"count"`
	Color  string `json:"color"`
}

// MonthlySpendResponse represents one bucket of the monthly trend
type MonthlySpendResponse struct {
	Month  string `json:"month"`
	Amount string `json:"amount"`
	Count  int    `json:"count"`
}

// AnalyticsReportResponse represents the full analytics payload
type AnalyticsReportResponse struct {
	StartDate        string                  `json:"startDate"`
	EndDate          string                  `json:"endDate"`
	TotalSpent       string                  `json:"totalSpent"`
	TransactionCount int                     `json:"transactionCount"`
	AveragePerDay    string                  `json:"averagePerDay"`
	Categories       []CategorySpendResponse `json:"categories"`
	MonthlyTrend     []MonthlySpendResponse  `json:"monthlyTrend"`
	Recent           []ExpenseResponse       `json:"recent"`
}

// GetReport handles GET /api/v1/analytics
// Supports range (week|month|year|custom) plus startDate/endDate for custom.
func (h *AnalyticsHandler) GetReport(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	kind := domain.RangeKind(c.QueryParam("range"))
	if kind == "" {
		kind = domain.RangeMonth
	}

	var customStart, customEnd *time.Time
	if v := c.QueryParam("startDate"); v != "" {
		start, err := time.Parse(expenseDateLayout, v)
		if err != nil {
			return NewValidationError(c, "Invalid startDate", nil)
		}
		customStart = &start
	}
	if v := c.QueryParam("endDate"); v != "" {
		end, err := time.Parse(expenseDateLayout, v)
		if err != nil {
			return NewValidationError(c, "Invalid endDate", nil)
		}
		customEnd = &end
	}

	report, err := h.analyticsService.GetReport(userID, kind, customStart, customEnd)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to build analytics report")
		return NewInternalError(c, "Failed to build analytics report")
	}

	categories := make([]CategorySpendResponse, len(report.Categories))
	for i, group := range report.Categories {
		categories[i] = CategorySpendResponse{
			Name:   group.Name,
			Amount: group.Amount.StringFixed(2),
			Count:  group.Count,
			Color:  group.Color,
		}
	}

	trend := make([]MonthlySpendResponse, len(report.MonthlyTrend))
	for i, bucket := range report.MonthlyTrend {
		trend[i] = MonthlySpendResponse{
			Month:  bucket.Month,
			Amount: bucket.Amount.StringFixed(2),
			Count:  bucket.Count,
		}
	}

	recent := make([]ExpenseResponse, len(report.Recent))
	for i, expense := range report.Recent {
		recent[i] = toExpenseResponse(expense)
	}

	return c.JSON(http.StatusOK, AnalyticsReportResponse{
		StartDate:        report.StartDate.Format(expenseDateLayout),
		EndDate:          report.EndDate.Format(expenseDateLayout),
		TotalSpent:       report.TotalSpent.StringFixed(2),
		TransactionCount: report.TransactionCount,
		AveragePerDay:    report.AveragePerDay.StringFixed(2),
		Categories:       categories,
		MonthlyTrend:     trend,
		Recent:           recent,
	})
}
