package handler

import (
	"net/http"

	"github.com/centavo/centavo-backend/internal/middleware"
	"github.com/centavo/centavo-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// DashboardStatsResponse represents the dashboard headline numbers
type DashboardStatsResponse struct {
	TotalExpenses   string `json:"totalExpenses"`
	MonthlyExpenses string `json:"monthlyExpenses"`
	TotalBudget     string `json:"totalBudget"`
	ExpenseCount    int64  `json:"expenseCount"`
}

// GetStats handles GET /api/v1/dashboard/stats
func (h *DashboardHandler) GetStats(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	stats, err := h.dashboardService.GetStats(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get dashboard stats")
		return NewInternalError(c, "Failed to get dashboard stats")
	}

	return c.JSON(http.StatusOK, DashboardStatsResponse{
		TotalExpenses:   stats.TotalExpenses.StringFixed(2),
		MonthlyExpenses: stats.MonthlyExpenses.StringFixed(2),
		TotalBudget:     stats.TotalBudget.StringFixed(2),
		ExpenseCount:    stats.ExpenseCount,
	})
}
