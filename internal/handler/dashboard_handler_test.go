package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/service"
	"github.com/centavo/centavo-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func TestGetStats_Success(t *testing.T) {
	e := echo.New()
	expenseRepo := testutil.NewMockExpenseRepository()
	budgetRepo := testutil.NewMockBudgetRepository()
	dashboardService := service.NewDashboardService(expenseRepo, budgetRepo)
	handler := NewDashboardHandler(dashboardService)

	userID := uuid.New()

	expenseRepo.AddExpense(&domain.Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      decimal.NewFromInt(250),
		ExpenseDate: time.Now().UTC().Truncate(24 * time.Hour),
	})
	budgetRepo.AddBudget(&domain.Budget{
		ID:     uuid.New(),
		UserID: userID,
		Amount: decimal.NewFromInt(1000),
		Period: domain.BudgetPeriodMonthly,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContextWithUser(c, "auth0|test", "test@example.com", "Test User", userID)

	err := handler.GetStats(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response DashboardStatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.TotalExpenses != "250.00" {
		t.Errorf("Expected total expenses '250.00', got %s", response.TotalExpenses)
	}
	if response.MonthlyExpenses != "250.00" {
		t.Errorf("Expected monthly expenses '250.00', got %s", response.MonthlyExpenses)
	}
	if response.TotalBudget != "1000.00" {
		t.Errorf("Expected total budget '1000.00', got %s", response.TotalBudget)
	}
	if response.ExpenseCount != 1 {
		t.Errorf("Expected expense count 1, got %d", response.ExpenseCount)
	}
}

func TestGetStats_MissingUser(t *testing.T) {
	e := echo.New()
	dashboardService := service.NewDashboardService(testutil.NewMockExpenseRepository(), testutil.NewMockBudgetRepository())
	handler := NewDashboardHandler(dashboardService)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// No resolved user in context
	setupAuthContext(c, "auth0|test", "test@example.com", "Test User")

	err := handler.GetStats(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestGetStats_EmptyUserReturnsZeros(t *testing.T) {
	e := echo.New()
	dashboardService := service.NewDashboardService(testutil.NewMockExpenseRepository(), testutil.NewMockBudgetRepository())
	handler := NewDashboardHandler(dashboardService)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContextWithUser(c, "auth0|test", "test@example.com", "Test User", uuid.New())

	err := handler.GetStats(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response DashboardStatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.TotalExpenses != "0.00" {
		t.Errorf("Expected total expenses '0.00', got %s", response.TotalExpenses)
	}
	if response.TotalBudget != "0.00" {
		t.Errorf("Expected total budget '0.00', got %s", response.TotalBudget)
	}
}
