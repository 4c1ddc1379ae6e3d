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

func newAnalyticsHandlerFixture() (*AnalyticsHandler, *testutil.MockExpenseRepository, *testutil.MockCategoryRepository) {
	expenseRepo := testutil.NewMockExpenseRepository()
	categoryRepo := testutil.NewMockCategoryRepository()
	analyticsService := service.NewAnalyticsService(expenseRepo, categoryRepo)
	return NewAnalyticsHandler(analyticsService), expenseRepo, categoryRepo
}

func TestGetReport_CustomRangeResponse(t *testing.T) {
	e := echo.New()
	handler, expenseRepo, categoryRepo := newAnalyticsHandlerFixture()

	userID := uuid.New()
	category := &domain.Category{UserID: userID, Name: "Food", Color: "#EF4444", Icon: "utensils"}
	categoryRepo.AddCategory(category)

	expenseRepo.AddExpense(&domain.Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      decimal.NewFromInt(90),
		CategoryID:  &category.ID,
		ExpenseDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Currency:    "USD",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics?range=custom&startDate=2024-06-01&endDate=2024-06-30", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContextWithUser(c, "auth0|test", "test@example.com", "Test User", userID)

	err := handler.GetReport(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response AnalyticsReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.StartDate != "2024-06-01" || response.EndDate != "2024-06-30" {
		t.Errorf("Expected 2024-06-01..2024-06-30, got %s..%s", response.StartDate, response.EndDate)
	}
	if response.TotalSpent != "90.00" {
		t.Errorf("Expected total '90.00', got %s", response.TotalSpent)
	}
	if response.TransactionCount != 1 {
		t.Errorf("Expected 1 transaction, got %d", response.TransactionCount)
	}
	if len(response.Categories) != 1 || response.Categories[0].Name != "Food" {
		t.Errorf("Expected single Food breakdown, got %+v", response.Categories)
	}
	// 29 whole days across the range, 90 total
	if response.AveragePerDay != "3.10" {
		t.Errorf("Expected average '3.10', got %s", response.AveragePerDay)
	}
	if len(response.Recent) != 1 {
		t.Errorf("Expected 1 recent expense, got %d", len(response.Recent))
	}
}

func TestGetReport_BadDate(t *testing.T) {
	e := echo.New()
	handler, _, _ := newAnalyticsHandlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics?range=custom&startDate=junk", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContextWithUser(c, "auth0|test", "test@example.com", "Test User", uuid.New())

	err := handler.GetReport(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetReport_EmptyRangeDefaultsToMonth(t *testing.T) {
	e := echo.New()
	handler, _, _ := newAnalyticsHandlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContextWithUser(c, "auth0|test", "test@example.com", "Test User", uuid.New())

	err := handler.GetReport(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response AnalyticsReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	monthStart := time.Now().UTC().Format("2006-01") + "-01"
	if response.StartDate != monthStart {
		t.Errorf("Expected month start %s, got %s", monthStart, response.StartDate)
	}
	if response.TotalSpent != "0.00" {
		t.Errorf("Expected zero total, got %s", response.TotalSpent)
	}
}
