package service

import (
	"testing"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestGetStats_AggregatesUserNumbers(t *testing.T) {
	expenseRepo := testutil.NewMockExpenseRepository()
	budgetRepo := testutil.NewMockBudgetRepository()
	dashboardService := NewDashboardService(expenseRepo, budgetRepo)

	userID := uuid.New()
	otherUser := uuid.New()
	now := time.Now().UTC().Truncate(24 * time.Hour)

	expenseRepo.AddExpense(&domain.Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      decimal.NewFromInt(120),
		ExpenseDate: now,
	})
	expenseRepo.AddExpense(&domain.Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      decimal.NewFromInt(80),
		ExpenseDate: now.AddDate(0, -2, 0),
	})
	expenseRepo.AddExpense(&domain.Expense{
		ID:          uuid.New(),
		UserID:      otherUser,
		Amount:      decimal.NewFromInt(999),
		ExpenseDate: now,
	})

	budgetRepo.AddBudget(&domain.Budget{
		ID:     uuid.New(),
		UserID: userID,
		Amount: decimal.NewFromInt(500),
		Period: domain.BudgetPeriodMonthly,
	})
	budgetRepo.AddBudget(&domain.Budget{
		ID:     uuid.New(),
		UserID: userID,
		Amount: decimal.NewFromInt(300),
		Period: domain.BudgetPeriodMonthly,
	})

	stats, err := dashboardService.GetStats(userID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !stats.TotalExpenses.Equal(decimal.NewFromInt(200)) {
		t.Errorf("Expected total expenses 200, got %s", stats.TotalExpenses)
	}
	if !stats.MonthlyExpenses.Equal(decimal.NewFromInt(120)) {
		t.Errorf("Expected monthly expenses 120, got %s", stats.MonthlyExpenses)
	}
	if !stats.TotalBudget.Equal(decimal.NewFromInt(800)) {
		t.Errorf("Expected total budget 800, got %s", stats.TotalBudget)
	}
	if stats.ExpenseCount != 2 {
		t.Errorf("Expected expense count 2, got %d", stats.ExpenseCount)
	}
}

func TestGetStats_EmptyUser(t *testing.T) {
	dashboardService := NewDashboardService(testutil.NewMockExpenseRepository(), testutil.NewMockBudgetRepository())

	stats, err := dashboardService.GetStats(uuid.New())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !stats.TotalExpenses.IsZero() || !stats.MonthlyExpenses.IsZero() || !stats.TotalBudget.IsZero() {
		t.Errorf("Expected zero sums, got %+v", stats)
	}
	if stats.ExpenseCount != 0 {
		t.Errorf("Expected zero count, got %d", stats.ExpenseCount)
	}
}
