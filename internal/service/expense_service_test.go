package service

import (
	"strings"
	"testing"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newExpenseServiceFixture() (*ExpenseService, *testutil.MockExpenseRepository) {
	expenseRepo := testutil.NewMockExpenseRepository()
	return NewExpenseService(expenseRepo, testutil.NewMockCategoryRepository()), expenseRepo
}

func TestCreateExpense_Success(t *testing.T) {
	expenseService, _ := newExpenseServiceFixture()

	description := "Groceries"
	expense, err := expenseService.CreateExpense(uuid.New(), CreateExpenseInput{
		Amount:      decimal.NewFromFloat(42.50),
		Description: &description,
		ExpenseDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if expense.ID == uuid.Nil {
		t.Error("Expected expense to be assigned an ID")
	}
	if expense.Currency != domain.DefaultCurrency {
		t.Errorf("Expected default currency, got %s", expense.Currency)
	}
	if expense.Description == nil || *expense.Description != "Groceries" {
		t.Errorf("Expected description Groceries, got %v", expense.Description)
	}
}

func TestCreateExpense_NonPositiveAmount(t *testing.T) {
	expenseService, _ := newExpenseServiceFixture()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := expenseService.CreateExpense(uuid.New(), CreateExpenseInput{Amount: amount})
		if err != domain.ErrAmountRequired {
			t.Errorf("Amount %s: expected ErrAmountRequired, got %v", amount, err)
		}
	}
}

func TestCreateExpense_BlankDescriptionDropped(t *testing.T) {
	expenseService, _ := newExpenseServiceFixture()

	description := "   "
	expense, err := expenseService.CreateExpense(uuid.New(), CreateExpenseInput{
		Amount:      decimal.NewFromInt(10),
		Description: &description,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if expense.Description != nil {
		t.Errorf("Expected blank description dropped, got %q", *expense.Description)
	}
}

func TestCreateExpense_DescriptionTooLong(t *testing.T) {
	expenseService, _ := newExpenseServiceFixture()

	description := strings.Repeat("x", domain.MaxDescriptionLength+1)
	_, err := expenseService.CreateExpense(uuid.New(), CreateExpenseInput{
		Amount:      decimal.NewFromInt(10),
		Description: &description,
	})
	if err != domain.ErrInvalidInput {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateExpense_InvalidCurrency(t *testing.T) {
	expenseService, _ := newExpenseServiceFixture()

	_, err := expenseService.CreateExpense(uuid.New(), CreateExpenseInput{
		Amount:   decimal.NewFromInt(10),
		Currency: "GBP",
	})
	if err != domain.ErrInvalidCurrency {
		t.Errorf("Expected ErrInvalidCurrency, got %v", err)
	}
}

func TestCreateExpense_ZeroDateDefaultsToNow(t *testing.T) {
	expenseService, _ := newExpenseServiceFixture()

	before := time.Now().UTC()
	expense, err := expenseService.CreateExpense(uuid.New(), CreateExpenseInput{
		Amount: decimal.NewFromInt(10),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if expense.ExpenseDate.Before(before) || expense.ExpenseDate.After(time.Now().UTC()) {
		t.Errorf("Expected expense date near now, got %s", expense.ExpenseDate)
	}
}

func TestGetExpenses_ClampsLimit(t *testing.T) {
	expenseService, expenseRepo := newExpenseServiceFixture()

	userID := uuid.New()
	for i := 0; i < 5; i++ {
		expenseRepo.AddExpense(&domain.Expense{
			ID:          uuid.New(),
			UserID:      userID,
			Amount:      decimal.NewFromInt(1),
			ExpenseDate: time.Now().UTC().Add(-time.Duration(i) * time.Hour),
		})
	}

	expenses, err := expenseService.GetExpenses(userID, &domain.ExpenseFilters{Limit: 3})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(expenses) != 3 {
		t.Errorf("Expected 3 expenses, got %d", len(expenses))
	}

	expenses, err = expenseService.GetExpenses(userID, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(expenses) != 5 {
		t.Errorf("Expected all 5 expenses under default limit, got %d", len(expenses))
	}
}

func TestGetExpenses_FiltersByCategory(t *testing.T) {
	expenseService, expenseRepo := newExpenseServiceFixture()

	userID := uuid.New()
	categoryID := uuid.New()
	expenseRepo.AddExpense(&domain.Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      decimal.NewFromInt(10),
		CategoryID:  &categoryID,
		ExpenseDate: time.Now().UTC(),
	})
	expenseRepo.AddExpense(&domain.Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      decimal.NewFromInt(20),
		ExpenseDate: time.Now().UTC(),
	})

	expenses, err := expenseService.GetExpenses(userID, &domain.ExpenseFilters{CategoryID: &categoryID})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(expenses) != 1 {
		t.Fatalf("Expected 1 expense, got %d", len(expenses))
	}
	if !expenses[0].Amount.Equal(decimal.NewFromInt(10)) {
		t.Errorf("Expected the categorized expense, got amount %s", expenses[0].Amount)
	}
}

func TestDeleteExpense_NotFound(t *testing.T) {
	expenseService, _ := newExpenseServiceFixture()

	if err := expenseService.DeleteExpense(uuid.New(), uuid.New()); err != domain.ErrExpenseNotFound {
		t.Errorf("Expected ErrExpenseNotFound, got %v", err)
	}
}
