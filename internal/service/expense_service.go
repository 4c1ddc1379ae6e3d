package service

import (
	"strings"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseService handles expense business logic
type ExpenseService struct {
	expenseRepo    domain.ExpenseRepository
	categoryRepo   domain.CategoryRepository
	eventPublisher websocket.EventPublisher
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo domain.ExpenseRepository, categoryRepo domain.CategoryRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *ExpenseService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *ExpenseService) publishEvent(userID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// CreateExpenseInput carries the fields for a new expense
type CreateExpenseInput struct {
	Amount      decimal.Decimal
	Description *string
	ExpenseDate time.Time
	CategoryID  *uuid.UUID
	Currency    string
}

// CreateExpense validates and records a new expense. The category
// reference is not checked against existing categories; a stale or
// foreign reference renders as "Uncategorized" downstream.
func (s *ExpenseService) CreateExpense(userID uuid.UUID, input CreateExpenseInput) (*domain.Expense, error) {
	if input.Amount.Sign() <= 0 {
		return nil, domain.ErrAmountRequired
	}

	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		if trimmed == "" {
			input.Description = nil
		} else {
			if len(trimmed) > domain.MaxDescriptionLength {
				return nil, domain.ErrInvalidInput
			}
			input.Description = &trimmed
		}
	}

	currency := input.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	if !domain.SupportedCurrencies[currency] {
		return nil, domain.ErrInvalidCurrency
	}

	expenseDate := input.ExpenseDate
	if expenseDate.IsZero() {
		expenseDate = time.Now().UTC()
	}

	expense, err := s.expenseRepo.Create(&domain.Expense{
		UserID:      userID,
		Amount:      input.Amount,
		Description: input.Description,
		ExpenseDate: expenseDate,
		CategoryID:  input.CategoryID,
		Currency:    currency,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.ExpenseCreated(expense))
	return expense, nil
}

// GetExpenses retrieves the user's expenses, newest first, honoring filters
func (s *ExpenseService) GetExpenses(userID uuid.UUID, filters *domain.ExpenseFilters) ([]*domain.Expense, error) {
	if filters == nil {
		filters = &domain.ExpenseFilters{}
	}
	if filters.Limit <= 0 {
		filters.Limit = domain.DefaultExpenseLimit
	}
	if filters.Limit > domain.MaxExpenseLimit {
		filters.Limit = domain.MaxExpenseLimit
	}
	return s.expenseRepo.GetAllByUser(userID, filters)
}

// GetExpenseByID retrieves a single expense
func (s *ExpenseService) GetExpenseByID(userID, id uuid.UUID) (*domain.Expense, error) {
	return s.expenseRepo.GetByID(userID, id)
}

// DeleteExpense removes an expense
func (s *ExpenseService) DeleteExpense(userID, id uuid.UUID) error {
	if err := s.expenseRepo.Delete(userID, id); err != nil {
		return err
	}

	s.publishEvent(userID, websocket.ExpenseDeleted(map[string]string{"id": id.String()}))
	return nil
}
