package service

import (
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/util"
	"github.com/centavo/centavo-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetService handles per-category budget business logic
type BudgetService struct {
	budgetRepo     domain.BudgetRepository
	categoryRepo   domain.CategoryRepository
	expenseRepo    domain.ExpenseRepository
	eventPublisher websocket.EventPublisher
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(
	budgetRepo domain.BudgetRepository,
	categoryRepo domain.CategoryRepository,
	expenseRepo domain.ExpenseRepository,
) *BudgetService {
	return &BudgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		expenseRepo:  expenseRepo,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *BudgetService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *BudgetService) publishEvent(userID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// BudgetStatus is a budget enriched with its computed spending state.
// Spent always covers the current calendar month regardless of the
// budget's period; the window label only changes the target amount's
// meaning to the user.
type BudgetStatus struct {
	Budget     *domain.Budget  `json:"budget"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"`
	OverBudget bool            `json:"overBudget"`
}

// CreateBudget validates and records a new per-category budget
func (s *BudgetService) CreateBudget(userID, categoryID uuid.UUID, amount decimal.Decimal, period domain.BudgetPeriod, currency string) (*domain.Budget, error) {
	if amount.Sign() <= 0 {
		return nil, domain.ErrAmountRequired
	}
	if !domain.ValidCategoryBudgetPeriod(period) {
		return nil, domain.ErrInvalidPeriod
	}
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	if !domain.SupportedCurrencies[currency] {
		return nil, domain.ErrInvalidCurrency
	}

	// The category must exist at creation time even though the
	// reference is weak afterwards
	if _, err := s.categoryRepo.GetByID(userID, categoryID); err != nil {
		return nil, err
	}

	budget, err := s.budgetRepo.Create(&domain.Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Period:     period,
		Currency:   currency,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.BudgetCreated(budget))
	return budget, nil
}

// GetBudgets retrieves all of the user's budgets with computed status
func (s *BudgetService) GetBudgets(userID uuid.UUID) ([]*BudgetStatus, error) {
	budgets, err := s.budgetRepo.GetAllByUser(userID)
	if err != nil {
		return nil, err
	}

	monthStart, monthEnd := util.MonthWindow(time.Now().UTC())

	statuses := make([]*BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		spent, err := s.expenseRepo.SumByCategoryAndDateRange(userID, budget.CategoryID, monthStart, monthEnd)
		if err != nil {
			return nil, err
		}

		percentage, over := BudgetUtilization(spent, budget.Amount)
		statuses = append(statuses, &BudgetStatus{
			Budget:     budget,
			Spent:      spent,
			Remaining:  budget.Amount.Sub(spent),
			Percentage: percentage,
			OverBudget: over,
		})
	}

	return statuses, nil
}

// GetBudgetByID retrieves a single budget
func (s *BudgetService) GetBudgetByID(userID, id uuid.UUID) (*domain.Budget, error) {
	return s.budgetRepo.GetByID(userID, id)
}

// DeleteBudget removes a budget
func (s *BudgetService) DeleteBudget(userID, id uuid.UUID) error {
	if err := s.budgetRepo.Delete(userID, id); err != nil {
		return err
	}

	s.publishEvent(userID, websocket.BudgetDeleted(map[string]string{"id": id.String()}))
	return nil
}
