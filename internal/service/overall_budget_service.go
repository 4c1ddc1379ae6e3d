package service

import (
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OverallBudgetService handles cross-category budget business logic
type OverallBudgetService struct {
	overallRepo    domain.OverallBudgetRepository
	expenseRepo    domain.ExpenseRepository
	eventPublisher websocket.EventPublisher
}

// NewOverallBudgetService creates a new OverallBudgetService
func NewOverallBudgetService(overallRepo domain.OverallBudgetRepository, expenseRepo domain.ExpenseRepository) *OverallBudgetService {
	return &OverallBudgetService{
		overallRepo: overallRepo,
		expenseRepo: expenseRepo,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *OverallBudgetService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *OverallBudgetService) publishEvent(userID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// OverallBudgetStatus is an overall budget enriched with its active
// window and the spending inside it
type OverallBudgetStatus struct {
	Budget      *domain.OverallBudget `json:"budget"`
	WindowStart time.Time             `json:"windowStart"`
	WindowEnd   time.Time             `json:"windowEnd"`
	Spent       decimal.Decimal       `json:"spent"`
	Remaining   decimal.Decimal       `json:"remaining"`
	Percentage  decimal.Decimal       `json:"percentage"`
	OverBudget  bool                  `json:"overBudget"`
}

func validateOverallBudgetInput(amount decimal.Decimal, period domain.BudgetPeriod, currency string) (string, error) {
	if amount.Sign() <= 0 {
		return "", domain.ErrAmountRequired
	}
	if !domain.ValidOverallBudgetPeriod(period) {
		return "", domain.ErrInvalidPeriod
	}
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	if !domain.SupportedCurrencies[currency] {
		return "", domain.ErrInvalidCurrency
	}
	return currency, nil
}

// CreateOverallBudget validates and records a new overall budget.
// A zero anchor date anchors the window at the current time.
func (s *OverallBudgetService) CreateOverallBudget(userID uuid.UUID, amount decimal.Decimal, period domain.BudgetPeriod, currency string, anchorDate time.Time) (*domain.OverallBudget, error) {
	currency, err := validateOverallBudgetInput(amount, period, currency)
	if err != nil {
		return nil, err
	}

	if anchorDate.IsZero() {
		anchorDate = time.Now().UTC()
	}

	budget, err := s.overallRepo.Create(&domain.OverallBudget{
		UserID:     userID,
		Amount:     amount,
		Period:     period,
		Currency:   currency,
		AnchorDate: anchorDate,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.OverallBudgetCreated(budget))
	return budget, nil
}

// GetOverallBudgets retrieves all of the user's overall budgets with
// their computed windows and spending
func (s *OverallBudgetService) GetOverallBudgets(userID uuid.UUID) ([]*OverallBudgetStatus, error) {
	budgets, err := s.overallRepo.GetAllByUser(userID)
	if err != nil {
		return nil, err
	}

	statuses := make([]*OverallBudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		start, end := OverallBudgetWindow(budget.AnchorDate, budget.Period)

		spent, err := s.expenseRepo.SumByDateRange(userID, start, end)
		if err != nil {
			return nil, err
		}

		percentage, over := BudgetUtilization(spent, budget.Amount)
		statuses = append(statuses, &OverallBudgetStatus{
			Budget:      budget,
			WindowStart: start,
			WindowEnd:   end,
			Spent:       spent,
			Remaining:   budget.Amount.Sub(spent),
			Percentage:  percentage,
			OverBudget:  over,
		})
	}

	return statuses, nil
}

// UpdateOverallBudget validates and replaces an overall budget's fields
func (s *OverallBudgetService) UpdateOverallBudget(userID, id uuid.UUID, amount decimal.Decimal, period domain.BudgetPeriod, currency string, anchorDate time.Time) (*domain.OverallBudget, error) {
	currency, err := validateOverallBudgetInput(amount, period, currency)
	if err != nil {
		return nil, err
	}

	if anchorDate.IsZero() {
		existing, err := s.overallRepo.GetByID(userID, id)
		if err != nil {
			return nil, err
		}
		anchorDate = existing.AnchorDate
	}

	budget, err := s.overallRepo.Update(userID, id, amount, period, currency, anchorDate)
	if err != nil {
		return nil, err
	}

	s.publishEvent(userID, websocket.OverallBudgetUpdated(budget))
	return budget, nil
}

// DeleteOverallBudget removes an overall budget
func (s *OverallBudgetService) DeleteOverallBudget(userID, id uuid.UUID) error {
	if err := s.overallRepo.Delete(userID, id); err != nil {
		return err
	}

	s.publishEvent(userID, websocket.OverallBudgetDeleted(map[string]string{"id": id.String()}))
	return nil
}
