package service

import (
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// recentExpenseCount is how many latest expenses ride along with a report
const recentExpenseCount = 10

// AnalyticsService assembles spending reports over a date range
type AnalyticsService struct {
	expenseRepo  domain.ExpenseRepository
	categoryRepo domain.CategoryRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(expenseRepo domain.ExpenseRepository, categoryRepo domain.CategoryRepository) *AnalyticsService {
	return &AnalyticsService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// GetReport builds the full analytics payload for the resolved range.
// Custom ranges missing either bound silently degrade to the month range.
func (s *AnalyticsService) GetReport(userID uuid.UUID, kind domain.RangeKind, customStart, customEnd *time.Time) (*domain.AnalyticsReport, error) {
	start, end := ResolveDateRange(kind, customStart, customEnd, time.Now().UTC())

	expenses, err := s.expenseRepo.GetAllByUser(userID, &domain.ExpenseFilters{
		StartDate: &start,
		EndDate:   &end,
		Limit:     domain.MaxExpenseLimit,
	})
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetAllByUser(userID)
	if err != nil {
		return nil, err
	}

	categoriesByID := make(map[string]*domain.Category, len(categories))
	for _, c := range categories {
		categoriesByID[c.ID.String()] = c
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	recent := expenses
	if len(recent) > recentExpenseCount {
		recent = recent[:recentExpenseCount]
	}

	return &domain.AnalyticsReport{
		StartDate:        start,
		EndDate:          end,
		TotalSpent:       total,
		TransactionCount: len(expenses),
		AveragePerDay:    AveragePerDay(total, start, end),
		Categories:       CategorySpendAggregation(expenses, categoriesByID),
		MonthlyTrend:     MonthlyTrendAggregation(expenses),
		Recent:           recent,
	}, nil
}
