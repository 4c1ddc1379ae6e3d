package service

import (
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/util"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DashboardService computes the headline numbers for the dashboard screen
type DashboardService struct {
	expenseRepo domain.ExpenseRepository
	budgetRepo  domain.BudgetRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(expenseRepo domain.ExpenseRepository, budgetRepo domain.BudgetRepository) *DashboardService {
	return &DashboardService{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
	}
}

// GetStats returns the dashboard statistics for the current calendar month.
// The four aggregates are independent, so they are fetched concurrently.
func (s *DashboardService) GetStats(userID uuid.UUID) (*domain.DashboardStats, error) {
	monthStart, monthEnd := util.MonthWindow(time.Now().UTC())

	stats := &domain.DashboardStats{}

	var g errgroup.Group

	g.Go(func() error {
		total, err := s.expenseRepo.SumByUser(userID)
		if err != nil {
			return err
		}
		stats.TotalExpenses = total
		return nil
	})

	g.Go(func() error {
		monthly, err := s.expenseRepo.SumByDateRange(userID, monthStart, monthEnd)
		if err != nil {
			return err
		}
		stats.MonthlyExpenses = monthly
		return nil
	})

	g.Go(func() error {
		budgetTotal, err := s.budgetRepo.SumAmountsByUser(userID)
		if err != nil {
			return err
		}
		stats.TotalBudget = budgetTotal
		return nil
	})

	g.Go(func() error {
		count, err := s.expenseRepo.CountByUser(userID)
		if err != nil {
			return err
		}
		stats.ExpenseCount = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}
