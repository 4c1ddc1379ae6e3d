package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// ValidCategoryBudgetPeriod reports whether p is allowed on a category budget
func ValidCategoryBudgetPeriod(p BudgetPeriod) bool {
	return p == BudgetPeriodWeekly || p == BudgetPeriodMonthly || p == BudgetPeriodYearly
}

// ValidOverallBudgetPeriod reports whether p is allowed on an overall budget.
// Overall budgets only support weekly and monthly windows.
func ValidOverallBudgetPeriod(p BudgetPeriod) bool {
	return p == BudgetPeriodWeekly || p == BudgetPeriodMonthly
}

// Budget is a per-category spending target. Spent is never stored; it is
// recomputed on every read from the current calendar month's expenses in
// the category, whatever Period says. That mirrors the long-standing
// behavior of the product and is deliberately left uncorrected.
type Budget struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"-"`
	CategoryID uuid.UUID       `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount"`
	Period     BudgetPeriod    `json:"period"`
	Currency   string          `json:"currency"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// OverallBudget spans all categories combined. Its active window is
// derived from AnchorDate and Period at read time.
type OverallBudget struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"-"`
	Amount     decimal.Decimal `json:"amount"`
	Period     BudgetPeriod    `json:"period"`
	Currency   string          `json:"currency"`
	AnchorDate time.Time       `json:"anchorDate"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type BudgetRepository interface {
	Create(budget *Budget) (*Budget, error)
	GetByID(userID, id uuid.UUID) (*Budget, error)
	GetAllByUser(userID uuid.UUID) ([]*Budget, error)
	Delete(userID, id uuid.UUID) error
	SumAmountsByUser(userID uuid.UUID) (decimal.Decimal, error)
}

type OverallBudgetRepository interface {
	Create(budget *OverallBudget) (*OverallBudget, error)
	GetByID(userID, id uuid.UUID) (*OverallBudget, error)
	GetAllByUser(userID uuid.UUID) ([]*OverallBudget, error)
	Update(userID, id uuid.UUID, amount decimal.Decimal, period BudgetPeriod, currency string, anchorDate time.Time) (*OverallBudget, error)
	Delete(userID, id uuid.UUID) error
}
