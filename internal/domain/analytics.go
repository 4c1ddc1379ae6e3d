package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RangeKind string

const (
	RangeWeek   RangeKind = "week"
	RangeMonth  RangeKind = "month"
	RangeYear   RangeKind = "year"
	RangeCustom RangeKind = "custom"
)

// CategorySpend is one group of the per-category spending breakdown
type CategorySpend struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
	Color  string          `json:"color"`
}

// MonthlySpend is one bucket of the month-by-month trend.
// Month is a YYYY-MM key; lexicographic order is chronological order.
type MonthlySpend struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// AnalyticsReport is the full analytics payload for a date range
type AnalyticsReport struct {
	StartDate        time.Time       `json:"startDate"`
	EndDate          time.Time       `json:"endDate"`
	TotalSpent       decimal.Decimal `json:"totalSpent"`
	TransactionCount int             `json:"transactionCount"`
	AveragePerDay    decimal.Decimal `json:"averagePerDay"`
	Categories       []CategorySpend `json:"categories"`
	MonthlyTrend     []MonthlySpend  `json:"monthlyTrend"`
	Recent           []*Expense      `json:"recent"`
}

// DashboardStats is the headline numbers for the dashboard screen.
// Sums are plain decimal addition; mixed currencies are added as-is.
type DashboardStats struct {
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
	TotalBudget     decimal.Decimal `json:"totalBudget"`
	ExpenseCount    int64           `json:"expenseCount"`
}
