package service

import (
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/util"
	"github.com/shopspring/decimal"
)

// Pure aggregation functions over in-memory record collections.
// Every function is total: empty input yields zero values, never an error.
// Amounts accumulate as exact decimals; rounding happens only when DTOs
// render 2-decimal strings. Mixed currencies are summed numerically
// without conversion - a documented product limitation.

// weeksPerMonth is the average number of weeks in a month, used to
// normalize weekly income to a monthly equivalent.
var weeksPerMonth = decimal.NewFromFloat(4.33)

var twelve = decimal.NewFromInt(12)

var hundred = decimal.NewFromInt(100)

// fallbackPalette colors analytics groups whose category carries no
// color of its own, indexed by group insertion order.
var fallbackPalette = []string{
	"#8884d8", "#82ca9d", "#ffc658", "#ff7300", "#8dd1e1", "#d084d0", "#ffb347",
}

// MonthlyIncomeTotal sums the monthly-equivalent amounts of the active
// income sources. Weekly amounts scale by 4.33, yearly divide by 12,
// one-time sources contribute nothing.
func MonthlyIncomeTotal(sources []*domain.IncomeSource) decimal.Decimal {
	total := decimal.Zero
	for _, source := range sources {
		if !source.Active {
			continue
		}
		switch source.Frequency {
		case domain.IncomeFrequencyWeekly:
			total = total.Add(source.Amount.Mul(weeksPerMonth))
		case domain.IncomeFrequencyYearly:
			total = total.Add(source.Amount.Div(twelve))
		case domain.IncomeFrequencyOneTime:
			// one-time income never counts toward a monthly figure
		default:
			total = total.Add(source.Amount)
		}
	}
	return total
}

// BudgetUtilization returns the percentage of amount consumed by spent,
// and whether the budget is exceeded. A non-positive amount yields 0.
func BudgetUtilization(spent, amount decimal.Decimal) (percentage decimal.Decimal, overBudget bool) {
	if amount.Sign() <= 0 {
		return decimal.Zero, false
	}
	percentage = spent.Div(amount).Mul(hundred)
	return percentage, percentage.GreaterThan(hundred)
}

// CategoryBudgetSpent sums the expenses of one category that fall inside
// the calendar month containing refMonth. Callers always pass the
// current time: a category budget measures the running month regardless
// of its own period field. Longstanding behavior, kept as-is.
func CategoryBudgetSpent(expenses []*domain.Expense, categoryID string, refMonth time.Time) decimal.Decimal {
	start, end := util.MonthWindow(refMonth)
	total := decimal.Zero
	for _, e := range expenses {
		if e.CategoryID == nil || e.CategoryID.String() != categoryID {
			continue
		}
		if e.ExpenseDate.Before(start) || e.ExpenseDate.After(end) {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total
}

// OverallBudgetWindow derives the inclusive date window an overall
// budget measures: the Sunday-start week containing the anchor for
// weekly budgets, otherwise the anchor's calendar month.
func OverallBudgetWindow(anchorDate time.Time, period domain.BudgetPeriod) (start, end time.Time) {
	if period == domain.BudgetPeriodWeekly {
		return util.WeekWindow(anchorDate)
	}
	return util.MonthWindow(anchorDate)
}

// CategorySpendAggregation groups expenses by resolved category name and
// accumulates totals and counts per group. Expenses whose category
// reference does not resolve fall into the "Uncategorized" group. The
// group color is the category's color when known, else a palette color
// picked by group insertion order. Results are sorted by amount
// descending.
func CategorySpendAggregation(expenses []*domain.Expense, categories map[string]*domain.Category) []domain.CategorySpend {
	groups := make(map[string]*domain.CategorySpend)
	var order []string

	for _, e := range expenses {
		name := domain.UncategorizedLabel
		color := ""
		if e.CategoryID != nil {
			if c, ok := categories[e.CategoryID.String()]; ok {
				name = c.Name
				color = c.Color
			}
		}

		group, ok := groups[name]
		if !ok {
			if color == "" {
				color = fallbackPalette[len(order)%len(fallbackPalette)]
			}
			group = &domain.CategorySpend{Name: name, Amount: decimal.Zero, Color: color}
			groups[name] = group
			order = append(order, name)
		}
		group.Amount = group.Amount.Add(e.Amount)
		group.Count++
	}

	result := make([]domain.CategorySpend, 0, len(order))
	for _, name := range order {
		result = append(result, *groups[name])
	}

	// Insertion sort keeps equal-amount groups in insertion order
	for i := 1; i < len(result); i++ {
		for j := i; j > 0 && result[j].Amount.GreaterThan(result[j-1].Amount); j-- {
			result[j], result[j-1] = result[j-1], result[j]
		}
	}
	return result
}

// MonthlyTrendAggregation buckets expenses by YYYY-MM key, accumulating
// totals and counts, sorted ascending by key (chronological).
func MonthlyTrendAggregation(expenses []*domain.Expense) []domain.MonthlySpend {
	buckets := make(map[string]*domain.MonthlySpend)
	var order []string

	for _, e := range expenses {
		key := util.MonthKey(e.ExpenseDate)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.MonthlySpend{Month: key, Amount: decimal.Zero}
			buckets[key] = bucket
			order = append(order, key)
		}
		bucket.Amount = bucket.Amount.Add(e.Amount)
		bucket.Count++
	}

	result := make([]domain.MonthlySpend, 0, len(order))
	for _, key := range order {
		result = append(result, *buckets[key])
	}

	for i := 1; i < len(result); i++ {
		for j := i; j > 0 && result[j].Month < result[j-1].Month; j-- {
			result[j], result[j-1] = result[j-1], result[j]
		}
	}
	return result
}

// ResolveDateRange turns a range kind into concrete start/end dates
// relative to now. A custom range missing either bound falls back to
// the month behavior.
func ResolveDateRange(kind domain.RangeKind, customStart, customEnd *time.Time, now time.Time) (start, end time.Time) {
	end = now
	switch kind {
	case domain.RangeWeek:
		start = now.AddDate(0, 0, -7)
	case domain.RangeYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	case domain.RangeCustom:
		if customStart != nil && customEnd != nil {
			return *customStart, *customEnd
		}
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	default: // month
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return start, end
}

// AveragePerDay divides total by the day count of [start, end],
// rounded up and never below one day.
func AveragePerDay(total decimal.Decimal, start, end time.Time) decimal.Decimal {
	days := util.DaysBetween(start, end)
	return total.Div(decimal.NewFromInt(int64(days)))
}
