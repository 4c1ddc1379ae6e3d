package service

import (
	"testing"
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func incomeSource(amount int64, frequency domain.IncomeFrequency, active bool) *domain.IncomeSource {
	return &domain.IncomeSource{
		ID:        uuid.New(),
		Amount:    decimal.NewFromInt(amount),
		Frequency: frequency,
		Active:    active,
	}
}

func TestMonthlyIncomeTotal_Empty(t *testing.T) {
	total := MonthlyIncomeTotal(nil)
	if !total.IsZero() {
		t.Errorf("Expected 0, got %s", total)
	}
}

func TestMonthlyIncomeTotal_Weekly(t *testing.T) {
	total := MonthlyIncomeTotal([]*domain.IncomeSource{
		incomeSource(100, domain.IncomeFrequencyWeekly, true),
	})
	if !total.Equal(decimal.NewFromFloat(433.0)) {
		t.Errorf("Expected 433, got %s", total)
	}
}

func TestMonthlyIncomeTotal_Yearly(t *testing.T) {
	total := MonthlyIncomeTotal([]*domain.IncomeSource{
		incomeSource(1200, domain.IncomeFrequencyYearly, true),
	})
	if !total.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected 100, got %s", total)
	}
}

func TestMonthlyIncomeTotal_OneTime(t *testing.T) {
	total := MonthlyIncomeTotal([]*domain.IncomeSource{
		incomeSource(500, domain.IncomeFrequencyOneTime, true),
	})
	if !total.IsZero() {
		t.Errorf("Expected one-time income to contribute 0, got %s", total)
	}
}

func TestMonthlyIncomeTotal_InactiveExcluded(t *testing.T) {
	total := MonthlyIncomeTotal([]*domain.IncomeSource{
		incomeSource(1000, domain.IncomeFrequencyMonthly, false),
	})
	if !total.IsZero() {
		t.Errorf("Expected inactive source to contribute 0, got %s", total)
	}
}

func TestMonthlyIncomeTotal_Mixed(t *testing.T) {
	total := MonthlyIncomeTotal([]*domain.IncomeSource{
		incomeSource(2000, domain.IncomeFrequencyMonthly, true),
		incomeSource(1200, domain.IncomeFrequencyYearly, true),
		incomeSource(500, domain.IncomeFrequencyOneTime, true),
		incomeSource(9999, domain.IncomeFrequencyMonthly, false),
	})
	if !total.Equal(decimal.NewFromInt(2100)) {
		t.Errorf("Expected 2100, got %s", total)
	}
}

func TestMonthlyIncomeTotal_OrderIndependent(t *testing.T) {
	a := incomeSource(100, domain.IncomeFrequencyWeekly, true)
	b := incomeSource(1200, domain.IncomeFrequencyYearly, true)
	c := incomeSource(50, domain.IncomeFrequencyMonthly, true)

	first := MonthlyIncomeTotal([]*domain.IncomeSource{a, b, c})
	second := MonthlyIncomeTotal([]*domain.IncomeSource{c, a, b})
	if !first.Equal(second) {
		t.Errorf("Expected order-independent total, got %s vs %s", first, second)
	}
}

func TestBudgetUtilization_OverBudget(t *testing.T) {
	pct, over := BudgetUtilization(decimal.NewFromInt(150), decimal.NewFromInt(100))
	if !pct.Equal(decimal.NewFromInt(150)) {
		t.Errorf("Expected 150, got %s", pct)
	}
	if !over {
		t.Error("Expected over-budget flag")
	}
}

func TestBudgetUtilization_ZeroAmount(t *testing.T) {
	pct, over := BudgetUtilization(decimal.NewFromInt(50), decimal.Zero)
	if !pct.IsZero() {
		t.Errorf("Expected 0 for zero amount, got %s", pct)
	}
	if over {
		t.Error("Expected over-budget flag false for zero amount")
	}
}

func TestBudgetUtilization_ExactlyFull(t *testing.T) {
	pct, over := BudgetUtilization(decimal.NewFromInt(100), decimal.NewFromInt(100))
	if !pct.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected 100, got %s", pct)
	}
	if over {
		t.Error("100%% used is not over budget")
	}
}

func expenseOn(y int, m time.Month, d int, amount float64, categoryID *uuid.UUID) *domain.Expense {
	return &domain.Expense{
		ID:          uuid.New(),
		Amount:      decimal.NewFromFloat(amount),
		ExpenseDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		CategoryID:  categoryID,
	}
}

func TestCategoryBudgetSpent(t *testing.T) {
	catID := uuid.New()
	otherID := uuid.New()
	refMonth := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	expenses := []*domain.Expense{
		expenseOn(2024, time.June, 1, 10, &catID),
		expenseOn(2024, time.June, 30, 20, &catID),
		expenseOn(2024, time.May, 31, 99, &catID),  // previous month
		expenseOn(2024, time.July, 1, 99, &catID),  // next month
		expenseOn(2024, time.June, 10, 99, &otherID),
		expenseOn(2024, time.June, 10, 99, nil),
	}

	spent := CategoryBudgetSpent(expenses, catID.String(), refMonth)
	if !spent.Equal(decimal.NewFromInt(30)) {
		t.Errorf("Expected 30, got %s", spent)
	}
}

func TestCategoryBudgetSpent_Empty(t *testing.T) {
	spent := CategoryBudgetSpent(nil, uuid.New().String(), time.Now())
	if !spent.IsZero() {
		t.Errorf("Expected 0, got %s", spent)
	}
}

func TestOverallBudgetWindow_Monthly(t *testing.T) {
	anchor := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	start, end := OverallBudgetWindow(anchor, domain.BudgetPeriodMonthly)

	if start.Format("2006-01-02") != "2024-06-01" {
		t.Errorf("Expected start 2024-06-01, got %s", start.Format("2006-01-02"))
	}
	if end.Format("2006-01-02") != "2024-06-30" {
		t.Errorf("Expected end 2024-06-30, got %s", end.Format("2006-01-02"))
	}
}

func TestOverallBudgetWindow_Weekly(t *testing.T) {
	// June 12, 2024 is a Wednesday
	anchor := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)
	start, end := OverallBudgetWindow(anchor, domain.BudgetPeriodWeekly)

	if start.Format("2006-01-02") != "2024-06-09" {
		t.Errorf("Expected start 2024-06-09, got %s", start.Format("2006-01-02"))
	}
	if end.Format("2006-01-02") != "2024-06-15" {
		t.Errorf("Expected end 2024-06-15, got %s", end.Format("2006-01-02"))
	}
}

func TestCategorySpendAggregation(t *testing.T) {
	foodID := uuid.New()
	travelID := uuid.New()
	categories := map[string]*domain.Category{
		foodID.String():   {ID: foodID, Name: "Food", Color: "#EF4444"},
		travelID.String(): {ID: travelID, Name: "Travel", Color: "#3B82F6"},
	}

	expenses := []*domain.Expense{
		expenseOn(2024, time.June, 1, 10, &foodID),
		expenseOn(2024, time.June, 2, 20, &foodID),
		expenseOn(2024, time.June, 3, 5, &travelID),
	}

	groups := CategorySpendAggregation(expenses, categories)
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}

	if groups[0].Name != "Food" {
		t.Errorf("Expected Food first (descending by amount), got %s", groups[0].Name)
	}
	if !groups[0].Amount.Equal(decimal.NewFromInt(30)) {
		t.Errorf("Expected Food total 30, got %s", groups[0].Amount)
	}
	if groups[0].Count != 2 {
		t.Errorf("Expected Food count 2, got %d", groups[0].Count)
	}
	if groups[0].Color != "#EF4444" {
		t.Errorf("Expected Food color #EF4444, got %s", groups[0].Color)
	}

	if groups[1].Name != "Travel" {
		t.Errorf("Expected Travel second, got %s", groups[1].Name)
	}
	if !groups[1].Amount.Equal(decimal.NewFromInt(5)) {
		t.Errorf("Expected Travel total 5, got %s", groups[1].Amount)
	}
	if groups[1].Count != 1 {
		t.Errorf("Expected Travel count 1, got %d", groups[1].Count)
	}
}

func TestCategorySpendAggregation_UncategorizedFallback(t *testing.T) {
	deletedID := uuid.New() // references a category that no longer exists

	expenses := []*domain.Expense{
		expenseOn(2024, time.June, 1, 10, nil),
		expenseOn(2024, time.June, 2, 15, &deletedID),
	}

	groups := CategorySpendAggregation(expenses, map[string]*domain.Category{})
	if len(groups) != 1 {
		t.Fatalf("Expected dangling reference and nil to share one group, got %d", len(groups))
	}
	if groups[0].Name != domain.UncategorizedLabel {
		t.Errorf("Expected %q, got %s", domain.UncategorizedLabel, groups[0].Name)
	}
	if !groups[0].Amount.Equal(decimal.NewFromInt(25)) {
		t.Errorf("Expected 25, got %s", groups[0].Amount)
	}
	if groups[0].Color != "#8884d8" {
		t.Errorf("Expected first palette color, got %s", groups[0].Color)
	}
}

func TestCategorySpendAggregation_Empty(t *testing.T) {
	groups := CategorySpendAggregation(nil, nil)
	if len(groups) != 0 {
		t.Errorf("Expected no groups, got %d", len(groups))
	}
}

func TestMonthlyTrendAggregation(t *testing.T) {
	expenses := []*domain.Expense{
		expenseOn(2024, time.June, 5, 10, nil),
		expenseOn(2024, time.April, 3, 7, nil),
		expenseOn(2024, time.June, 20, 15, nil),
		expenseOn(2024, time.May, 1, 4, nil),
	}

	trend := MonthlyTrendAggregation(expenses)
	if len(trend) != 3 {
		t.Fatalf("Expected 3 buckets, got %d", len(trend))
	}

	wantMonths := []string{"2024-04", "2024-05", "2024-06"}
	for i, want := range wantMonths {
		if trend[i].Month != want {
			t.Errorf("Expected bucket %d month %s, got %s", i, want, trend[i].Month)
		}
	}
	if !trend[2].Amount.Equal(decimal.NewFromInt(25)) {
		t.Errorf("Expected June total 25, got %s", trend[2].Amount)
	}
	if trend[2].Count != 2 {
		t.Errorf("Expected June count 2, got %d", trend[2].Count)
	}
}

func TestResolveDateRange_Week(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	start, end := ResolveDateRange(domain.RangeWeek, nil, nil, now)

	if !start.Equal(now.AddDate(0, 0, -7)) {
		t.Errorf("Expected start 7 days back, got %s", start)
	}
	if !end.Equal(now) {
		t.Errorf("Expected end now, got %s", end)
	}
}

func TestResolveDateRange_Month(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	start, _ := ResolveDateRange(domain.RangeMonth, nil, nil, now)

	if start.Format("2006-01-02") != "2024-06-01" {
		t.Errorf("Expected start 2024-06-01, got %s", start.Format("2006-01-02"))
	}
}

func TestResolveDateRange_Year(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	start, _ := ResolveDateRange(domain.RangeYear, nil, nil, now)

	if start.Format("2006-01-02") != "2024-01-01" {
		t.Errorf("Expected start 2024-01-01, got %s", start.Format("2006-01-02"))
	}
}

func TestResolveDateRange_Custom(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	customStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	customEnd := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

	start, end := ResolveDateRange(domain.RangeCustom, &customStart, &customEnd, now)
	if !start.Equal(customStart) || !end.Equal(customEnd) {
		t.Errorf("Expected custom bounds, got %s / %s", start, end)
	}
}

func TestResolveDateRange_CustomMissingBoundsFallsBackToMonth(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	customStart, customEnd := ResolveDateRange(domain.RangeCustom, nil, nil, now)
	monthStart, monthEnd := ResolveDateRange(domain.RangeMonth, nil, nil, now)

	if !customStart.Equal(monthStart) || !customEnd.Equal(monthEnd) {
		t.Errorf("Expected custom without bounds to match month range")
	}
}

func TestAveragePerDay(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC)

	avg := AveragePerDay(decimal.NewFromInt(100), start, end)
	if !avg.Equal(decimal.NewFromInt(10)) {
		t.Errorf("Expected 10, got %s", avg)
	}
}

func TestAveragePerDay_ZeroLengthRange(t *testing.T) {
	d := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	avg := AveragePerDay(decimal.NewFromInt(50), d, d)
	if !avg.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Expected divisor clamped to 1 day, got %s", avg)
	}
}

func TestAggregationsAreIdempotent(t *testing.T) {
	catID := uuid.New()
	categories := map[string]*domain.Category{
		catID.String(): {ID: catID, Name: "Food", Color: "#EF4444"},
	}
	expenses := []*domain.Expense{
		expenseOn(2024, time.June, 1, 10, &catID),
		expenseOn(2024, time.May, 2, 20, nil),
	}

	first := CategorySpendAggregation(expenses, categories)
	second := CategorySpendAggregation(expenses, categories)
	if len(first) != len(second) {
		t.Fatalf("Expected identical group counts, got %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name || !first[i].Amount.Equal(second[i].Amount) || first[i].Count != second[i].Count {
			t.Errorf("Expected identical group %d on rerun", i)
		}
	}

	trendFirst := MonthlyTrendAggregation(expenses)
	trendSecond := MonthlyTrendAggregation(expenses)
	if len(trendFirst) != len(trendSecond) {
		t.Fatalf("Expected identical trend lengths")
	}
	for i := range trendFirst {
		if trendFirst[i].Month != trendSecond[i].Month || !trendFirst[i].Amount.Equal(trendSecond[i].Amount) || trendFirst[i].Count != trendSecond[i].Count {
			t.Errorf("Expected identical trend bucket %d on rerun", i)
		}
	}
}
