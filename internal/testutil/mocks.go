package testutil

import (
	"time"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users    map[string]*domain.User
	ByID     map[uuid.UUID]*domain.User
	CreateFn func(auth0ID, email string, displayName *string) (*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]*domain.User),
		ByID:  make(map[uuid.UUID]*domain.User),
	}
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(id uuid.UUID) (*domain.User, error) {
	if user, ok := m.ByID[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByAuth0ID retrieves a user by Auth0 ID
func (m *MockUserRepository) GetByAuth0ID(auth0ID string) (*domain.User, error) {
	if user, ok := m.Users[auth0ID]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// CreateOrGetByAuth0ID creates or retrieves a user by Auth0 ID
func (m *MockUserRepository) CreateOrGetByAuth0ID(auth0ID, email string, displayName *string) (*domain.User, error) {
	if m.CreateFn != nil {
		return m.CreateFn(auth0ID, email, displayName)
	}
	if user, ok := m.Users[auth0ID]; ok {
		return user, nil
	}
	user := &domain.User{
		ID:          uuid.New(),
		Auth0ID:     auth0ID,
		Email:       email,
		DisplayName: displayName,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	m.Users[auth0ID] = user
	m.ByID[user.ID] = user
	return user, nil
}

// UpdateDisplayName updates the user's display name
func (m *MockUserRepository) UpdateDisplayName(id uuid.UUID, displayName string) (*domain.User, error) {
	user, ok := m.ByID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user.DisplayName = &displayName
	user.UpdatedAt = time.Now().UTC()
	return user, nil
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.Users[user.Auth0ID] = user
	m.ByID[user.ID] = user
}

// MockSettingsRepository is a mock implementation of domain.SettingsRepository
type MockSettingsRepository struct {
	Settings map[uuid.UUID]*domain.Settings
}

// NewMockSettingsRepository creates a new MockSettingsRepository
func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{
		Settings: make(map[uuid.UUID]*domain.Settings),
	}
}

// Get retrieves a user's settings, falling back to defaults
func (m *MockSettingsRepository) Get(userID uuid.UUID) (*domain.Settings, error) {
	if s, ok := m.Settings[userID]; ok {
		return s, nil
	}
	return domain.DefaultSettings(userID), nil
}

// Upsert stores the user's settings
func (m *MockSettingsRepository) Upsert(settings *domain.Settings) (*domain.Settings, error) {
	settings.UpdatedAt = time.Now().UTC()
	m.Settings[settings.UserID] = settings
	return settings, nil
}

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	Categories map[uuid.UUID]*domain.Category
	order      []uuid.UUID
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[uuid.UUID]*domain.Category),
	}
}

// Create stores a new category
func (m *MockCategoryRepository) Create(category *domain.Category) (*domain.Category, error) {
	category.ID = uuid.New()
	category.CreatedAt = time.Now().UTC()
	m.Categories[category.ID] = category
	m.order = append(m.order, category.ID)
	return category, nil
}

// GetByID retrieves a category scoped to a user
func (m *MockCategoryRepository) GetByID(userID, id uuid.UUID) (*domain.Category, error) {
	if c, ok := m.Categories[id]; ok && c.UserID == userID {
		return c, nil
	}
	return nil, domain.ErrCategoryNotFound
}

// GetAllByUser retrieves all of a user's categories in insertion order
func (m *MockCategoryRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Category, error) {
	result := make([]*domain.Category, 0)
	for _, id := range m.order {
		if c, ok := m.Categories[id]; ok && c.UserID == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

// Update replaces a category's mutable fields
func (m *MockCategoryRepository) Update(userID, id uuid.UUID, name, color, icon string) (*domain.Category, error) {
	c, ok := m.Categories[id]
	if !ok || c.UserID != userID {
		return nil, domain.ErrCategoryNotFound
	}
	c.Name = name
	c.Color = color
	c.Icon = icon
	return c, nil
}

// Delete removes a category
func (m *MockCategoryRepository) Delete(userID, id uuid.UUID) error {
	c, ok := m.Categories[id]
	if !ok || c.UserID != userID {
		return domain.ErrCategoryNotFound
	}
	delete(m.Categories, id)
	return nil
}

// AddCategory adds a category to the mock repository (helper for tests)
func (m *MockCategoryRepository) AddCategory(category *domain.Category) {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	m.Categories[category.ID] = category
	m.order = append(m.order, category.ID)
}

// MockExpenseRepository is a mock implementation of domain.ExpenseRepository
type MockExpenseRepository struct {
	Expenses []*domain.Expense
}

// NewMockExpenseRepository creates a new MockExpenseRepository
func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{}
}

// Create stores a new expense
func (m *MockExpenseRepository) Create(expense *domain.Expense) (*domain.Expense, error) {
	expense.ID = uuid.New()
	expense.CreatedAt = time.Now().UTC()
	m.Expenses = append(m.Expenses, expense)
	return expense, nil
}

// GetByID retrieves an expense scoped to a user
func (m *MockExpenseRepository) GetByID(userID, id uuid.UUID) (*domain.Expense, error) {
	for _, e := range m.Expenses {
		if e.ID == id && e.UserID == userID {
			return e, nil
		}
	}
	return nil, domain.ErrExpenseNotFound
}

func matchesFilters(e *domain.Expense, filters *domain.ExpenseFilters) bool {
	if filters == nil {
		return true
	}
	if filters.StartDate != nil && e.ExpenseDate.Before(*filters.StartDate) {
		return false
	}
	if filters.EndDate != nil && e.ExpenseDate.After(*filters.EndDate) {
		return false
	}
	if filters.CategoryID != nil {
		if e.CategoryID == nil || *e.CategoryID != *filters.CategoryID {
			return false
		}
	}
	return true
}

// GetAllByUser retrieves a user's expenses honoring filters, newest first
func (m *MockExpenseRepository) GetAllByUser(userID uuid.UUID, filters *domain.ExpenseFilters) ([]*domain.Expense, error) {
	result := make([]*domain.Expense, 0)
	for _, e := range m.Expenses {
		if e.UserID != userID || !matchesFilters(e, filters) {
			continue
		}
		result = append(result, e)
	}

	// Newest first, matching the real repository's ordering
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].ExpenseDate.After(result[i].ExpenseDate) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}

	if filters != nil && filters.Limit > 0 && int32(len(result)) > filters.Limit {
		result = result[:filters.Limit]
	}
	return result, nil
}

// Delete removes an expense
func (m *MockExpenseRepository) Delete(userID, id uuid.UUID) error {
	for i, e := range m.Expenses {
		if e.ID == id && e.UserID == userID {
			m.Expenses = append(m.Expenses[:i], m.Expenses[i+1:]...)
			return nil
		}
	}
	return domain.ErrExpenseNotFound
}

// SetReceiptKey records or clears an expense's receipt key
func (m *MockExpenseRepository) SetReceiptKey(userID, id uuid.UUID, receiptKey *string) error {
	for _, e := range m.Expenses {
		if e.ID == id && e.UserID == userID {
			e.ReceiptKey = receiptKey
			return nil
		}
	}
	return domain.ErrExpenseNotFound
}

// SumByDateRange totals a user's expenses inside [start, end]
func (m *MockExpenseRepository) SumByDateRange(userID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range m.Expenses {
		if e.UserID != userID {
			continue
		}
		if e.ExpenseDate.Before(start) || e.ExpenseDate.After(end) {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total, nil
}

// SumByCategoryAndDateRange totals a user's expenses for one category inside [start, end]
func (m *MockExpenseRepository) SumByCategoryAndDateRange(userID, categoryID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range m.Expenses {
		if e.UserID != userID || e.CategoryID == nil || *e.CategoryID != categoryID {
			continue
		}
		if e.ExpenseDate.Before(start) || e.ExpenseDate.After(end) {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total, nil
}

// CountByUser counts a user's expenses
func (m *MockExpenseRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64
	for _, e := range m.Expenses {
		if e.UserID == userID {
			count++
		}
	}
	return count, nil
}

// SumByUser totals all of a user's expenses
func (m *MockExpenseRepository) SumByUser(userID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range m.Expenses {
		if e.UserID == userID {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

// AddExpense adds an expense to the mock repository (helper for tests)
func (m *MockExpenseRepository) AddExpense(expense *domain.Expense) {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	m.Expenses = append(m.Expenses, expense)
}

// MockBudgetRepository is a mock implementation of domain.BudgetRepository
type MockBudgetRepository struct {
	Budgets []*domain.Budget
}

// NewMockBudgetRepository creates a new MockBudgetRepository
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{}
}

// Create stores a new budget
func (m *MockBudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	budget.ID = uuid.New()
	budget.CreatedAt = time.Now().UTC()
	m.Budgets = append(m.Budgets, budget)
	return budget, nil
}

// GetByID retrieves a budget scoped to a user
func (m *MockBudgetRepository) GetByID(userID, id uuid.UUID) (*domain.Budget, error) {
	for _, b := range m.Budgets {
		if b.ID == id && b.UserID == userID {
			return b, nil
		}
	}
	return nil, domain.ErrBudgetNotFound
}

// GetAllByUser retrieves all of a user's budgets
func (m *MockBudgetRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Budget, error) {
	result := make([]*domain.Budget, 0)
	for _, b := range m.Budgets {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

// Delete removes a budget
func (m *MockBudgetRepository) Delete(userID, id uuid.UUID) error {
	for i, b := range m.Budgets {
		if b.ID == id && b.UserID == userID {
			m.Budgets = append(m.Budgets[:i], m.Budgets[i+1:]...)
			return nil
		}
	}
	return domain.ErrBudgetNotFound
}

// AddBudget seeds the mock with a budget
func (m *MockBudgetRepository) AddBudget(budget *domain.Budget) {
	if budget.ID == uuid.Nil {
		budget.ID = uuid.New()
	}
	m.Budgets = append(m.Budgets, budget)
}

// SumAmountsByUser totals the target amounts of a user's budgets
func (m *MockBudgetRepository) SumAmountsByUser(userID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, b := range m.Budgets {
		if b.UserID == userID {
			total = total.Add(b.Amount)
		}
	}
	return total, nil
}

// MockOverallBudgetRepository is a mock implementation of domain.OverallBudgetRepository
type MockOverallBudgetRepository struct {
	Budgets []*domain.OverallBudget
}

// NewMockOverallBudgetRepository creates a new MockOverallBudgetRepository
func NewMockOverallBudgetRepository() *MockOverallBudgetRepository {
	return &MockOverallBudgetRepository{}
}

// Create stores a new overall budget
func (m *MockOverallBudgetRepository) Create(budget *domain.OverallBudget) (*domain.OverallBudget, error) {
	budget.ID = uuid.New()
	budget.CreatedAt = time.Now().UTC()
	m.Budgets = append(m.Budgets, budget)
	return budget, nil
}

// GetByID retrieves an overall budget scoped to a user
func (m *MockOverallBudgetRepository) GetByID(userID, id uuid.UUID) (*domain.OverallBudget, error) {
	for _, b := range m.Budgets {
		if b.ID == id && b.UserID == userID {
			return b, nil
		}
	}
	return nil, domain.ErrOverallBudgetNotFound
}

// GetAllByUser retrieves all of a user's overall budgets
func (m *MockOverallBudgetRepository) GetAllByUser(userID uuid.UUID) ([]*domain.OverallBudget, error) {
	result := make([]*domain.OverallBudget, 0)
	for _, b := range m.Budgets {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

// Update replaces an overall budget's fields
func (m *MockOverallBudgetRepository) Update(userID, id uuid.UUID, amount decimal.Decimal, period domain.BudgetPeriod, currency string, anchorDate time.Time) (*domain.OverallBudget, error) {
	for _, b := range m.Budgets {
		if b.ID == id && b.UserID == userID {
			b.Amount = amount
			b.Period = period
			b.Currency = currency
			b.AnchorDate = anchorDate
			return b, nil
		}
	}
	return nil, domain.ErrOverallBudgetNotFound
}

// Delete removes an overall budget
func (m *MockOverallBudgetRepository) Delete(userID, id uuid.UUID) error {
	for i, b := range m.Budgets {
		if b.ID == id && b.UserID == userID {
			m.Budgets = append(m.Budgets[:i], m.Budgets[i+1:]...)
			return nil
		}
	}
	return domain.ErrOverallBudgetNotFound
}

// MockIncomeSourceRepository is a mock implementation of domain.IncomeSourceRepository
type MockIncomeSourceRepository struct {
	Sources []*domain.IncomeSource
}

// NewMockIncomeSourceRepository creates a new MockIncomeSourceRepository
func NewMockIncomeSourceRepository() *MockIncomeSourceRepository {
	return &MockIncomeSourceRepository{}
}

// Create stores a new income source
func (m *MockIncomeSourceRepository) Create(source *domain.IncomeSource) (*domain.IncomeSource, error) {
	source.ID = uuid.New()
	source.CreatedAt = time.Now().UTC()
	m.Sources = append(m.Sources, source)
	return source, nil
}

// GetByID retrieves an income source scoped to a user
func (m *MockIncomeSourceRepository) GetByID(userID, id uuid.UUID) (*domain.IncomeSource, error) {
	for _, s := range m.Sources {
		if s.ID == id && s.UserID == userID {
			return s, nil
		}
	}
	return nil, domain.ErrIncomeSourceNotFound
}

// GetAllByUser retrieves all of a user's income sources
func (m *MockIncomeSourceRepository) GetAllByUser(userID uuid.UUID) ([]*domain.IncomeSource, error) {
	result := make([]*domain.IncomeSource, 0)
	for _, s := range m.Sources {
		if s.UserID == userID {
			result = append(result, s)
		}
	}
	return result, nil
}

// ToggleActive flips an income source's active flag
func (m *MockIncomeSourceRepository) ToggleActive(userID, id uuid.UUID) (*domain.IncomeSource, error) {
	for _, s := range m.Sources {
		if s.ID == id && s.UserID == userID {
			s.Active = !s.Active
			return s, nil
		}
	}
	return nil, domain.ErrIncomeSourceNotFound
}

// Delete removes an income source
func (m *MockIncomeSourceRepository) Delete(userID, id uuid.UUID) error {
	for i, s := range m.Sources {
		if s.ID == id && s.UserID == userID {
			m.Sources = append(m.Sources[:i], m.Sources[i+1:]...)
			return nil
		}
	}
	return domain.ErrIncomeSourceNotFound
}
