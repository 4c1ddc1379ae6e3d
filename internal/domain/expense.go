package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Expense struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"-"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
	ExpenseDate time.Time       `json:"expenseDate"`
	CategoryID  *uuid.UUID      `json:"categoryId,omitempty"`
	Currency    string          `json:"currency"`
	ReceiptKey  *string         `json:"-"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ExpenseFilters narrows expense listings. Zero-value fields are ignored.
type ExpenseFilters struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
	Limit      int32
}

const (
	DefaultExpenseLimit = 100
	MaxExpenseLimit     = 1000
)

type ExpenseRepository interface {
	Create(expense *Expense) (*Expense, error)
	GetByID(userID, id uuid.UUID) (*Expense, error)
	GetAllByUser(userID uuid.UUID, filters *ExpenseFilters) ([]*Expense, error)
	Delete(userID, id uuid.UUID) error
	SetReceiptKey(userID, id uuid.UUID, receiptKey *string) error
	SumByDateRange(userID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
	SumByCategoryAndDateRange(userID, categoryID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
	CountByUser(userID uuid.UUID) (int64, error)
	SumByUser(userID uuid.UUID) (decimal.Decimal, error)
}
