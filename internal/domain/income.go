package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IncomeSourceType string

const (
	IncomeSourceSalary     IncomeSourceType = "salary"
	IncomeSourceAdditional IncomeSourceType = "additional"
)

type IncomeFrequency string

const (
	IncomeFrequencyMonthly IncomeFrequency = "monthly"
	IncomeFrequencyWeekly  IncomeFrequency = "weekly"
	IncomeFrequencyYearly  IncomeFrequency = "yearly"
	IncomeFrequencyOneTime IncomeFrequency = "one-time"
)

// ValidIncomeFrequency reports whether f is a known frequency
func ValidIncomeFrequency(f IncomeFrequency) bool {
	switch f {
	case IncomeFrequencyMonthly, IncomeFrequencyWeekly, IncomeFrequencyYearly, IncomeFrequencyOneTime:
		return true
	}
	return false
}

type IncomeSource struct {
	ID          uuid.UUID        `json:"id"`
	UserID      uuid.UUID        `json:"-"`
	SourceType  IncomeSourceType `json:"sourceType"`
	Amount      decimal.Decimal  `json:"amount"`
	Description *string          `json:"description,omitempty"`
	Frequency   IncomeFrequency  `json:"frequency"`
	Active      bool             `json:"active"`
	Currency    string           `json:"currency"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type IncomeSourceRepository interface {
	Create(source *IncomeSource) (*IncomeSource, error)
	GetByID(userID, id uuid.UUID) (*IncomeSource, error)
	GetAllByUser(userID uuid.UUID) ([]*IncomeSource, error)
	ToggleActive(userID, id uuid.UUID) (*IncomeSource, error)
	Delete(userID, id uuid.UUID) error
}
